package sshfx

// Attributes related flags.
const (
	AttrSize        = 1 << iota // SSH_FILEXFER_ATTR_SIZE
	AttrUIDGID                  // SSH_FILEXFER_ATTR_UIDGID
	AttrPermissions             // SSH_FILEXFER_ATTR_PERMISSIONS
	AttrACModTime               // SSH_FILEXFER_ATTR_ACMODTIME

	AttrExtended = 1 << 31 // SSH_FILEXFER_ATTR_EXTENDED
)

// ModeDir is the directory bit of the POSIX permissions field.
const ModeDir = 0o040000

// Attributes defines the file attributes type defined in draft-ietf-secsh-filexfer-02
//
// Defined in: https://tools.ietf.org/html/draft-ietf-secsh-filexfer-02#section-5
type Attributes struct {
	Flags uint32

	// AttrSize
	Size uint64

	// AttrUIDGID
	UID uint32
	GID uint32

	// AttrPermissions
	Permissions uint32

	// AttrACModTime
	ATime uint32
	MTime uint32

	// AttrExtended
	ExtendedAttributes []ExtendedAttribute

	// User and Group carry the textual owner and group when known.
	// They are not part of the version 3 wire format; they only inform
	// the longname column of SSH_FXP_NAME entries.
	User  string
	Group string
}

// HasSize reports whether the Size field is populated.
func (a *Attributes) HasSize() bool { return a.Flags&AttrSize != 0 }

// HasUIDGID reports whether the UID and GID fields are populated.
func (a *Attributes) HasUIDGID() bool { return a.Flags&AttrUIDGID != 0 }

// HasPermissions reports whether the Permissions field is populated.
func (a *Attributes) HasPermissions() bool { return a.Flags&AttrPermissions != 0 }

// HasACModTime reports whether the ATime and MTime fields are populated.
func (a *Attributes) HasACModTime() bool { return a.Flags&AttrACModTime != 0 }

// IsDir reports whether the permissions field carries the directory bit.
func (a *Attributes) IsDir() bool {
	return a.HasPermissions() && a.Permissions&ModeDir != 0
}

// SetSize sets the Size field along with its flag bit.
func (a *Attributes) SetSize(size uint64) {
	a.Flags |= AttrSize
	a.Size = size
}

// SetUIDGID sets the UID and GID fields along with their flag bit.
func (a *Attributes) SetUIDGID(uid, gid uint32) {
	a.Flags |= AttrUIDGID
	a.UID = uid
	a.GID = gid
}

// SetPermissions sets the Permissions field along with its flag bit.
func (a *Attributes) SetPermissions(perms uint32) {
	a.Flags |= AttrPermissions
	a.Permissions = perms
}

// SetACModTime sets the ATime and MTime fields along with their flag bit.
func (a *Attributes) SetACModTime(atime, mtime uint32) {
	a.Flags |= AttrACModTime
	a.ATime = atime
	a.MTime = mtime
}

// Len returns the number of bytes a would marshal into.
func (a *Attributes) Len() int {
	length := 4

	if a.Flags&AttrSize != 0 {
		length += 8
	}

	if a.Flags&AttrUIDGID != 0 {
		length += 4 + 4
	}

	if a.Flags&AttrPermissions != 0 {
		length += 4
	}

	if a.Flags&AttrACModTime != 0 {
		length += 4 + 4
	}

	if a.Flags&AttrExtended != 0 {
		length += 4

		for _, ext := range a.ExtendedAttributes {
			length += ext.Len()
		}
	}

	return length
}

// MarshalInto marshals a onto the end of the given Buffer.
// The flags bitmask on the wire exactly reflects which fields are serialized.
func (a *Attributes) MarshalInto(buf *Buffer) {
	buf.AppendUint32(a.Flags)

	if a.Flags&AttrSize != 0 {
		buf.AppendUint64(a.Size)
	}

	if a.Flags&AttrUIDGID != 0 {
		buf.AppendUint32(a.UID)
		buf.AppendUint32(a.GID)
	}

	if a.Flags&AttrPermissions != 0 {
		buf.AppendUint32(a.Permissions)
	}

	if a.Flags&AttrACModTime != 0 {
		buf.AppendUint32(a.ATime)
		buf.AppendUint32(a.MTime)
	}

	if a.Flags&AttrExtended != 0 {
		buf.AppendUint32(uint32(len(a.ExtendedAttributes)))

		for _, ext := range a.ExtendedAttributes {
			ext.MarshalInto(buf)
		}
	}
}

// UnmarshalFrom unmarshals an Attributes from the given Buffer into a.
//
// NOTE: The values of fields not covered in the a.Flags are explicitly undefined.
func (a *Attributes) UnmarshalFrom(buf *Buffer) (err error) {
	if a.Flags, err = buf.ConsumeUint32(); err != nil {
		return err
	}

	// Short-circuit dummy attributes.
	if a.Flags == 0 {
		return nil
	}

	if a.Flags&AttrSize != 0 {
		if a.Size, err = buf.ConsumeUint64(); err != nil {
			return err
		}
	}

	if a.Flags&AttrUIDGID != 0 {
		if a.UID, err = buf.ConsumeUint32(); err != nil {
			return err
		}

		if a.GID, err = buf.ConsumeUint32(); err != nil {
			return err
		}
	}

	if a.Flags&AttrPermissions != 0 {
		if a.Permissions, err = buf.ConsumeUint32(); err != nil {
			return err
		}
	}

	if a.Flags&AttrACModTime != 0 {
		if a.ATime, err = buf.ConsumeUint32(); err != nil {
			return err
		}

		if a.MTime, err = buf.ConsumeUint32(); err != nil {
			return err
		}
	}

	if a.Flags&AttrExtended != 0 {
		count, err := buf.ConsumeUint32()
		if err != nil {
			return err
		}

		a.ExtendedAttributes = make([]ExtendedAttribute, count)
		for i := range a.ExtendedAttributes {
			if err := a.ExtendedAttributes[i].UnmarshalFrom(buf); err != nil {
				return err
			}
		}
	}

	return nil
}

// ExtendedAttribute defines the extended file attribute type defined in draft-ietf-secsh-filexfer-02
//
// Defined in: https://tools.ietf.org/html/draft-ietf-secsh-filexfer-02#section-5
type ExtendedAttribute struct {
	Type string
	Data string
}

// Len returns the number of bytes e would marshal into.
func (e *ExtendedAttribute) Len() int {
	return 4 + len(e.Type) + 4 + len(e.Data)
}

// MarshalInto marshals e onto the end of the given Buffer.
func (e *ExtendedAttribute) MarshalInto(buf *Buffer) {
	buf.AppendString(e.Type)
	buf.AppendString(e.Data)
}

// UnmarshalFrom unmarshals an ExtendedAttribute from the given Buffer into e.
func (e *ExtendedAttribute) UnmarshalFrom(buf *Buffer) (err error) {
	if e.Type, err = buf.ConsumeString(); err != nil {
		return err
	}

	if e.Data, err = buf.ConsumeString(); err != nil {
		return err
	}

	return nil
}
