package sshfx

// PFlags defines the pflags value of the SSH_FXP_OPEN packet.
type PFlags uint32

// SSH_FXF_* flags.
const (
	FlagRead     = PFlags(1 << iota) // SSH_FXF_READ
	FlagWrite                        // SSH_FXF_WRITE
	FlagAppend                       // SSH_FXF_APPEND
	FlagCreate                       // SSH_FXF_CREAT
	FlagTruncate                     // SSH_FXF_TRUNC
	FlagExclusive                    // SSH_FXF_EXCL
)

// Read reports whether the SSH_FXF_READ flag is set.
func (f PFlags) Read() bool { return f&FlagRead != 0 }

// Write reports whether the SSH_FXF_WRITE flag is set.
func (f PFlags) Write() bool { return f&FlagWrite != 0 }

// Append reports whether the SSH_FXF_APPEND flag is set.
func (f PFlags) Append() bool { return f&FlagAppend != 0 }

// Create reports whether the SSH_FXF_CREAT flag is set.
func (f PFlags) Create() bool { return f&FlagCreate != 0 }

// Truncate reports whether the SSH_FXF_TRUNC flag is set.
func (f PFlags) Truncate() bool { return f&FlagTruncate != 0 }

// Exclusive reports whether the SSH_FXF_EXCL flag is set.
func (f PFlags) Exclusive() bool { return f&FlagExclusive != 0 }

// OpenPacket defines the SSH_FXP_OPEN packet.
type OpenPacket struct {
	RequestID uint32
	Filename  string
	PFlags    PFlags
	Attrs     Attributes
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *OpenPacket) Type() PacketType {
	return PacketTypeOpen
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *OpenPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.Filename) + 4 + p.Attrs.Len() // string(filename) + uint32(pflags) + attrs
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeOpen, reqid)
	buf.AppendString(p.Filename)
	buf.AppendUint32(uint32(p.PFlags))
	p.Attrs.MarshalInto(buf)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *OpenPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *OpenPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Filename, err = buf.ConsumeString(); err != nil {
		return err
	}

	pflags, err := buf.ConsumeUint32()
	if err != nil {
		return err
	}
	p.PFlags = PFlags(pflags)

	return p.Attrs.UnmarshalFrom(buf)
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *OpenPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}
