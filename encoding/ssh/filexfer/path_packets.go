package sshfx

// LStatPacket defines the SSH_FXP_LSTAT packet.
type LStatPacket struct {
	RequestID uint32
	Path      string
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *LStatPacket) Type() PacketType {
	return PacketTypeLStat
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *LStatPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.Path) // string(path)
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeLStat, reqid)
	buf.AppendString(p.Path)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *LStatPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *LStatPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Path, err = buf.ConsumeString(); err != nil {
		return err
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *LStatPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// SetStatPacket defines the SSH_FXP_SETSTAT packet.
type SetStatPacket struct {
	RequestID uint32
	Path      string
	Attrs     Attributes
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *SetStatPacket) Type() PacketType {
	return PacketTypeSetStat
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *SetStatPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.Path) + p.Attrs.Len() // string(path) + attrs
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeSetStat, reqid)
	buf.AppendString(p.Path)
	p.Attrs.MarshalInto(buf)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *SetStatPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *SetStatPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Path, err = buf.ConsumeString(); err != nil {
		return err
	}

	return p.Attrs.UnmarshalFrom(buf)
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *SetStatPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// OpenDirPacket defines the SSH_FXP_OPENDIR packet.
type OpenDirPacket struct {
	RequestID uint32
	Path      string
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *OpenDirPacket) Type() PacketType {
	return PacketTypeOpenDir
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *OpenDirPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.Path) // string(path)
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeOpenDir, reqid)
	buf.AppendString(p.Path)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *OpenDirPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *OpenDirPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Path, err = buf.ConsumeString(); err != nil {
		return err
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *OpenDirPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// RemovePacket defines the SSH_FXP_REMOVE packet.
type RemovePacket struct {
	RequestID uint32
	Filename  string
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *RemovePacket) Type() PacketType {
	return PacketTypeRemove
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *RemovePacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.Filename) // string(filename)
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeRemove, reqid)
	buf.AppendString(p.Filename)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *RemovePacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *RemovePacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Filename, err = buf.ConsumeString(); err != nil {
		return err
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *RemovePacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// MkdirPacket defines the SSH_FXP_MKDIR packet.
type MkdirPacket struct {
	RequestID uint32
	Path      string
	Attrs     Attributes
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *MkdirPacket) Type() PacketType {
	return PacketTypeMkdir
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *MkdirPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.Path) + p.Attrs.Len() // string(path) + attrs
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeMkdir, reqid)
	buf.AppendString(p.Path)
	p.Attrs.MarshalInto(buf)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *MkdirPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *MkdirPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Path, err = buf.ConsumeString(); err != nil {
		return err
	}

	return p.Attrs.UnmarshalFrom(buf)
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *MkdirPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// RmdirPacket defines the SSH_FXP_RMDIR packet.
type RmdirPacket struct {
	RequestID uint32
	Path      string
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *RmdirPacket) Type() PacketType {
	return PacketTypeRmdir
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *RmdirPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.Path) // string(path)
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeRmdir, reqid)
	buf.AppendString(p.Path)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *RmdirPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *RmdirPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Path, err = buf.ConsumeString(); err != nil {
		return err
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *RmdirPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// RealPathPacket defines the SSH_FXP_REALPATH packet.
type RealPathPacket struct {
	RequestID uint32
	Path      string
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *RealPathPacket) Type() PacketType {
	return PacketTypeRealPath
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *RealPathPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.Path) // string(path)
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeRealPath, reqid)
	buf.AppendString(p.Path)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *RealPathPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *RealPathPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Path, err = buf.ConsumeString(); err != nil {
		return err
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *RealPathPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// StatPacket defines the SSH_FXP_STAT packet.
type StatPacket struct {
	RequestID uint32
	Path      string
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *StatPacket) Type() PacketType {
	return PacketTypeStat
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *StatPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.Path) // string(path)
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeStat, reqid)
	buf.AppendString(p.Path)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *StatPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *StatPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Path, err = buf.ConsumeString(); err != nil {
		return err
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *StatPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// RenamePacket defines the SSH_FXP_RENAME packet.
type RenamePacket struct {
	RequestID uint32
	OldPath   string
	NewPath   string
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *RenamePacket) Type() PacketType {
	return PacketTypeRename
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *RenamePacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		// string(oldpath) + string(newpath)
		size := 4 + len(p.OldPath) + 4 + len(p.NewPath)
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeRename, reqid)
	buf.AppendString(p.OldPath)
	buf.AppendString(p.NewPath)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *RenamePacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *RenamePacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.OldPath, err = buf.ConsumeString(); err != nil {
		return err
	}

	if p.NewPath, err = buf.ConsumeString(); err != nil {
		return err
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *RenamePacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// ReadLinkPacket defines the SSH_FXP_READLINK packet.
type ReadLinkPacket struct {
	RequestID uint32
	Path      string
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *ReadLinkPacket) Type() PacketType {
	return PacketTypeReadLink
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *ReadLinkPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.Path) // string(path)
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeReadLink, reqid)
	buf.AppendString(p.Path)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *ReadLinkPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *ReadLinkPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Path, err = buf.ConsumeString(); err != nil {
		return err
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *ReadLinkPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// SymlinkPacket defines the SSH_FXP_SYMLINK packet.
type SymlinkPacket struct {
	RequestID  uint32
	LinkPath   string
	TargetPath string
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *SymlinkPacket) Type() PacketType {
	return PacketTypeSymlink
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *SymlinkPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		// string(linkpath) + string(targetpath)
		size := 4 + len(p.LinkPath) + 4 + len(p.TargetPath)
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeSymlink, reqid)
	buf.AppendString(p.LinkPath)
	buf.AppendString(p.TargetPath)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *SymlinkPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *SymlinkPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.LinkPath, err = buf.ConsumeString(); err != nil {
		return err
	}

	if p.TargetPath, err = buf.ConsumeString(); err != nil {
		return err
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *SymlinkPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}
