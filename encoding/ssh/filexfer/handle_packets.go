package sshfx

// ClosePacket defines the SSH_FXP_CLOSE packet.
type ClosePacket struct {
	RequestID uint32
	Handle    string
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *ClosePacket) Type() PacketType {
	return PacketTypeClose
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *ClosePacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.Handle) // string(handle)
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeClose, reqid)
	buf.AppendString(p.Handle)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *ClosePacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *ClosePacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Handle, err = buf.ConsumeString(); err != nil {
		return err
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *ClosePacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// ReadPacket defines the SSH_FXP_READ packet.
type ReadPacket struct {
	RequestID uint32
	Handle    string
	Offset    uint64
	Len       uint32
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *ReadPacket) Type() PacketType {
	return PacketTypeRead
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *ReadPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.Handle) + 8 + 4 // string(handle) + uint64(offset) + uint32(len)
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeRead, reqid)
	buf.AppendString(p.Handle)
	buf.AppendUint64(p.Offset)
	buf.AppendUint32(p.Len)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *ReadPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *ReadPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Handle, err = buf.ConsumeString(); err != nil {
		return err
	}

	if p.Offset, err = buf.ConsumeUint64(); err != nil {
		return err
	}

	if p.Len, err = buf.ConsumeUint32(); err != nil {
		return err
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *ReadPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// WritePacket defines the SSH_FXP_WRITE packet.
type WritePacket struct {
	RequestID uint32
	Handle    string
	Offset    uint64
	Data      []byte
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *WritePacket) Type() PacketType {
	return PacketTypeWrite
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
//
// The Data is returned as the payload, and so may alias the given buffer.
func (p *WritePacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.Handle) + 8 + 4 // string(handle) + uint64(offset) + uint32(len(data))
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeWrite, reqid)
	buf.AppendString(p.Handle)
	buf.AppendUint64(p.Offset)
	buf.AppendUint32(uint32(len(p.Data)))

	return buf.Packet(p.Data)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *WritePacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
//
// The Data aliases the Buffer contents; per the ownership model a decoded
// packet does not outlive its dispatch turn.
func (p *WritePacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Handle, err = buf.ConsumeString(); err != nil {
		return err
	}

	if p.Offset, err = buf.ConsumeUint64(); err != nil {
		return err
	}

	if p.Data, err = buf.ConsumeByteSlice(); err != nil {
		return err
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *WritePacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// FStatPacket defines the SSH_FXP_FSTAT packet.
type FStatPacket struct {
	RequestID uint32
	Handle    string
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *FStatPacket) Type() PacketType {
	return PacketTypeFStat
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *FStatPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.Handle) // string(handle)
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeFStat, reqid)
	buf.AppendString(p.Handle)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *FStatPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *FStatPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Handle, err = buf.ConsumeString(); err != nil {
		return err
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *FStatPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// FSetStatPacket defines the SSH_FXP_FSETSTAT packet.
type FSetStatPacket struct {
	RequestID uint32
	Handle    string
	Attrs     Attributes
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *FSetStatPacket) Type() PacketType {
	return PacketTypeFSetStat
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *FSetStatPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.Handle) + p.Attrs.Len() // string(handle) + attrs
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeFSetStat, reqid)
	buf.AppendString(p.Handle)
	p.Attrs.MarshalInto(buf)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *FSetStatPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *FSetStatPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Handle, err = buf.ConsumeString(); err != nil {
		return err
	}

	return p.Attrs.UnmarshalFrom(buf)
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *FSetStatPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// ReadDirPacket defines the SSH_FXP_READDIR packet.
type ReadDirPacket struct {
	RequestID uint32
	Handle    string
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *ReadDirPacket) Type() PacketType {
	return PacketTypeReadDir
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *ReadDirPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.Handle) // string(handle)
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeReadDir, reqid)
	buf.AppendString(p.Handle)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *ReadDirPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *ReadDirPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Handle, err = buf.ConsumeString(); err != nil {
		return err
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *ReadDirPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}
