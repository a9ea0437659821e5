package sshfx

// ExtendedPacket defines the SSH_FXP_EXTENDED packet.
type ExtendedPacket struct {
	RequestID       uint32
	ExtendedRequest string

	// Data is the extension-specific payload, left opaque at this layer.
	Data []byte
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *ExtendedPacket) Type() PacketType {
	return PacketTypeExtended
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
//
// The Data is returned as the payload, and so may alias the given buffer.
func (p *ExtendedPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.ExtendedRequest) // string(extended-request)
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeExtended, reqid)
	buf.AppendString(p.ExtendedRequest)

	return buf.Packet(p.Data)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *ExtendedPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
//
// The Data takes the remainder of the frame, and aliases the Buffer contents.
func (p *ExtendedPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.ExtendedRequest, err = buf.ConsumeString(); err != nil {
		return err
	}

	p.Data = buf.Bytes()
	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *ExtendedPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// ExtendedReplyPacket defines the SSH_FXP_EXTENDED_REPLY packet.
type ExtendedReplyPacket struct {
	RequestID uint32

	// Data is the extension-specific payload, left opaque at this layer.
	Data []byte
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *ExtendedReplyPacket) Type() PacketType {
	return PacketTypeExtendedReply
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
//
// The Data is returned as the payload, and so may alias the given buffer.
func (p *ExtendedReplyPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		buf = NewMarshalBuffer(0)
	}

	buf.StartPacket(PacketTypeExtendedReply, reqid)

	return buf.Packet(p.Data)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *ExtendedReplyPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
//
// The Data takes the remainder of the frame, and aliases the Buffer contents.
func (p *ExtendedReplyPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	p.Data = buf.Bytes()
	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *ExtendedReplyPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}
