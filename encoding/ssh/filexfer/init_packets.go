package sshfx

// InitPacket defines the SSH_FXP_INIT packet.
// It carries no request-id; by convention its identifier is zero.
type InitPacket struct {
	Version    uint32
	Extensions []*ExtensionPair
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *InitPacket) Type() PacketType {
	return PacketTypeInit
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The reqid argument is ignored; SSH_FXP_INIT carries no request-id.
func (p *InitPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 // uint32(version)
		for _, ext := range p.Extensions {
			size += ext.Len()
		}
		buf = NewMarshalBuffer(size)
	}

	buf.AppendUint8(uint8(PacketTypeInit))
	buf.AppendUint32(p.Version)

	for _, ext := range p.Extensions {
		ext.MarshalInto(buf)
	}

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *InitPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(0, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length) and uint8(type) have already been consumed.
//
// The extension list has no explicit count; pairs are read until the frame is exhausted.
func (p *InitPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Version, err = buf.ConsumeUint32(); err != nil {
		return err
	}

	for buf.Len() > 0 {
		var ext ExtensionPair
		if err := ext.UnmarshalFrom(buf); err != nil {
			return err
		}

		p.Extensions = append(p.Extensions, &ext)
	}

	return nil
}

// UnmarshalBinary decodes the packet body from the given data.
func (p *InitPacket) UnmarshalBinary(data []byte) error {
	return p.UnmarshalPacketBody(NewBuffer(data))
}

// VersionPacket defines the SSH_FXP_VERSION packet.
// It carries no request-id; by convention its identifier is zero.
type VersionPacket struct {
	Version    uint32
	Extensions []*ExtensionPair
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *VersionPacket) Type() PacketType {
	return PacketTypeVersion
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The reqid argument is ignored; SSH_FXP_VERSION carries no request-id.
func (p *VersionPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 // uint32(version)
		for _, ext := range p.Extensions {
			size += ext.Len()
		}
		buf = NewMarshalBuffer(size)
	}

	buf.AppendUint8(uint8(PacketTypeVersion))
	buf.AppendUint32(p.Version)

	for _, ext := range p.Extensions {
		ext.MarshalInto(buf)
	}

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *VersionPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(0, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length) and uint8(type) have already been consumed.
func (p *VersionPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Version, err = buf.ConsumeUint32(); err != nil {
		return err
	}

	for buf.Len() > 0 {
		var ext ExtensionPair
		if err := ext.UnmarshalFrom(buf); err != nil {
			return err
		}

		p.Extensions = append(p.Extensions, &ext)
	}

	return nil
}

// UnmarshalBinary decodes the packet body from the given data.
func (p *VersionPacket) UnmarshalBinary(data []byte) error {
	return p.UnmarshalPacketBody(NewBuffer(data))
}
