package sshfx

import (
	"fmt"
	"io"
)

// NewRequestPacket returns a zero-value concrete packet for the given
// request packet type: the client-to-server set, plus SSH_FXP_INIT.
func NewRequestPacket(typ PacketType) (Packet, error) {
	switch typ {
	case PacketTypeInit:
		return new(InitPacket), nil
	case PacketTypeOpen:
		return new(OpenPacket), nil
	case PacketTypeClose:
		return new(ClosePacket), nil
	case PacketTypeRead:
		return new(ReadPacket), nil
	case PacketTypeWrite:
		return new(WritePacket), nil
	case PacketTypeLStat:
		return new(LStatPacket), nil
	case PacketTypeFStat:
		return new(FStatPacket), nil
	case PacketTypeSetStat:
		return new(SetStatPacket), nil
	case PacketTypeFSetStat:
		return new(FSetStatPacket), nil
	case PacketTypeOpenDir:
		return new(OpenDirPacket), nil
	case PacketTypeReadDir:
		return new(ReadDirPacket), nil
	case PacketTypeRemove:
		return new(RemovePacket), nil
	case PacketTypeMkdir:
		return new(MkdirPacket), nil
	case PacketTypeRmdir:
		return new(RmdirPacket), nil
	case PacketTypeRealPath:
		return new(RealPathPacket), nil
	case PacketTypeStat:
		return new(StatPacket), nil
	case PacketTypeRename:
		return new(RenamePacket), nil
	case PacketTypeReadLink:
		return new(ReadLinkPacket), nil
	case PacketTypeSymlink:
		return new(SymlinkPacket), nil
	case PacketTypeExtended:
		return new(ExtendedPacket), nil
	default:
		return nil, fmt.Errorf("unexpected request packet type: %v", typ)
	}
}

// NewResponsePacket returns a zero-value concrete packet for the given
// response packet type: the server-to-client set, plus SSH_FXP_VERSION.
func NewResponsePacket(typ PacketType) (Packet, error) {
	switch typ {
	case PacketTypeVersion:
		return new(VersionPacket), nil
	case PacketTypeStatus:
		return new(StatusPacket), nil
	case PacketTypeHandle:
		return new(HandlePacket), nil
	case PacketTypeData:
		return new(DataPacket), nil
	case PacketTypeName:
		return new(NamePacket), nil
	case PacketTypeAttrs:
		return new(AttrsPacket), nil
	case PacketTypeExtendedReply:
		return new(ExtendedReplyPacket), nil
	default:
		return nil, fmt.Errorf("unexpected response packet type: %v", typ)
	}
}

// RawPacket implements the general packet format from draft-ietf-secsh-filexfer-02:
// the type tag, the request-id when the type carries one, and the still-encoded body.
//
// The RequestID of SSH_FXP_INIT and SSH_FXP_VERSION packets is zero by convention.
//
// Defined in https://tools.ietf.org/html/draft-ietf-secsh-filexfer-02#section-3
type RawPacket struct {
	PacketType PacketType
	RequestID  uint32

	Data Buffer
}

// Type returns the Type field defining the SSH_FXP_xy type for this packet.
func (p *RawPacket) Type() PacketType {
	return p.PacketType
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
// SSH_FXP_INIT and SSH_FXP_VERSION are written without a request-id.
func (p *RawPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		buf = NewMarshalBuffer(0)
	}

	switch p.PacketType {
	case PacketTypeInit, PacketTypeVersion:
		buf.AppendUint8(uint8(p.PacketType))
	default:
		buf.StartPacket(p.PacketType, reqid)
	}

	return buf.Packet(p.Data.Bytes())
}

// MarshalBinary returns p as the binary encoding of p.
func (p *RawPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalFrom decodes a RawPacket from the given Buffer into p.
//
// The Data field will take ownership of the underlying byte slice of buf.
// The caller should not use buf after this call.
func (p *RawPacket) UnmarshalFrom(buf *Buffer) error {
	typ, err := buf.ConsumeUint8()
	if err != nil {
		return err
	}

	p.PacketType = PacketType(typ)

	// SSH_FXP_INIT and SSH_FXP_VERSION are the only packets without a request-id.
	switch p.PacketType {
	case PacketTypeInit, PacketTypeVersion:
		p.RequestID = 0
	default:
		if p.RequestID, err = buf.ConsumeUint32(); err != nil {
			return err
		}
	}

	p.Data = *buf
	return nil
}

// UnmarshalBinary decodes a full raw packet out of the given data.
// It is assumed that the uint32(length) has already been consumed to receive the data.
//
// NOTE: To avoid extra allocations, UnmarshalBinary aliases the given byte slice.
func (p *RawPacket) UnmarshalBinary(data []byte) error {
	return p.UnmarshalFrom(NewBuffer(data))
}

// ReadFrom reads a full raw packet out of the given reader.
// A maxPacketLength of zero falls back to DefaultMaxPacketLength.
func (p *RawPacket) ReadFrom(r io.Reader, maxPacketLength uint32) error {
	b, err := readPacket(r, maxPacketLength)
	if err != nil {
		return err
	}

	return p.UnmarshalBinary(b)
}

// Request decodes the typed request packet from the internal Data based on the type tag.
// The request-id field of the concrete packet is populated from p.
func (p *RawPacket) Request() (Packet, error) {
	packet, err := NewRequestPacket(p.PacketType)
	if err != nil {
		return nil, err
	}

	body := p.Data
	if err := packet.UnmarshalPacketBody(&body); err != nil {
		return nil, err
	}

	if s, ok := packet.(requestIDSetter); ok {
		s.setRequestID(p.RequestID)
	}

	return packet, nil
}

// Response decodes the typed response packet from the internal Data based on the type tag.
// The request-id field of the concrete packet is populated from p.
func (p *RawPacket) Response() (Packet, error) {
	packet, err := NewResponsePacket(p.PacketType)
	if err != nil {
		return nil, err
	}

	body := p.Data
	if err := packet.UnmarshalPacketBody(&body); err != nil {
		return nil, err
	}

	if s, ok := packet.(requestIDSetter); ok {
		s.setRequestID(p.RequestID)
	}

	return packet, nil
}

// readPacket reads a uint32 length-prefixed binary data packet from r,
// returning the packet body without the length prefix.
//
// An io.EOF before any byte of the length prefix is returned as io.EOF;
// a frame cut short anywhere after that is an io.ErrUnexpectedEOF.
func readPacket(r io.Reader, maxPacketLength uint32) ([]byte, error) {
	if maxPacketLength == 0 {
		maxPacketLength = DefaultMaxPacketLength
	}

	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			// A partial length prefix is a truncated frame, not a clean close.
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	length := uint32(prefix[0])<<24 | uint32(prefix[1])<<16 | uint32(prefix[2])<<8 | uint32(prefix[3])
	if length < 1 {
		return nil, ErrZeroLength
	}
	if length > maxPacketLength {
		return nil, ErrLongPacket
	}

	b := make([]byte, length)
	if _, err := io.ReadFull(r, b); err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	return b, nil
}
