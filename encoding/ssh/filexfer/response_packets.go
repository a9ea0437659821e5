package sshfx

import (
	"fmt"
	"time"
)

// StatusPacket defines the SSH_FXP_STATUS packet.
//
// Specified in https://tools.ietf.org/html/draft-ietf-secsh-filexfer-02#section-7
type StatusPacket struct {
	RequestID    uint32
	StatusCode   Status
	ErrorMessage string
	LanguageTag  string
}

// NewStatus returns a StatusPacket for the given request-id and status code,
// carrying the canonical message for the code and the "en-US" language tag.
func NewStatus(reqid uint32, code Status) *StatusPacket {
	return &StatusPacket{
		RequestID:    reqid,
		StatusCode:   code,
		ErrorMessage: code.Message(),
		LanguageTag:  "en-US",
	}
}

// Error makes StatusPacket an error type.
func (p *StatusPacket) Error() string {
	if p.ErrorMessage == "" {
		return "sftp: " + p.StatusCode.String()
	}

	return fmt.Sprintf("sftp: %q (%s)", p.ErrorMessage, p.StatusCode)
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *StatusPacket) Type() PacketType {
	return PacketTypeStatus
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *StatusPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		// uint32(code) + string(message) + string(language tag)
		size := 4 + 4 + len(p.ErrorMessage) + 4 + len(p.LanguageTag)
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeStatus, reqid)
	buf.AppendUint32(uint32(p.StatusCode))
	buf.AppendString(p.ErrorMessage)
	buf.AppendString(p.LanguageTag)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *StatusPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *StatusPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	statusCode, err := buf.ConsumeUint32()
	if err != nil {
		return err
	}
	p.StatusCode = Status(statusCode)

	if p.ErrorMessage, err = buf.ConsumeString(); err != nil {
		return err
	}

	if p.LanguageTag, err = buf.ConsumeString(); err != nil {
		return err
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *StatusPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// HandlePacket defines the SSH_FXP_HANDLE packet.
type HandlePacket struct {
	RequestID uint32
	Handle    string
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *HandlePacket) Type() PacketType {
	return PacketTypeHandle
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *HandlePacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 + len(p.Handle) // string(handle)
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeHandle, reqid)
	buf.AppendString(p.Handle)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *HandlePacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *HandlePacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Handle, err = buf.ConsumeString(); err != nil {
		return err
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *HandlePacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// DataPacket defines the SSH_FXP_DATA packet.
type DataPacket struct {
	RequestID uint32
	Data      []byte
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *DataPacket) Type() PacketType {
	return PacketTypeData
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
//
// The Data is returned as the payload, and so may alias the given buffer.
func (p *DataPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 // uint32(len(data))
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeData, reqid)
	buf.AppendUint32(uint32(len(p.Data)))

	return buf.Packet(p.Data)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *DataPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
//
// The Data aliases the Buffer contents; per the ownership model a decoded
// packet does not outlive its dispatch turn.
func (p *DataPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	if p.Data, err = buf.ConsumeByteSlice(); err != nil {
		return err
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *DataPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// NameEntry implements the SSH_FXP_NAME repeated data type from draft-ietf-secsh-filexfer-02
type NameEntry struct {
	Filename string
	Longname string
	Attrs    Attributes
}

// Len returns the number of bytes e would marshal into.
func (e *NameEntry) Len() int {
	return 4 + len(e.Filename) + 4 + len(e.longname()) + e.Attrs.Len()
}

// longname returns the explicit Longname when set, and the canonical
// formatting computed from the attributes otherwise.
func (e *NameEntry) longname() string {
	if e.Longname != "" {
		return e.Longname
	}

	return FormatLongname(e.Filename, &e.Attrs)
}

// MarshalInto marshals e onto the end of the given Buffer.
func (e *NameEntry) MarshalInto(buf *Buffer) {
	buf.AppendString(e.Filename)
	buf.AppendString(e.longname())
	e.Attrs.MarshalInto(buf)
}

// UnmarshalFrom unmarshals a NameEntry from the given Buffer into e.
// The longname is accepted as sent; it is a display string, not round-trip data.
func (e *NameEntry) UnmarshalFrom(buf *Buffer) (err error) {
	if e.Filename, err = buf.ConsumeString(); err != nil {
		return err
	}

	if e.Longname, err = buf.ConsumeString(); err != nil {
		return err
	}

	return e.Attrs.UnmarshalFrom(buf)
}

// FormatLongname formats the canonical ls -l style listing line for a file
// with the given attributes:
//
//	<type><perm9> 0 <user> <group> <size> <mon> <dd> <yyyy> <hh>:<mm> <filename>
//
// The user and group columns prefer the textual names when known and fall
// back to the numeric ids; the timestamp is the mtime in UTC.
func FormatLongname(filename string, attrs *Attributes) string {
	perms := make([]byte, 0, 10)
	if attrs.IsDir() {
		perms = append(perms, 'd')
	} else {
		perms = append(perms, '-')
	}

	bits := attrs.Permissions
	for shift := 6; shift >= 0; shift -= 3 {
		triple := bits >> uint(shift)

		if triple&0o4 != 0 {
			perms = append(perms, 'r')
		} else {
			perms = append(perms, '-')
		}
		if triple&0o2 != 0 {
			perms = append(perms, 'w')
		} else {
			perms = append(perms, '-')
		}
		if triple&0o1 != 0 {
			perms = append(perms, 'x')
		} else {
			perms = append(perms, '-')
		}
	}

	user := attrs.User
	if user == "" {
		user = fmt.Sprint(attrs.UID)
	}

	group := attrs.Group
	if group == "" {
		group = fmt.Sprint(attrs.GID)
	}

	mtime := time.Unix(int64(attrs.MTime), 0).UTC()

	return fmt.Sprintf("%s 0 %s %s %d %s %s",
		perms, user, group, attrs.Size, mtime.Format("Jan 02 2006 15:04"), filename)
}

// NamePacket defines the SSH_FXP_NAME packet.
type NamePacket struct {
	RequestID uint32
	Entries   []*NameEntry
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *NamePacket) Type() PacketType {
	return PacketTypeName
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *NamePacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := 4 // uint32(count)
		for _, e := range p.Entries {
			size += e.Len()
		}
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeName, reqid)
	buf.AppendUint32(uint32(len(p.Entries)))

	for _, e := range p.Entries {
		e.MarshalInto(buf)
	}

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *NamePacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *NamePacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	count, err := buf.ConsumeUint32()
	if err != nil {
		return err
	}

	p.Entries = make([]*NameEntry, 0, count)
	for i := uint32(0); i < count; i++ {
		var e NameEntry
		if err := e.UnmarshalFrom(buf); err != nil {
			return err
		}

		p.Entries = append(p.Entries, &e)
	}

	return nil
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *NamePacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}

// AttrsPacket defines the SSH_FXP_ATTRS packet.
type AttrsPacket struct {
	RequestID uint32
	Attrs     Attributes
}

// Type returns the SSH_FXP_xy value associated with this packet type.
func (p *AttrsPacket) Type() PacketType {
	return PacketTypeAttrs
}

// MarshalPacket returns p as a two-part binary encoding of p.
// The internal p.RequestID is overridden by the reqid argument.
func (p *AttrsPacket) MarshalPacket(reqid uint32, b []byte) (header, payload []byte, err error) {
	buf := NewBuffer(b)
	if buf.Cap() < 9 {
		size := p.Attrs.Len() // attrs
		buf = NewMarshalBuffer(size)
	}

	buf.StartPacket(PacketTypeAttrs, reqid)
	p.Attrs.MarshalInto(buf)

	return buf.Packet(payload)
}

// MarshalBinary returns p as the binary encoding of p.
func (p *AttrsPacket) MarshalBinary() ([]byte, error) {
	return ComposePacket(p.MarshalPacket(p.RequestID, nil))
}

// UnmarshalPacketBody unmarshals the packet body from the given Buffer.
// It is assumed that the uint32(length), uint8(type) and uint32(request-id) have already been consumed.
func (p *AttrsPacket) UnmarshalPacketBody(buf *Buffer) (err error) {
	return p.Attrs.UnmarshalFrom(buf)
}

// UnmarshalBinary decodes the request-id and packet body from the given data.
func (p *AttrsPacket) UnmarshalBinary(data []byte) (err error) {
	buf := NewBuffer(data)
	if p.RequestID, err = buf.ConsumeUint32(); err != nil {
		return err
	}
	return p.UnmarshalPacketBody(buf)
}
