package sshfx

import (
	"bytes"
	"reflect"
	"testing"
)

func TestAttributesEmpty(t *testing.T) {
	var attrs Attributes
	var buf Buffer

	attrs.MarshalInto(&buf)

	want := []byte{0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("MarshalInto() = %X, but wanted %X", buf.Bytes(), want)
	}

	if attrs.Len() != 4 {
		t.Errorf("Len() = %d, but expected 4", attrs.Len())
	}
}

func TestAttributesAllFlags(t *testing.T) {
	attrs := Attributes{
		Flags: AttrSize | AttrUIDGID | AttrPermissions | AttrACModTime | AttrExtended,

		Size:        0x123456789ABCDEF0,
		UID:         1000,
		GID:         100,
		Permissions: 0o100644,
		ATime:       1,
		MTime:       2,

		ExtendedAttributes: []ExtendedAttribute{
			{
				Type: "foo",
				Data: "bar",
			},
		},
	}

	var buf Buffer
	attrs.MarshalInto(&buf)

	if buf.Len() != attrs.Len() {
		t.Errorf("MarshalInto() wrote %d bytes, but Len() = %d", buf.Len(), attrs.Len())
	}

	var got Attributes
	if err := got.UnmarshalFrom(&buf); err != nil {
		t.Fatal("unexpected error:", err)
	}

	if !reflect.DeepEqual(got, attrs) {
		t.Errorf("UnmarshalFrom() = %#v, but expected %#v", got, attrs)
	}
}

func TestAttributesPartialFlags(t *testing.T) {
	var attrs Attributes
	attrs.SetSize(1024)
	attrs.SetPermissions(0o755)

	var buf Buffer
	attrs.MarshalInto(&buf)

	// uint32(flags) + uint64(size) + uint32(permissions)
	if buf.Len() != 4+8+4 {
		t.Errorf("MarshalInto() wrote %d bytes, but expected 16", buf.Len())
	}

	var got Attributes
	if err := got.UnmarshalFrom(&buf); err != nil {
		t.Fatal("unexpected error:", err)
	}

	if got.Flags != AttrSize|AttrPermissions {
		t.Errorf("Flags = %x, but expected %x", got.Flags, AttrSize|AttrPermissions)
	}

	if got.Size != 1024 {
		t.Errorf("Size = %d, but expected 1024", got.Size)
	}

	if got.Permissions != 0o755 {
		t.Errorf("Permissions = %o, but expected 755", got.Permissions)
	}
}

func TestAttributesTruncated(t *testing.T) {
	var buf Buffer
	buf.AppendUint32(AttrSize)
	buf.AppendUint32(0) // only half of the uint64 size

	var got Attributes
	if err := got.UnmarshalFrom(&buf); err != ErrShortPacket {
		t.Errorf("UnmarshalFrom() = %v, but expected %v", err, ErrShortPacket)
	}
}

func TestAttributesIsDir(t *testing.T) {
	var attrs Attributes
	attrs.SetPermissions(0o755 | ModeDir)

	if !attrs.IsDir() {
		t.Error("IsDir() = false, but expected true")
	}

	attrs.SetPermissions(0o644)
	if attrs.IsDir() {
		t.Error("IsDir() = true, but expected false")
	}
}
