package sshfx

import (
	"bytes"
	"testing"
)

func TestInitPacket(t *testing.T) {
	p := &InitPacket{
		Version: 3,
	}

	data, err := p.MarshalBinary()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	want := []byte{
		0x00, 0x00, 0x00, 5,
		1,
		0x00, 0x00, 0x00, 3,
	}

	if !bytes.Equal(data, want) {
		t.Fatalf("Marshal() = %X, but wanted %X", data, want)
	}

	*p = InitPacket{}

	// UnmarshalBinary assumes the uint32(length) + uint8(type) have already been consumed.
	if err := p.UnmarshalBinary(data[5:]); err != nil {
		t.Fatal("unexpected error:", err)
	}

	if p.Version != 3 {
		t.Errorf("UnmarshalBinary(): Version was %d, but expected 3", p.Version)
	}

	if len(p.Extensions) != 0 {
		t.Errorf("UnmarshalBinary(): Extensions has %d entries, but expected none", len(p.Extensions))
	}
}

func TestInitPacketExtensions(t *testing.T) {
	p := &InitPacket{
		Version: 3,
		Extensions: []*ExtensionPair{
			{
				Name: "posix-rename@openssh.com",
				Data: "1",
			},
		},
	}

	data, err := p.MarshalBinary()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	*p = InitPacket{}

	if err := p.UnmarshalBinary(data[5:]); err != nil {
		t.Fatal("unexpected error:", err)
	}

	if len(p.Extensions) != 1 {
		t.Fatalf("UnmarshalBinary(): Extensions has %d entries, but expected 1", len(p.Extensions))
	}

	if p.Extensions[0].Name != "posix-rename@openssh.com" {
		t.Errorf("UnmarshalBinary(): Extensions[0].Name was %q", p.Extensions[0].Name)
	}

	if p.Extensions[0].Data != "1" {
		t.Errorf("UnmarshalBinary(): Extensions[0].Data was %q", p.Extensions[0].Data)
	}
}

func TestVersionPacket(t *testing.T) {
	p := &VersionPacket{
		Version: 3,
	}

	data, err := p.MarshalBinary()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	want := []byte{
		0x00, 0x00, 0x00, 5,
		2,
		0x00, 0x00, 0x00, 3,
	}

	if !bytes.Equal(data, want) {
		t.Fatalf("Marshal() = %X, but wanted %X", data, want)
	}

	*p = VersionPacket{}

	if err := p.UnmarshalBinary(data[5:]); err != nil {
		t.Fatal("unexpected error:", err)
	}

	if p.Version != 3 {
		t.Errorf("UnmarshalBinary(): Version was %d, but expected 3", p.Version)
	}
}
