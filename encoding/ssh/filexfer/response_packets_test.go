package sshfx

import (
	"bytes"
	"testing"
)

func TestStatusPacket(t *testing.T) {
	p := NewStatus(2, StatusOK)

	data, err := p.MarshalBinary()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	want := []byte{
		0x00, 0x00, 0x00, 24,
		101,
		0x00, 0x00, 0x00, 2,
		0x00, 0x00, 0x00, 0,
		0x00, 0x00, 0x00, 2, 'O', 'k',
		0x00, 0x00, 0x00, 5, 'e', 'n', '-', 'U', 'S',
	}

	if !bytes.Equal(data, want) {
		t.Fatalf("Marshal() = %X, but wanted %X", data, want)
	}

	*p = StatusPacket{}

	// UnmarshalBinary assumes the uint32(length) + uint8(type) have already been consumed.
	if err := p.UnmarshalBinary(data[5:]); err != nil {
		t.Fatal("unexpected error:", err)
	}

	if p.RequestID != 2 {
		t.Errorf("UnmarshalBinary(): RequestID was %d, but expected 2", p.RequestID)
	}

	if p.StatusCode != StatusOK {
		t.Errorf("UnmarshalBinary(): StatusCode was %v, but expected %v", p.StatusCode, StatusOK)
	}

	if p.ErrorMessage != "Ok" {
		t.Errorf("UnmarshalBinary(): ErrorMessage was %q, but expected %q", p.ErrorMessage, "Ok")
	}

	if p.LanguageTag != "en-US" {
		t.Errorf("UnmarshalBinary(): LanguageTag was %q, but expected %q", p.LanguageTag, "en-US")
	}
}

func TestNamePacketEmpty(t *testing.T) {
	p := &NamePacket{
		RequestID: 3,
	}

	data, err := p.MarshalBinary()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	want := []byte{
		0x00, 0x00, 0x00, 9,
		104,
		0x00, 0x00, 0x00, 3,
		0x00, 0x00, 0x00, 0,
	}

	if !bytes.Equal(data, want) {
		t.Fatalf("Marshal() = %X, but wanted %X", data, want)
	}
}

func TestFormatLongnameFile(t *testing.T) {
	attrs := Attributes{}
	attrs.SetSize(1234)
	attrs.SetUIDGID(1000, 100)
	attrs.SetPermissions(0o644)
	attrs.SetACModTime(0, 1234567890) // 2009-02-13 23:31:30 UTC

	got := FormatLongname("notes.txt", &attrs)
	want := "-rw-r--r-- 0 1000 100 1234 Feb 13 2009 23:31 notes.txt"

	if got != want {
		t.Errorf("FormatLongname() = %q, but expected %q", got, want)
	}
}

func TestFormatLongnameDirWithNames(t *testing.T) {
	attrs := Attributes{
		User:  "root",
		Group: "wheel",
	}
	attrs.SetPermissions(0o755 | ModeDir)
	attrs.SetACModTime(0, 0)

	got := FormatLongname("etc", &attrs)
	want := "drwxr-xr-x 0 root wheel 0 Jan 01 1970 00:00 etc"

	if got != want {
		t.Errorf("FormatLongname() = %q, but expected %q", got, want)
	}
}

func TestFormatLongnameNoAttrs(t *testing.T) {
	var attrs Attributes

	got := FormatLongname("x", &attrs)
	want := "---------- 0 0 0 0 Jan 01 1970 00:00 x"

	if got != want {
		t.Errorf("FormatLongname() = %q, but expected %q", got, want)
	}
}

func TestNameEntryComputedLongname(t *testing.T) {
	attrs := Attributes{}
	attrs.SetSize(1234)
	attrs.SetUIDGID(1000, 100)
	attrs.SetPermissions(0o644)
	attrs.SetACModTime(0, 1234567890)

	e := &NameEntry{
		Filename: "notes.txt",
		Attrs:    attrs,
	}

	var buf Buffer
	e.MarshalInto(&buf)

	var got NameEntry
	if err := got.UnmarshalFrom(&buf); err != nil {
		t.Fatal("unexpected error:", err)
	}

	want := "-rw-r--r-- 0 1000 100 1234 Feb 13 2009 23:31 notes.txt"
	if got.Longname != want {
		t.Errorf("marshaled longname was %q, but expected %q", got.Longname, want)
	}

	// An explicit longname is passed through untouched.
	e.Longname = "whatever the peer sent"
	buf = Buffer{}
	e.MarshalInto(&buf)

	if err := got.UnmarshalFrom(&buf); err != nil {
		t.Fatal("unexpected error:", err)
	}

	if got.Longname != "whatever the peer sent" {
		t.Errorf("marshaled longname was %q, but expected the explicit value", got.Longname)
	}
}
