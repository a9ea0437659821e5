package sshfx

import (
	"bytes"
	"testing"
)

func TestBufferZeroLengthString(t *testing.T) {
	var buf Buffer

	buf.AppendString("")

	want := []byte{0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("AppendString(\"\") = %X, but wanted %X", buf.Bytes(), want)
	}

	s, err := buf.ConsumeString()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if s != "" {
		t.Errorf("ConsumeString() = %q, but expected empty string", s)
	}

	if buf.Len() != 0 {
		t.Errorf("Len() = %d, but expected no unconsumed bytes", buf.Len())
	}
}

func TestBufferShortReads(t *testing.T) {
	if _, err := NewBuffer(nil).ConsumeUint8(); err != ErrShortPacket {
		t.Errorf("ConsumeUint8() = %v, but expected %v", err, ErrShortPacket)
	}

	if _, err := NewBuffer([]byte{1, 2, 3}).ConsumeUint32(); err != ErrShortPacket {
		t.Errorf("ConsumeUint32() = %v, but expected %v", err, ErrShortPacket)
	}

	if _, err := NewBuffer([]byte{1, 2, 3, 4, 5, 6, 7}).ConsumeUint64(); err != ErrShortPacket {
		t.Errorf("ConsumeUint64() = %v, but expected %v", err, ErrShortPacket)
	}

	// A declared length longer than the remaining bytes is also short.
	if _, err := NewBuffer([]byte{0x00, 0x00, 0x00, 0x05, 'a', 'b'}).ConsumeByteSlice(); err != ErrShortPacket {
		t.Errorf("ConsumeByteSlice() = %v, but expected %v", err, ErrShortPacket)
	}
}

func TestBufferInvalidUTF8(t *testing.T) {
	var buf Buffer
	buf.AppendByteSlice([]byte{0xff, 0xff, 0xff})

	if _, err := buf.ConsumeString(); err != ErrInvalidUTF8 {
		t.Errorf("ConsumeString() = %v, but expected %v", err, ErrInvalidUTF8)
	}
}

func TestBufferRoundTrip(t *testing.T) {
	var buf Buffer

	buf.AppendUint8(42)
	buf.AppendUint32(0xDEADBEEF)
	buf.AppendUint64(0x123456789ABCDEF0)
	buf.AppendString("foo")
	buf.AppendByteSlice([]byte{9, 8, 7})

	if v, err := buf.ConsumeUint8(); err != nil || v != 42 {
		t.Errorf("ConsumeUint8() = (%d, %v), but expected 42", v, err)
	}

	if v, err := buf.ConsumeUint32(); err != nil || v != 0xDEADBEEF {
		t.Errorf("ConsumeUint32() = (%X, %v), but expected DEADBEEF", v, err)
	}

	if v, err := buf.ConsumeUint64(); err != nil || v != 0x123456789ABCDEF0 {
		t.Errorf("ConsumeUint64() = (%X, %v), but expected 123456789ABCDEF0", v, err)
	}

	if v, err := buf.ConsumeString(); err != nil || v != "foo" {
		t.Errorf("ConsumeString() = (%q, %v), but expected \"foo\"", v, err)
	}

	if v, err := buf.ConsumeByteSlice(); err != nil || !bytes.Equal(v, []byte{9, 8, 7}) {
		t.Errorf("ConsumeByteSlice() = (%X, %v), but expected 090807", v, err)
	}

	if buf.Len() != 0 {
		t.Errorf("Len() = %d, but expected no unconsumed bytes", buf.Len())
	}
}
