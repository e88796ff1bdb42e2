package codec

import (
	"bytes"
	"errors"
	"testing"
)

func TestReader_BigEndianValues(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}))

	u32, err := r.U32("first")
	if err != nil {
		t.Fatalf("U32 failed: %v", err)
	}
	if u32 != 0x01020304 {
		t.Errorf("U32 = %#x, want 0x01020304", u32)
	}

	u16, err := r.U16("second")
	if err != nil {
		t.Fatalf("U16 failed: %v", err)
	}
	if u16 != 0x0506 {
		t.Errorf("U16 = %#x, want 0x0506", u16)
	}

	u8, err := r.U8("third")
	if err != nil {
		t.Fatalf("U8 failed: %v", err)
	}
	if u8 != 0x07 {
		t.Errorf("U8 = %#x, want 0x07", u8)
	}

	if r.Offset() != 7 {
		t.Errorf("Offset = %d, want 7", r.Offset())
	}
}

func TestReader_TruncatedRead(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02}))

	_, err := r.U32("total length")
	var truncated *TruncatedError
	if !errors.As(err, &truncated) {
		t.Fatalf("expected TruncatedError, got %v", err)
	}
	if truncated.What != "total length" {
		t.Errorf("What = %q, want %q", truncated.What, "total length")
	}
	if truncated.Want != 4 || truncated.Got != 2 {
		t.Errorf("Want/Got = %d/%d, want 4/2", truncated.Want, truncated.Got)
	}
}

func TestReader_SeekAndReadCount(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xAA, 0xBB, 0xCC, 0xDD}))

	if _, err := r.U8("a"); err != nil {
		t.Fatal(err)
	}
	if err := r.Seek(3); err != nil {
		t.Fatal(err)
	}
	b, err := r.U8("b")
	if err != nil {
		t.Fatal(err)
	}
	if b != 0xDD {
		t.Errorf("read %#x after seek, want 0xDD", b)
	}
	if r.ReadCount() != 2 {
		t.Errorf("ReadCount = %d, want 2", r.ReadCount())
	}
}
