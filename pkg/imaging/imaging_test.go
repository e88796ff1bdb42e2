package imaging

import (
	"bytes"
	"testing"
)

func TestMode(t *testing.T) {
	cases := []struct {
		mode     Mode
		channels int
		depth    int
	}{
		{ModeGray, 1, 8},
		{ModeRGB, 3, 24},
		{ModeYCbCr, 3, 24},
	}
	for _, tc := range cases {
		if !tc.mode.Valid() {
			t.Errorf("%q not valid", tc.mode)
		}
		if got := tc.mode.Channels(); got != tc.channels {
			t.Errorf("%q channels = %d, want %d", tc.mode, got, tc.channels)
		}
		if got := tc.mode.BitDepth(); got != tc.depth {
			t.Errorf("%q bit depth = %d, want %d", tc.mode, got, tc.depth)
		}
	}
	if Mode("CMYK").Valid() {
		t.Error("undefined mode accepted")
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"RAW", "RAW_PACKED", "JPEG"} {
		if _, ok := Lookup(name); !ok {
			t.Errorf("%q not registered", name)
		}
	}
	if _, ok := Lookup("WSQ"); ok {
		t.Error("WSQ registered without an external codec")
	}
}

func TestRawCodec(t *testing.T) {
	c, _ := Lookup("RAW")
	pixels := make([]byte, 4*3)
	for i := range pixels {
		pixels[i] = byte(i)
	}

	out, err := c.Encode(pixels, ModeGray, 4, 3)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(out, pixels) {
		t.Error("raw encode is not a passthrough")
	}
	back, err := c.Decode(out, ModeGray, 4, 3)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(back, pixels) {
		t.Error("raw decode is not a passthrough")
	}

	if _, err := c.Decode(pixels, ModeRGB, 4, 3); err == nil {
		t.Error("size mismatch accepted for RGB")
	}
}

func TestJPEGCodec_RoundTrip(t *testing.T) {
	c, ok := Lookup("JPEG")
	if !ok {
		t.Fatal("JPEG codec not registered")
	}
	const w, h = 8, 8
	pixels := make([]byte, w*h)
	for i := range pixels {
		pixels[i] = 0x80
	}
	payload, err := c.Encode(pixels, ModeGray, w, h)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(payload) < 2 || payload[0] != 0xFF || payload[1] != 0xD8 {
		t.Errorf("payload does not start with a JPEG marker: % X", payload[:2])
	}
	back, err := c.Decode(payload, ModeGray, w, h)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(back) != w*h {
		t.Fatalf("decoded %d pixels, want %d", len(back), w*h)
	}
	// Lossy, so allow a small deviation from the flat input.
	for i, p := range back {
		if p < 0x78 || p > 0x88 {
			t.Fatalf("pixel %d = %#x, outside tolerance of %#x", i, p, 0x80)
		}
	}
}

func TestJPEGCodec_DimensionMismatch(t *testing.T) {
	c, _ := Lookup("JPEG")
	payload, err := c.Encode(make([]byte, 8*8), ModeGray, 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Decode(payload, ModeGray, 16, 16); err == nil {
		t.Error("dimension mismatch accepted")
	}
}

func TestDetectJPEG2000(t *testing.T) {
	j2k := []byte{0xFF, 0x4F, 0xFF, 0x51, 0x00, 0x2F}
	jp2 := []byte{0x00, 0x00, 0x00, 0x0C, 'j', 'P', ' ', ' ', 0x0D, 0x0A, 0x87, 0x0A}

	if v, ok := DetectJPEG2000(j2k); !ok || v != JPEG2000Codestream {
		t.Errorf("j2k signature detected as %q/%v", v, ok)
	}
	if v, ok := DetectJPEG2000(jp2); !ok || v != JPEG2000JP2 {
		t.Errorf("jp2 signature detected as %q/%v", v, ok)
	}
	if _, ok := DetectJPEG2000([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0, 0, 0, 0, 0, 0, 0}); ok {
		t.Error("JFIF bytes detected as JPEG 2000")
	}
	if _, ok := DetectJPEG2000(jp2[:3]); ok {
		t.Error("short signature accepted")
	}
}
