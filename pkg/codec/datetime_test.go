package codec

import (
	"bytes"
	"testing"
	"time"
)

func TestDatetime_RoundTrip(t *testing.T) {
	want := time.Date(2019, time.June, 21, 14, 30, 5, 250*int(time.Millisecond), time.UTC)

	var buf bytes.Buffer
	WriteDatetime(&buf, want)
	if buf.Len() != DatetimeSize {
		t.Fatalf("encoded %d bytes, want %d", buf.Len(), DatetimeSize)
	}

	got, err := ReadDatetime(NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("ReadDatetime failed: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("round trip mismatch: got %v, want %v", got, want)
	}
}

func TestDatetime_Layout(t *testing.T) {
	var buf bytes.Buffer
	WriteDatetime(&buf, time.Date(2019, time.June, 21, 14, 30, 5, 250*int(time.Millisecond), time.UTC))

	want := []byte{0x07, 0xE3, 6, 21, 14, 30, 5, 0x00, 0xFA}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("encoded bytes = % x, want % x", buf.Bytes(), want)
	}
}

func TestDatetime_ConvertsToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*3600)
	local := time.Date(2020, time.January, 1, 1, 0, 0, 0, zone)

	var buf bytes.Buffer
	WriteDatetime(&buf, local)

	got, err := ReadDatetime(NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("ReadDatetime failed: %v", err)
	}
	if !got.Equal(local) {
		t.Errorf("got %v, want the instant %v", got, local)
	}
	if got.Year() != 2019 || got.Month() != time.December {
		t.Errorf("expected the UTC rendering 2019-12-31, got %v", got)
	}
}
