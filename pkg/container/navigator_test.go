package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/idemia/go-iso19794/pkg/codec"
)

type fakeHeader struct {
	ID byte
}

// fakeFrame builds a frame of the synthetic layout used below:
// a 4-byte length, a 1-byte header and an opaque payload.
func fakeFrame(id byte, payload []byte) []byte {
	frame := make([]byte, 5, 5+len(payload))
	binary.BigEndian.PutUint32(frame, uint32(5+len(payload)))
	frame[4] = id
	return append(frame, payload...)
}

func decodeFake(r *codec.Reader) (*fakeHeader, int, uint32, error) {
	length, err := r.U32("frame length")
	if err != nil {
		return nil, 0, 0, err
	}
	id, err := r.U8("frame id")
	if err != nil {
		return nil, 0, 0, err
	}
	return &fakeHeader{ID: id}, 5, length, nil
}

func threeFrameSource() *codec.Reader {
	var buf bytes.Buffer
	buf.Write([]byte{0xDE, 0xAD}) // stand-in general header
	buf.Write(fakeFrame(10, []byte("aaaa")))
	buf.Write(fakeFrame(20, []byte("bb")))
	buf.Write(fakeFrame(30, []byte("cccccc")))
	return codec.NewReader(bytes.NewReader(buf.Bytes()))
}

func TestNavigator_EagerFirstFrame(t *testing.T) {
	nav, err := NewNavigator(threeFrameSource(), 2, 3, decodeFake)
	if err != nil {
		t.Fatalf("NewNavigator failed: %v", err)
	}
	if nav.Tell() != 0 {
		t.Errorf("Tell = %d, want 0", nav.Tell())
	}
	f := nav.Current()
	if f.Header.ID != 10 {
		t.Errorf("frame 0 header id = %d, want 10", f.Header.ID)
	}
	if f.PayloadOffset() != 7 || f.PayloadLength() != 4 {
		t.Errorf("payload at %d+%d, want 7+4", f.PayloadOffset(), f.PayloadLength())
	}
}

func TestNavigator_OutOfRange(t *testing.T) {
	nav, err := NewNavigator(threeFrameSource(), 2, 3, decodeFake)
	if err != nil {
		t.Fatal(err)
	}

	for _, i := range []int{-1, 3, 99} {
		err := nav.Seek(i)
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("Seek(%d): expected RangeError, got %v", i, err)
		}
		if nav.Tell() != 0 {
			t.Errorf("Seek(%d) moved the cursor to %d", i, nav.Tell())
		}
	}
}

func TestNavigator_ForwardResolutionIsCached(t *testing.T) {
	r := threeFrameSource()
	nav, err := NewNavigator(r, 2, 3, decodeFake)
	if err != nil {
		t.Fatal(err)
	}

	if err := nav.Seek(2); err != nil {
		t.Fatalf("Seek(2) failed: %v", err)
	}
	if nav.Current().Header.ID != 30 {
		t.Errorf("frame 2 header id = %d, want 30", nav.Current().Header.ID)
	}

	// Moving back to already-resolved frames must not touch the stream.
	reads := r.ReadCount()
	if err := nav.Seek(1); err != nil {
		t.Fatalf("Seek(1) failed: %v", err)
	}
	if err := nav.Seek(0); err != nil {
		t.Fatalf("Seek(0) failed: %v", err)
	}
	if got := r.ReadCount(); got != reads {
		t.Errorf("backward navigation issued %d extra reads", got-reads)
	}
	if nav.Current().Header.ID != 10 {
		t.Errorf("frame 0 header id = %d, want 10", nav.Current().Header.ID)
	}
}

func TestNavigator_HeaderMutationSurvivesNavigation(t *testing.T) {
	nav, err := NewNavigator(threeFrameSource(), 2, 3, decodeFake)
	if err != nil {
		t.Fatal(err)
	}

	nav.Current().Header.ID = 99
	if err := nav.Seek(2); err != nil {
		t.Fatal(err)
	}
	if err := nav.Seek(0); err != nil {
		t.Fatal(err)
	}
	if got := nav.Current().Header.ID; got != 99 {
		t.Errorf("header mutation lost: id = %d, want 99", got)
	}
}

func TestNavigator_ReadPayload(t *testing.T) {
	nav, err := NewNavigator(threeFrameSource(), 2, 3, decodeFake)
	if err != nil {
		t.Fatal(err)
	}
	f, err := nav.Frame(1)
	if err != nil {
		t.Fatal(err)
	}
	payload, err := nav.ReadPayload(f)
	if err != nil {
		t.Fatalf("ReadPayload failed: %v", err)
	}
	if string(payload) != "bb" {
		t.Errorf("payload = %q, want %q", payload, "bb")
	}
}

func TestNavigator_NoFrames(t *testing.T) {
	_, err := NewNavigator(threeFrameSource(), 2, 0, decodeFake)
	var format *codec.FormatError
	if !errors.As(err, &format) {
		t.Fatalf("expected FormatError for an empty container, got %v", err)
	}
}

func TestNavigator_FrameLengthShorterThanHeader(t *testing.T) {
	var buf bytes.Buffer
	frame := fakeFrame(1, nil)
	binary.BigEndian.PutUint32(frame, 3) // lies: shorter than its own header
	buf.Write(frame)

	_, err := NewNavigator(codec.NewReader(bytes.NewReader(buf.Bytes())), 0, 1, decodeFake)
	var truncated *codec.TruncatedError
	if !errors.As(err, &truncated) {
		t.Fatalf("expected TruncatedError, got %v", err)
	}
}
