package finger

import (
	"io"

	"github.com/idemia/go-iso19794/pkg/codec"
	"github.com/idemia/go-iso19794/pkg/container"
	"github.com/idemia/go-iso19794/pkg/imaging"
)

// Frame is a resolved finger frame.
type Frame = container.Frame[*Header]

// ReaderConfig holds configuration for a finger container reader.
type ReaderConfig struct {
	// Reserved for future options; the finger layout carries every field,
	// so no decode-time defaults are synthesized.
}

// Reader navigates a finger container over a seekable byte source. The source
// is owned exclusively by the reader while open; concurrent use requires
// external synchronization.
type Reader struct {
	general General
	nav     *container.Navigator[*Header]
}

// NewReader opens a container positioned at the start of rs, parses the
// general header and resolves the first frame.
func NewReader(rs io.ReadSeeker, config ReaderConfig) (*Reader, error) {
	_ = config
	r := codec.NewReader(rs)
	if err := r.Seek(0); err != nil {
		return nil, err
	}
	general, err := decodeGeneral(r)
	if err != nil {
		return nil, err
	}
	decode := func(r *codec.Reader) (*Header, int, uint32, error) {
		return decodeHeader(r, general.CertificationFlag)
	}
	nav, err := container.NewNavigator(r, generalHeaderSize, int(general.FrameCount), decode)
	if err != nil {
		return nil, err
	}
	return &Reader{general: general, nav: nav}, nil
}

// General returns the parsed file-level header.
func (r *Reader) General() General {
	return r.general
}

// NumFrames returns the number of frames the container declares.
func (r *Reader) NumFrames() int {
	return r.nav.Count()
}

// Tell returns the current frame index.
func (r *Reader) Tell() int {
	return r.nav.Tell()
}

// Current returns the frame the reader is positioned at.
func (r *Reader) Current() *Frame {
	return r.nav.Current()
}

// Seek selects frame i as current.
func (r *Reader) Seek(i int) error {
	return r.nav.Seek(i)
}

// Frame seeks to frame i and returns it.
func (r *Reader) Frame(i int) (*Frame, error) {
	return r.nav.Frame(i)
}

// ReadPayload reads a frame's compressed image payload.
func (r *Reader) ReadPayload(f *Frame) ([]byte, error) {
	return r.nav.ReadPayload(f)
}

// PayloadFormat names the payload's concrete format. For JPEG 2000 payloads
// the header alone is ambiguous, so the payload's magic bytes decide between
// the bare codestream and the JP2 wrapper.
func (r *Reader) PayloadFormat(f *Frame) (string, error) {
	algo := f.Header.ImageCompressionAlgo
	if !algo.JPEG2000() {
		return algo.String(), nil
	}
	sig, err := r.nav.PeekPayload(f, imaging.SniffLen)
	if err != nil {
		return "", err
	}
	variant, ok := imaging.DetectJPEG2000(sig)
	if !ok {
		return "", &codec.FormatError{Msg: "payload is not a JPEG 2000 stream"}
	}
	return variant, nil
}

// ReadCount reports the reads issued to the underlying source.
func (r *Reader) ReadCount() int {
	return r.nav.Reader().ReadCount()
}
