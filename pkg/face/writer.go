package face

import (
	"bytes"
	"fmt"
	"io"
	"time"
)

// SourceFrame pairs a representation header with its already-compressed
// payload bytes for serialization.
type SourceFrame struct {
	Header  Header
	Payload []byte
}

// WriterConfig holds configuration for a face container writer.
type WriterConfig struct {
	// Version selects the target schema; empty means V030.
	Version Version
	// Now supplies the timestamp substituted for a zero capture datetime in
	// the non-legacy layouts. It is the only source of non-determinism a
	// Writer can introduce; fix it to make output byte-reproducible.
	Now func() time.Time
}

// Writer serializes face containers for one schema version. All length fields
// and file-level flags are derived from the frames, never supplied.
type Writer struct {
	version Version
	now     func() time.Time
}

// NewWriter creates a writer with the given configuration.
func NewWriter(config WriterConfig) (*Writer, error) {
	version := config.Version
	if version == "" {
		version = V030
	}
	if !version.Valid() {
		return nil, fmt.Errorf("iso19794: unsupported face version %q", config.Version)
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}
	return &Writer{version: version, now: now}, nil
}

// Write serializes a single-frame container.
func (w *Writer) Write(out io.Writer, frame SourceFrame) error {
	return w.WriteAll(out, []SourceFrame{frame})
}

// WriteAll serializes a container holding the frames in order. In the
// non-legacy prologue the temporal semantics count is 1 for a multi-frame
// container and 0 otherwise, and the certification flag is always clear (the
// face family defines no certification blocks).
func (w *Writer) WriteAll(out io.Writer, frames []SourceFrame) error {
	if len(frames) == 0 {
		return fmt.Errorf("iso19794: no frames to write")
	}
	if len(frames) > 0xFFFF {
		return fmt.Errorf("iso19794: %d frames exceed the 16-bit frame count", len(frames))
	}

	var body bytes.Buffer
	for i, f := range frames {
		header, err := encodeHeader(&f.Header, w.version, len(f.Payload), w.now)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		body.Write(header)
		body.Write(f.Payload)
	}

	var temporal uint16
	if len(frames) > 1 {
		temporal = 1
	}
	var buf bytes.Buffer
	encodeGeneral(&buf, General{
		Version:           w.version,
		Length:            uint32(w.version.generalSize() + body.Len()),
		FrameCount:        uint16(len(frames)),
		TemporalSemantics: temporal,
	})
	if _, err := out.Write(buf.Bytes()); err != nil {
		return err
	}
	_, err := out.Write(body.Bytes())
	return err
}
