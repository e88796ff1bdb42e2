package finger

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

// WriterConfig holds configuration for a finger container writer.
type WriterConfig struct {
	// Now supplies the timestamp substituted for a zero capture datetime.
	// It is the only source of non-determinism a Writer can introduce;
	// fix it to make output byte-reproducible.
	Now func() time.Time
}

// Writer serializes finger containers. All length fields, the certification
// flag and the position count are derived from the frames, never supplied.
type Writer struct {
	now func() time.Time
}

// NewWriter creates a writer with the given configuration.
func NewWriter(config WriterConfig) *Writer {
	now := config.Now
	if now == nil {
		now = time.Now
	}
	return &Writer{now: now}
}

// Write serializes a single-frame container.
func (w *Writer) Write(out io.Writer, frame SourceFrame) error {
	return w.WriteAll(out, []SourceFrame{frame})
}

// WriteAll serializes a container holding the frames in order. The
// certification flag is the OR over the frames' certification lists; when set,
// every frame carries a certification block, empty or not. The position count
// is the number of distinct positions across frames.
func (w *Writer) WriteAll(out io.Writer, frames []SourceFrame) error {
	if len(frames) == 0 {
		return fmt.Errorf("iso19794: no frames to write")
	}
	if len(frames) > 0xFFFF {
		return fmt.Errorf("iso19794: %d frames exceed the 16-bit frame count", len(frames))
	}

	certFlag := false
	positions := make(map[Position]struct{})
	for _, f := range frames {
		if len(f.Header.CertificationRecords) > 0 {
			certFlag = true
		}
		positions[f.Header.Position] = struct{}{}
	}

	var body bytes.Buffer
	for i, f := range frames {
		header, err := encodeHeader(&f.Header, len(f.Payload), certFlag, w.now)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		body.Write(header)
		body.Write(f.Payload)
	}

	positionCount := len(positions)
	if positionCount > 255 {
		positionCount = 255
	}
	var buf bytes.Buffer
	encodeGeneral(&buf, General{
		Length:            uint32(generalHeaderSize + body.Len()),
		FrameCount:        uint16(len(frames)),
		CertificationFlag: certFlag,
		PositionCount:     uint8(positionCount),
	})
	if _, err := out.Write(buf.Bytes()); err != nil {
		return err
	}
	_, err := out.Write(body.Bytes())
	return err
}
