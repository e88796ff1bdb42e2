// Package container implements frame navigation for ISO 19794 containers.
//
// A container's only navigation aid is the forward chain of per-frame length
// fields, so random access means walking the chain. The Navigator resolves
// frame offsets lazily on demand and caches every resolved frame, making
// repeat access O(1) without ever re-reading a header from the stream.
package container

import (
	"fmt"

	"github.com/idemia/go-iso19794/pkg/codec"
)

// RangeError reports a navigation request outside [0, Count). The navigator's
// position is unchanged after a RangeError.
type RangeError struct {
	Index int
	Count int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("iso19794: frame %d outside sequence of %d", e.Index, e.Count)
}

// Frame is one resolved frame: its byte coordinates within the container and
// its decoded representation header.
//
// The family packages instantiate H with a header pointer, so a header served
// by the navigator is a mutable cell: changes a caller makes to it are visible
// again when the caller navigates back to the frame.
type Frame[H any] struct {
	Index      int
	Offset     int64  // absolute offset of the frame's length field
	Length     uint32 // declared total frame length, header included
	HeaderSize int    // bytes from frame start through end of header
	Header     H
}

// PayloadOffset returns the absolute offset of the frame's image payload.
func (f *Frame[H]) PayloadOffset() int64 {
	return f.Offset + int64(f.HeaderSize)
}

// PayloadLength returns the payload size implied by the frame's length field.
func (f *Frame[H]) PayloadLength() int64 {
	return int64(f.Length) - int64(f.HeaderSize)
}

// DecodeHeaderFunc decodes one representation header at the reader's current
// position, returning the header, the bytes consumed (length field included)
// and the frame's declared total length.
type DecodeHeaderFunc[H any] func(r *codec.Reader) (header H, headerSize int, length uint32, err error)

// Navigator is a cursor over a container's frames. Offsets are resolved by
// walking the length chain forward; resolved frames are cached in an arena
// indexed by position and never re-read. A Navigator owns its reader
// exclusively and is not safe for concurrent use.
type Navigator[H any] struct {
	r      *codec.Reader
	decode DecodeHeaderFunc[H]
	count  int
	frames []*Frame[H]
	pos    int
}

// NewNavigator opens a navigator over count frames starting at firstOffset,
// which must point just past the general header. The first frame is resolved
// eagerly so callers have immediate access to its header.
func NewNavigator[H any](r *codec.Reader, firstOffset int64, count int, decode DecodeHeaderFunc[H]) (*Navigator[H], error) {
	if count < 1 {
		return nil, &codec.FormatError{Msg: "container declares no frames"}
	}
	n := &Navigator[H]{
		r:      r,
		decode: decode,
		count:  count,
		frames: make([]*Frame[H], 0, count),
	}
	if err := n.resolve(firstOffset); err != nil {
		return nil, err
	}
	return n, nil
}

// Count returns the number of frames the general header declares.
func (n *Navigator[H]) Count() int {
	return n.count
}

// Tell returns the current frame index.
func (n *Navigator[H]) Tell() int {
	return n.pos
}

// Current returns the frame the navigator is positioned at.
func (n *Navigator[H]) Current() *Frame[H] {
	return n.frames[n.pos]
}

// Seek positions the navigator at frame i, resolving any intervening frames
// the first time they are crossed.
func (n *Navigator[H]) Seek(i int) error {
	if i < 0 || i >= n.count {
		return &RangeError{Index: i, Count: n.count}
	}
	for len(n.frames) <= i {
		last := n.frames[len(n.frames)-1]
		if err := n.resolve(last.Offset + int64(last.Length)); err != nil {
			return err
		}
	}
	n.pos = i
	return nil
}

// Frame seeks to frame i and returns it.
func (n *Navigator[H]) Frame(i int) (*Frame[H], error) {
	if err := n.Seek(i); err != nil {
		return nil, err
	}
	return n.frames[i], nil
}

// ReadPayload reads the frame's complete payload bytes.
func (n *Navigator[H]) ReadPayload(f *Frame[H]) ([]byte, error) {
	if err := n.r.Seek(f.PayloadOffset()); err != nil {
		return nil, err
	}
	return n.r.Bytes("frame payload", int(f.PayloadLength()))
}

// PeekPayload reads up to limit bytes from the start of the frame's payload,
// for discriminating payload sub-variants by their magic bytes.
func (n *Navigator[H]) PeekPayload(f *Frame[H], limit int) ([]byte, error) {
	if pl := f.PayloadLength(); int64(limit) > pl {
		limit = int(pl)
	}
	if err := n.r.Seek(f.PayloadOffset()); err != nil {
		return nil, err
	}
	return n.r.Bytes("payload signature", limit)
}

// Reader exposes the underlying positioned reader.
func (n *Navigator[H]) Reader() *codec.Reader {
	return n.r
}

// resolve decodes the header at offset and appends the frame to the arena.
func (n *Navigator[H]) resolve(offset int64) error {
	if err := n.r.Seek(offset); err != nil {
		return err
	}
	header, headerSize, length, err := n.decode(n.r)
	if err != nil {
		return err
	}
	if int(length) < headerSize {
		return &codec.TruncatedError{What: "frame", Want: headerSize, Got: int(length)}
	}
	n.frames = append(n.frames, &Frame[H]{
		Index:      len(n.frames),
		Offset:     offset,
		Length:     length,
		HeaderSize: headerSize,
		Header:     header,
	})
	return nil
}
