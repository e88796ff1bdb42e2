package codec

import (
	"encoding/binary"
	"io"
)

// Reader is a positioned big-endian reader over a seekable byte source.
//
// It tracks the absolute offset of the next read and counts the calls made to
// the underlying source, so navigation code can prove which accesses were
// served from cache. A Reader is not safe for concurrent use.
type Reader struct {
	rs     io.ReadSeeker
	offset int64
	reads  int
}

// NewReader creates a reader positioned at the source's current offset.
func NewReader(rs io.ReadSeeker) *Reader {
	return &Reader{rs: rs}
}

// Offset returns the absolute offset of the next read.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ReadCount returns the number of reads issued to the underlying source.
func (r *Reader) ReadCount() int {
	return r.reads
}

// Seek repositions the reader at an absolute offset.
func (r *Reader) Seek(offset int64) error {
	if _, err := r.rs.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	r.offset = offset
	return nil
}

// Bytes reads exactly n bytes. A short read is reported as a TruncatedError
// naming what was being read.
func (r *Reader) Bytes(what string, n int) ([]byte, error) {
	buf := make([]byte, n)
	r.reads++
	got, err := io.ReadFull(r.rs, buf)
	r.offset += int64(got)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, &TruncatedError{What: what, Want: n, Got: got}
		}
		return nil, err
	}
	return buf, nil
}

// U8 reads one unsigned byte.
func (r *Reader) U8(what string) (uint8, error) {
	b, err := r.Bytes(what, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a big-endian uint16.
func (r *Reader) U16(what string) (uint16, error) {
	b, err := r.Bytes(what, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// U32 reads a big-endian uint32.
func (r *Reader) U32(what string) (uint32, error) {
	b, err := r.Bytes(what, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}
