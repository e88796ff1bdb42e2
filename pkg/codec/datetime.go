package codec

import (
	"bytes"
	"encoding/binary"
	"time"
)

// DatetimeSize is the encoded width of a capture datetime.
const DatetimeSize = 9

// ReadDatetime reads the 9-byte capture datetime:
//
//	[Year(2)][Month(1)][Day(1)][Hour(1)][Minute(1)][Second(1)][Millisecond(2)]
//
// The result is in UTC. Out-of-range components are normalized the way
// time.Date normalizes them; the container formats carry no zone information.
func ReadDatetime(r *Reader) (time.Time, error) {
	b, err := r.Bytes("capture datetime", DatetimeSize)
	if err != nil {
		return time.Time{}, err
	}
	year := int(binary.BigEndian.Uint16(b[0:2]))
	millis := int(binary.BigEndian.Uint16(b[7:9]))
	return time.Date(year, time.Month(b[2]), int(b[3]),
		int(b[4]), int(b[5]), int(b[6]), millis*int(time.Millisecond), time.UTC), nil
}

// WriteDatetime appends the 9-byte capture datetime for t.
func WriteDatetime(buf *bytes.Buffer, t time.Time) {
	t = t.UTC()
	var b [DatetimeSize]byte
	binary.BigEndian.PutUint16(b[0:2], uint16(t.Year()))
	b[2] = byte(t.Month())
	b[3] = byte(t.Day())
	b[4] = byte(t.Hour())
	b[5] = byte(t.Minute())
	b[6] = byte(t.Second())
	binary.BigEndian.PutUint16(b[7:9], uint16(t.Nanosecond()/int(time.Millisecond)))
	buf.Write(b[:])
}
