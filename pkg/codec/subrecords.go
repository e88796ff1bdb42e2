package codec

import (
	"bytes"
	"encoding/binary"
)

// Encoded widths of the fixed sub-records.
const (
	QualityRecordSize       = 5
	CertificationRecordSize = 3
	LandmarkPointSize       = 8
)

// QualityNotReported is the sentinel quality score meaning "not reported".
const QualityNotReported = 255

// QualityRecord is one quality block entry: a score and the identifiers of the
// algorithm that produced it. Vendor and algorithm identifiers are opaque raw
// bytes assigned by a registration authority.
type QualityRecord struct {
	Score        uint8
	AlgoVendorID [2]byte
	AlgoID       [2]byte
}

// CertificationRecord is one certification block entry (finger family only).
type CertificationRecord struct {
	AuthorityID [2]byte
	SchemeID    byte
}

// LandmarkPoint is one facial landmark (face family only).
type LandmarkPoint struct {
	PointType uint8
	PointCode uint8
	X, Y, Z   uint16
}

// ReadQualityRecords reads a one-byte count followed by that many quality
// records. Order is preserved.
func ReadQualityRecords(r *Reader) ([]QualityRecord, error) {
	count, err := r.U8("quality record count")
	if err != nil {
		return nil, err
	}
	records := make([]QualityRecord, 0, count)
	for i := 0; i < int(count); i++ {
		b, err := r.Bytes("quality record", QualityRecordSize)
		if err != nil {
			return nil, err
		}
		q := QualityRecord{Score: b[0]}
		copy(q.AlgoVendorID[:], b[1:3])
		copy(q.AlgoID[:], b[3:5])
		records = append(records, q)
	}
	return records, nil
}

// WriteQualityRecords appends the count byte and the records in the given
// order. Scores must be 0..100 or the QualityNotReported sentinel.
func WriteQualityRecords(buf *bytes.Buffer, records []QualityRecord) error {
	if len(records) > 255 {
		return &SchemaError{Field: "quality records", Msg: "more than 255 records"}
	}
	buf.WriteByte(byte(len(records)))
	for _, q := range records {
		if q.Score > 100 && q.Score != QualityNotReported {
			return &SchemaError{Field: "quality score", Msg: "must be 0..100 or 255"}
		}
		buf.WriteByte(q.Score)
		buf.Write(q.AlgoVendorID[:])
		buf.Write(q.AlgoID[:])
	}
	return nil
}

// ReadCertificationRecords reads a one-byte count followed by that many
// certification records.
func ReadCertificationRecords(r *Reader) ([]CertificationRecord, error) {
	count, err := r.U8("certification record count")
	if err != nil {
		return nil, err
	}
	records := make([]CertificationRecord, 0, count)
	for i := 0; i < int(count); i++ {
		b, err := r.Bytes("certification record", CertificationRecordSize)
		if err != nil {
			return nil, err
		}
		c := CertificationRecord{SchemeID: b[2]}
		copy(c.AuthorityID[:], b[0:2])
		records = append(records, c)
	}
	return records, nil
}

// WriteCertificationRecords appends the count byte and the records in the
// given order.
func WriteCertificationRecords(buf *bytes.Buffer, records []CertificationRecord) error {
	if len(records) > 255 {
		return &SchemaError{Field: "certification records", Msg: "more than 255 records"}
	}
	buf.WriteByte(byte(len(records)))
	for _, c := range records {
		buf.Write(c.AuthorityID[:])
		buf.WriteByte(c.SchemeID)
	}
	return nil
}

// ReadLandmarkPoints reads count landmark points. The count is carried in the
// facial information block, not adjacent to the list, so the caller passes it.
func ReadLandmarkPoints(r *Reader, count int) ([]LandmarkPoint, error) {
	points := make([]LandmarkPoint, 0, count)
	for i := 0; i < count; i++ {
		b, err := r.Bytes("landmark point", LandmarkPointSize)
		if err != nil {
			return nil, err
		}
		points = append(points, LandmarkPoint{
			PointType: b[0],
			PointCode: b[1],
			X:         binary.BigEndian.Uint16(b[2:4]),
			Y:         binary.BigEndian.Uint16(b[4:6]),
			Z:         binary.BigEndian.Uint16(b[6:8]),
		})
	}
	return points, nil
}

// WriteLandmarkPoints appends the points in the given order. The caller is
// responsible for having written the count into the facial information block.
func WriteLandmarkPoints(buf *bytes.Buffer, points []LandmarkPoint) {
	var b [LandmarkPointSize]byte
	for _, p := range points {
		b[0] = p.PointType
		b[1] = p.PointCode
		binary.BigEndian.PutUint16(b[2:4], p.X)
		binary.BigEndian.PutUint16(b[4:6], p.Y)
		binary.BigEndian.PutUint16(b[6:8], p.Z)
		buf.Write(b[:])
	}
}
