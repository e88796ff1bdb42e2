package codec

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestQualityRecords_RoundTrip(t *testing.T) {
	records := []QualityRecord{
		{Score: 80, AlgoVendorID: [2]byte{0x01, 0x02}, AlgoID: [2]byte{0x03, 0x04}},
		{Score: QualityNotReported, AlgoVendorID: [2]byte{0xAB, 0xCD}, AlgoID: [2]byte{0x00, 0x01}},
	}

	var buf bytes.Buffer
	if err := WriteQualityRecords(&buf, records); err != nil {
		t.Fatalf("WriteQualityRecords failed: %v", err)
	}
	if buf.Len() != 1+2*QualityRecordSize {
		t.Fatalf("encoded %d bytes, want %d", buf.Len(), 1+2*QualityRecordSize)
	}

	got, err := ReadQualityRecords(NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("ReadQualityRecords failed: %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, records)
	}
}

func TestQualityRecords_ScoreRange(t *testing.T) {
	var buf bytes.Buffer
	err := WriteQualityRecords(&buf, []QualityRecord{{Score: 101}})
	var schema *SchemaError
	if !errors.As(err, &schema) {
		t.Fatalf("expected SchemaError for score 101, got %v", err)
	}
}

func TestQualityRecords_TruncatedCount(t *testing.T) {
	// Count says three records, stream holds one.
	data := []byte{3, 80, 0x01, 0x02, 0x03, 0x04}
	_, err := ReadQualityRecords(NewReader(bytes.NewReader(data)))
	var truncated *TruncatedError
	if !errors.As(err, &truncated) {
		t.Fatalf("expected TruncatedError, got %v", err)
	}
}

func TestCertificationRecords_RoundTrip(t *testing.T) {
	records := []CertificationRecord{
		{AuthorityID: [2]byte{0x78, 0xAB}, SchemeID: 0x01},
	}

	var buf bytes.Buffer
	if err := WriteCertificationRecords(&buf, records); err != nil {
		t.Fatalf("WriteCertificationRecords failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{1, 0x78, 0xAB, 0x01}) {
		t.Fatalf("encoded bytes = % x", buf.Bytes())
	}

	got, err := ReadCertificationRecords(NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("ReadCertificationRecords failed: %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, records)
	}
}

func TestCertificationRecords_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCertificationRecords(&buf, nil); err != nil {
		t.Fatalf("WriteCertificationRecords failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0}) {
		t.Fatalf("empty block = % x, want a lone count byte", buf.Bytes())
	}
}

func TestLandmarkPoints_OrderPreserved(t *testing.T) {
	points := []LandmarkPoint{
		{PointType: 2, PointCode: 1, X: 100, Y: 200, Z: 0},
		{PointType: 1, PointCode: 9, X: 50, Y: 60, Z: 70},
	}

	var buf bytes.Buffer
	WriteLandmarkPoints(&buf, points)
	if buf.Len() != 2*LandmarkPointSize {
		t.Fatalf("encoded %d bytes, want %d", buf.Len(), 2*LandmarkPointSize)
	}

	got, err := ReadLandmarkPoints(NewReader(bytes.NewReader(buf.Bytes())), 2)
	if err != nil {
		t.Fatalf("ReadLandmarkPoints failed: %v", err)
	}
	if !reflect.DeepEqual(got, points) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, points)
	}
}

func TestLandmarkPoints_Truncated(t *testing.T) {
	_, err := ReadLandmarkPoints(NewReader(bytes.NewReader(make([]byte, LandmarkPointSize+2))), 2)
	var truncated *TruncatedError
	if !errors.As(err, &truncated) {
		t.Fatalf("expected TruncatedError, got %v", err)
	}
}
