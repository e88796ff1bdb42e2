// Package finger implements the ISO/IEC 19794-4 container format for
// fingerprint and palmprint images (family tag "FIR", version 020).
package finger

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/idemia/go-iso19794/pkg/codec"
)

var (
	magic      = [4]byte{'F', 'I', 'R', 0}
	versionTag = [4]byte{'0', '2', '0', 0}
)

const (
	generalHeaderSize = 16
	fixedBlockSize    = 22
)

// General is the file-level header of a finger container.
type General struct {
	Length            uint32 // declared total byte length, advisory on read
	FrameCount        uint16
	CertificationFlag bool // certification blocks present in every frame
	PositionCount     uint8
}

// Header is one frame's representation header. The zero value encodes to the
// documented defaults; length fields are derived by the Writer and never
// hand-authored.
type Header struct {
	CaptureDatetime             time.Time
	CaptureDeviceTechnologyID   byte
	CaptureDeviceVendorID       [2]byte
	CaptureDeviceTypeID         [2]byte
	QualityRecords              []codec.QualityRecord
	CertificationRecords        []codec.CertificationRecord
	Position                    Position
	Number                      uint8
	ScaleUnits                  ScaleUnit
	HorizontalScanSamplingRate  uint16
	VerticalScanSamplingRate    uint16
	HorizontalImageSamplingRate uint16
	VerticalImageSamplingRate   uint16
	BitDepth                    uint8
	ImageCompressionAlgo        Compression
	ImpressionType              Impression
	Width, Height               uint16
	ImageDataLength             uint32 // filled on decode, derived on encode
}

// decodeGeneral reads and validates the 16-byte prologue. The magic tag is
// checked before anything else is interpreted.
func decodeGeneral(r *codec.Reader) (General, error) {
	var g General
	tag, err := r.Bytes("magic tag", 4)
	if err != nil {
		return g, err
	}
	if !bytes.Equal(tag, magic[:]) {
		return g, &codec.FormatError{Msg: "not an ISO 19794-4 container"}
	}
	ver, err := r.Bytes("version tag", 4)
	if err != nil {
		return g, err
	}
	if !bytes.Equal(ver, versionTag[:]) {
		return g, &codec.VersionError{Family: "ISO 19794-4", Version: printableVersion(ver)}
	}
	if g.Length, err = r.U32("total length"); err != nil {
		return g, err
	}
	if g.FrameCount, err = r.U16("frame count"); err != nil {
		return g, err
	}
	certFlag, err := r.U8("certification flag")
	if err != nil {
		return g, err
	}
	g.CertificationFlag = certFlag != 0
	if g.PositionCount, err = r.U8("position count"); err != nil {
		return g, err
	}
	return g, nil
}

func encodeGeneral(buf *bytes.Buffer, g General) {
	buf.Write(magic[:])
	buf.Write(versionTag[:])
	var b [8]byte
	binary.BigEndian.PutUint32(b[0:4], g.Length)
	binary.BigEndian.PutUint16(b[4:6], g.FrameCount)
	b[6] = 0
	if g.CertificationFlag {
		b[6] = 1
	}
	b[7] = g.PositionCount
	buf.Write(b[:])
}

// decodeHeader reads one representation header at the reader's current
// position. The certification block exists in the stream only when the
// file-level flag says so. Returns the header, the bytes consumed (length
// field included) and the frame's declared total length.
func decodeHeader(r *codec.Reader, certFlag bool) (*Header, int, uint32, error) {
	start := r.Offset()
	length, err := r.U32("frame length")
	if err != nil {
		return nil, 0, 0, err
	}
	h := &Header{}
	if h.CaptureDatetime, err = codec.ReadDatetime(r); err != nil {
		return nil, 0, 0, err
	}
	ids, err := r.Bytes("capture device identifiers", 5)
	if err != nil {
		return nil, 0, 0, err
	}
	h.CaptureDeviceTechnologyID = ids[0]
	copy(h.CaptureDeviceVendorID[:], ids[1:3])
	copy(h.CaptureDeviceTypeID[:], ids[3:5])
	if h.QualityRecords, err = codec.ReadQualityRecords(r); err != nil {
		return nil, 0, 0, err
	}
	if certFlag {
		if h.CertificationRecords, err = codec.ReadCertificationRecords(r); err != nil {
			return nil, 0, 0, err
		}
	}
	b, err := r.Bytes("fixed representation block", fixedBlockSize)
	if err != nil {
		return nil, 0, 0, err
	}
	h.Position = Position(b[0])
	h.Number = b[1]
	h.ScaleUnits = ScaleUnit(b[2])
	h.HorizontalScanSamplingRate = binary.BigEndian.Uint16(b[3:5])
	h.VerticalScanSamplingRate = binary.BigEndian.Uint16(b[5:7])
	h.HorizontalImageSamplingRate = binary.BigEndian.Uint16(b[7:9])
	h.VerticalImageSamplingRate = binary.BigEndian.Uint16(b[9:11])
	h.BitDepth = b[11]
	h.ImageCompressionAlgo = Compression(b[12])
	h.ImpressionType = Impression(b[13])
	h.Width = binary.BigEndian.Uint16(b[14:16])
	h.Height = binary.BigEndian.Uint16(b[16:18])
	h.ImageDataLength = binary.BigEndian.Uint32(b[18:22])

	if !h.Position.Valid() {
		return nil, 0, 0, &codec.UnknownValueError{Field: "position", Value: uint8(h.Position)}
	}
	if !h.ScaleUnits.Valid() {
		return nil, 0, 0, &codec.UnknownValueError{Field: "scale_units", Value: uint8(h.ScaleUnits)}
	}
	if !h.ImageCompressionAlgo.Valid() {
		return nil, 0, 0, &codec.UnknownValueError{Field: "image_compression_algo", Value: uint8(h.ImageCompressionAlgo)}
	}
	if !h.ImpressionType.Valid() {
		return nil, 0, 0, &codec.UnknownValueError{Field: "impression_type", Value: uint8(h.ImpressionType)}
	}
	return h, int(r.Offset() - start), length, nil
}

// encodeHeader serializes one frame's header for an already-serialized payload
// of payloadLen bytes, length field included. The certification block (count
// byte included) is written for every frame of a container whose file-level
// flag is set, empty or not.
func encodeHeader(h *Header, payloadLen int, certFlag bool, now func() time.Time) ([]byte, error) {
	var buf bytes.Buffer
	dt := h.CaptureDatetime
	if dt.IsZero() {
		dt = now()
	}
	codec.WriteDatetime(&buf, dt)
	buf.WriteByte(h.CaptureDeviceTechnologyID)
	buf.Write(h.CaptureDeviceVendorID[:])
	buf.Write(h.CaptureDeviceTypeID[:])
	if err := codec.WriteQualityRecords(&buf, h.QualityRecords); err != nil {
		return nil, err
	}
	if certFlag {
		if err := codec.WriteCertificationRecords(&buf, h.CertificationRecords); err != nil {
			return nil, err
		}
	} else if len(h.CertificationRecords) > 0 {
		return nil, &codec.SchemaError{Version: "020", Field: "certification_records",
			Msg: "records supplied while the container's certification flag is clear"}
	}

	scale := h.ScaleUnits
	if scale == 0 {
		scale = UnitPPI
	}
	bitDepth := h.BitDepth
	if bitDepth == 0 {
		bitDepth = 8
	}
	if h.Width == 0 || h.Height == 0 {
		return nil, &codec.SchemaError{Version: "020", Field: "image dimensions", Msg: "width and height are required"}
	}
	if !h.Position.Valid() {
		return nil, &codec.UnknownValueError{Field: "position", Value: uint8(h.Position)}
	}
	if !scale.Valid() {
		return nil, &codec.UnknownValueError{Field: "scale_units", Value: uint8(scale)}
	}
	if !h.ImageCompressionAlgo.Valid() {
		return nil, &codec.UnknownValueError{Field: "image_compression_algo", Value: uint8(h.ImageCompressionAlgo)}
	}
	if !h.ImpressionType.Valid() {
		return nil, &codec.UnknownValueError{Field: "impression_type", Value: uint8(h.ImpressionType)}
	}

	var b [fixedBlockSize]byte
	b[0] = uint8(h.Position)
	b[1] = h.Number
	b[2] = uint8(scale)
	binary.BigEndian.PutUint16(b[3:5], defaultRate(h.HorizontalScanSamplingRate))
	binary.BigEndian.PutUint16(b[5:7], defaultRate(h.VerticalScanSamplingRate))
	binary.BigEndian.PutUint16(b[7:9], defaultRate(h.HorizontalImageSamplingRate))
	binary.BigEndian.PutUint16(b[9:11], defaultRate(h.VerticalImageSamplingRate))
	b[11] = bitDepth
	b[12] = uint8(h.ImageCompressionAlgo)
	b[13] = uint8(h.ImpressionType)
	binary.BigEndian.PutUint16(b[14:16], h.Width)
	binary.BigEndian.PutUint16(b[16:18], h.Height)
	binary.BigEndian.PutUint32(b[18:22], uint32(payloadLen))
	buf.Write(b[:])

	framed := make([]byte, 4, 4+buf.Len())
	binary.BigEndian.PutUint32(framed, uint32(4+buf.Len()+payloadLen))
	return append(framed, buf.Bytes()...), nil
}

// defaultRate substitutes the documented 500 for an unset sampling rate.
func defaultRate(v uint16) uint16 {
	if v == 0 {
		return 500
	}
	return v
}

func printableVersion(b []byte) string {
	if len(b) == 4 && b[3] == 0 {
		return string(b[:3])
	}
	return fmt.Sprintf("%x", b)
}
