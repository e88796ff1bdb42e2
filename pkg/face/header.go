// Package face implements the ISO/IEC 19794-5 container format for face
// images (family tag "FAC", versions 010, 020 and 030).
//
// Version 010 is the legacy layout: the representation header has no capture
// block, so decoding substitutes documented defaults (a synthetic "now"
// capture timestamp, zero device identifiers, an empty quality list). Versions
// 020 and 030 share the modern layout with the capture block and the subject
// height field.
package face

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/idemia/go-iso19794/pkg/codec"
	"github.com/idemia/go-iso19794/pkg/imaging"
)

var magic = [4]byte{'F', 'A', 'C', 0}

// Version is a face header schema version.
type Version string

const (
	V010 Version = "010"
	V020 Version = "020"
	V030 Version = "030"
)

// Valid reports whether v is a supported schema version.
func (v Version) Valid() bool {
	return v == V010 || v == V020 || v == V030
}

// legacy reports whether v uses the 010 layout without the capture block.
func (v Version) legacy() bool {
	return v == V010
}

// generalSize returns the prologue size for the version.
func (v Version) generalSize() int {
	if v.legacy() {
		return 14
	}
	return 17
}

const (
	facialBlockLegacySize = 16
	facialBlockSize       = 17
	imageBlockSize        = 12
)

// General is the file-level header of a face container. CertificationFlag and
// TemporalSemantics exist only in the 020/030 prologue.
type General struct {
	Version           Version
	Length            uint32 // declared total byte length, advisory on read
	FrameCount        uint16
	CertificationFlag bool
	TemporalSemantics uint16
}

// Header is one frame's representation header. The zero value encodes to the
// documented defaults.
type Header struct {
	CaptureDatetime           time.Time
	CaptureDeviceTechnologyID byte
	CaptureDeviceVendorID     [2]byte
	CaptureDeviceTypeID       [2]byte
	QualityRecords            []codec.QualityRecord
	LandmarkPoints            []codec.LandmarkPoint
	Gender                    Gender
	EyeColour                 EyeColour
	HairColour                HairColour
	SubjectHeight             uint8 // 020/030 only
	Properties                Properties
	Expression                Expression
	PoseYaw                   int8
	PosePitch                 int8
	PoseRoll                  int8
	PoseUncertaintyYaw        int8
	PoseUncertaintyPitch      int8
	PoseUncertaintyRoll       int8
	FaceImageType             FaceImageType
	ImageDataType             ImageDataType
	SourceType                SourceType
	DeviceType                [2]byte
	Quality                   uint16
	Width, Height             uint16
	Mode                      imaging.Mode // derived from the colour-space code
}

// decodeGeneral reads and validates the version-sized prologue. The magic tag
// is checked before anything else is interpreted.
func decodeGeneral(r *codec.Reader) (General, error) {
	var g General
	tag, err := r.Bytes("magic tag", 4)
	if err != nil {
		return g, err
	}
	if !bytes.Equal(tag, magic[:]) {
		return g, &codec.FormatError{Msg: "not an ISO 19794-5 container"}
	}
	ver, err := r.Bytes("version tag", 4)
	if err != nil {
		return g, err
	}
	g.Version = Version(ver[:3])
	if ver[3] != 0 || !g.Version.Valid() {
		return g, &codec.VersionError{Family: "ISO 19794-5", Version: printableVersion(ver)}
	}
	if g.Length, err = r.U32("total length"); err != nil {
		return g, err
	}
	if g.FrameCount, err = r.U16("frame count"); err != nil {
		return g, err
	}
	if !g.Version.legacy() {
		certFlag, err := r.U8("certification flag")
		if err != nil {
			return g, err
		}
		g.CertificationFlag = certFlag != 0
		if g.TemporalSemantics, err = r.U16("temporal semantics count"); err != nil {
			return g, err
		}
	}
	return g, nil
}

func encodeGeneral(buf *bytes.Buffer, g General) {
	buf.Write(magic[:])
	buf.WriteString(string(g.Version))
	buf.WriteByte(0)
	var b [6]byte
	binary.BigEndian.PutUint32(b[0:4], g.Length)
	binary.BigEndian.PutUint16(b[4:6], g.FrameCount)
	buf.Write(b[:])
	if !g.Version.legacy() {
		cert := byte(0)
		if g.CertificationFlag {
			cert = 1
		}
		buf.WriteByte(cert)
		var t [2]byte
		binary.BigEndian.PutUint16(t[:], g.TemporalSemantics)
		buf.Write(t[:])
	}
}

// decodeHeader reads one representation header at the reader's current
// position. For the legacy version the capture metadata absent from the wire
// is filled with documented defaults, now supplying the synthetic timestamp.
func decodeHeader(r *codec.Reader, version Version, now func() time.Time) (*Header, int, uint32, error) {
	start := r.Offset()
	length, err := r.U32("frame length")
	if err != nil {
		return nil, 0, 0, err
	}
	h := &Header{}
	if version.legacy() {
		h.CaptureDatetime = now()
	} else {
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
	}

	landmarkCount, err := decodeFacialBlock(r, version, h)
	if err != nil {
		return nil, 0, 0, err
	}
	if h.LandmarkPoints, err = codec.ReadLandmarkPoints(r, landmarkCount); err != nil {
		return nil, 0, 0, err
	}
	if err := decodeImageBlock(r, h); err != nil {
		return nil, 0, 0, err
	}
	return h, int(r.Offset() - start), length, nil
}

// decodeFacialBlock reads the facial information block and returns the
// landmark count it carries.
func decodeFacialBlock(r *codec.Reader, version Version, h *Header) (int, error) {
	size := facialBlockSize
	if version.legacy() {
		size = facialBlockLegacySize
	}
	b, err := r.Bytes("facial information block", size)
	if err != nil {
		return 0, err
	}
	landmarkCount := int(binary.BigEndian.Uint16(b[0:2]))
	h.Gender = Gender(b[2])
	h.EyeColour = EyeColour(b[3])
	h.HairColour = HairColour(b[4])
	rest := b[5:]
	if !version.legacy() {
		h.SubjectHeight = b[5]
		rest = b[6:]
	}
	mask := Properties(uint32(rest[0])<<16 | uint32(rest[1])<<8 | uint32(rest[2]))
	h.Properties = mask
	h.Expression = Expression(binary.BigEndian.Uint16(rest[3:5]))
	h.PoseYaw = int8(rest[5])
	h.PosePitch = int8(rest[6])
	h.PoseRoll = int8(rest[7])
	h.PoseUncertaintyYaw = int8(rest[8])
	h.PoseUncertaintyPitch = int8(rest[9])
	h.PoseUncertaintyRoll = int8(rest[10])

	if !h.Gender.Valid() {
		return 0, &codec.UnknownValueError{Field: "gender", Value: uint8(h.Gender)}
	}
	if !h.EyeColour.Valid() {
		return 0, &codec.UnknownValueError{Field: "eye_colour", Value: uint8(h.EyeColour)}
	}
	if !h.HairColour.Valid() {
		return 0, &codec.UnknownValueError{Field: "hair_colour", Value: uint8(h.HairColour)}
	}
	if !mask.Valid() {
		return 0, &codec.UnknownValueError{Field: "property_mask", Value: uint32(mask)}
	}
	if !h.Expression.Valid() {
		return 0, &codec.UnknownValueError{Field: "expression", Value: uint16(h.Expression)}
	}
	return landmarkCount, nil
}

func decodeImageBlock(r *codec.Reader, h *Header) error {
	b, err := r.Bytes("image information block", imageBlockSize)
	if err != nil {
		return err
	}
	h.FaceImageType = FaceImageType(b[0])
	h.ImageDataType = ImageDataType(b[1])
	h.Width = binary.BigEndian.Uint16(b[2:4])
	h.Height = binary.BigEndian.Uint16(b[4:6])
	colourSpace := ColourSpace(b[6])
	h.SourceType = SourceType(b[7])
	copy(h.DeviceType[:], b[8:10])
	h.Quality = binary.BigEndian.Uint16(b[10:12])

	if !h.FaceImageType.Valid() {
		return &codec.UnknownValueError{Field: "face_image_type", Value: uint8(h.FaceImageType)}
	}
	if !h.ImageDataType.Valid() {
		return &codec.UnknownValueError{Field: "image_data_type", Value: uint8(h.ImageDataType)}
	}
	if !colourSpace.Valid() {
		return &codec.UnknownValueError{Field: "colour_space", Value: uint8(colourSpace)}
	}
	if !h.SourceType.Valid() {
		return &codec.UnknownValueError{Field: "source_type", Value: uint8(h.SourceType)}
	}
	h.Mode = colourSpace.Mode()
	return nil
}

// encodeHeader serializes one frame's header for an already-serialized payload
// of payloadLen bytes, length field included. Fields the target version's
// layout does not carry must be unset; supplying them is a schema violation,
// never a silent drop.
func encodeHeader(h *Header, version Version, payloadLen int, now func() time.Time) ([]byte, error) {
	if !version.Valid() {
		return nil, &codec.VersionError{Family: "ISO 19794-5", Version: string(version)}
	}
	if version.legacy() {
		if field, ok := legacyIllegalField(h); ok {
			return nil, &codec.SchemaError{Version: string(version), Field: field, Msg: "field not valid for version"}
		}
	}
	if len(h.LandmarkPoints) > 0xFFFF {
		return nil, &codec.SchemaError{Version: string(version), Field: "landmark_points", Msg: "more than 65535 points"}
	}
	if err := validateEnums(h); err != nil {
		return nil, err
	}
	mode := h.Mode
	if mode == "" {
		mode = imaging.ModeRGB
	}
	colourSpace, ok := colourSpaceFor[mode]
	if !ok {
		return nil, &codec.UnknownValueError{Field: "colour_space", Value: string(mode)}
	}
	if h.Width == 0 || h.Height == 0 {
		return nil, &codec.SchemaError{Version: string(version), Field: "image dimensions", Msg: "width and height are required"}
	}

	var buf bytes.Buffer
	if !version.legacy() {
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
	}

	var fb [facialBlockSize]byte
	binary.BigEndian.PutUint16(fb[0:2], uint16(len(h.LandmarkPoints)))
	fb[2] = uint8(h.Gender)
	fb[3] = uint8(h.EyeColour)
	fb[4] = uint8(h.HairColour)
	rest := fb[5:facialBlockLegacySize]
	if !version.legacy() {
		fb[5] = h.SubjectHeight
		rest = fb[6:facialBlockSize]
	}
	rest[0] = byte(h.Properties >> 16)
	rest[1] = byte(h.Properties >> 8)
	rest[2] = byte(h.Properties)
	binary.BigEndian.PutUint16(rest[3:5], uint16(h.Expression))
	rest[5] = byte(h.PoseYaw)
	rest[6] = byte(h.PosePitch)
	rest[7] = byte(h.PoseRoll)
	rest[8] = byte(h.PoseUncertaintyYaw)
	rest[9] = byte(h.PoseUncertaintyPitch)
	rest[10] = byte(h.PoseUncertaintyRoll)
	if version.legacy() {
		buf.Write(fb[:facialBlockLegacySize])
	} else {
		buf.Write(fb[:])
	}

	codec.WriteLandmarkPoints(&buf, h.LandmarkPoints)

	var ib [imageBlockSize]byte
	ib[0] = uint8(h.FaceImageType)
	ib[1] = uint8(h.ImageDataType)
	binary.BigEndian.PutUint16(ib[2:4], h.Width)
	binary.BigEndian.PutUint16(ib[4:6], h.Height)
	ib[6] = uint8(colourSpace)
	ib[7] = uint8(h.SourceType)
	copy(ib[8:10], h.DeviceType[:])
	binary.BigEndian.PutUint16(ib[10:12], h.Quality)
	buf.Write(ib[:])

	framed := make([]byte, 4, 4+buf.Len())
	binary.BigEndian.PutUint32(framed, uint32(4+buf.Len()+payloadLen))
	return append(framed, buf.Bytes()...), nil
}

// legacyIllegalField returns the first populated field the 010 layout cannot
// carry.
func legacyIllegalField(h *Header) (string, bool) {
	switch {
	case !h.CaptureDatetime.IsZero():
		return "capture_datetime", true
	case h.CaptureDeviceTechnologyID != 0:
		return "capture_device_technology_id", true
	case h.CaptureDeviceVendorID != [2]byte{}:
		return "capture_device_vendor_id", true
	case h.CaptureDeviceTypeID != [2]byte{}:
		return "capture_device_type_id", true
	case len(h.QualityRecords) > 0:
		return "quality_records", true
	case h.SubjectHeight != 0:
		return "subject_height", true
	}
	return "", false
}

func validateEnums(h *Header) error {
	if !h.Gender.Valid() {
		return &codec.UnknownValueError{Field: "gender", Value: uint8(h.Gender)}
	}
	if !h.EyeColour.Valid() {
		return &codec.UnknownValueError{Field: "eye_colour", Value: uint8(h.EyeColour)}
	}
	if !h.HairColour.Valid() {
		return &codec.UnknownValueError{Field: "hair_colour", Value: uint8(h.HairColour)}
	}
	if !h.Properties.Valid() {
		return &codec.UnknownValueError{Field: "property_mask", Value: uint32(h.Properties)}
	}
	if !h.Expression.Valid() {
		return &codec.UnknownValueError{Field: "expression", Value: uint16(h.Expression)}
	}
	if !h.FaceImageType.Valid() {
		return &codec.UnknownValueError{Field: "face_image_type", Value: uint8(h.FaceImageType)}
	}
	if !h.ImageDataType.Valid() {
		return &codec.UnknownValueError{Field: "image_data_type", Value: uint8(h.ImageDataType)}
	}
	if !h.SourceType.Valid() {
		return &codec.UnknownValueError{Field: "source_type", Value: uint8(h.SourceType)}
	}
	return nil
}

func printableVersion(b []byte) string {
	if len(b) == 4 && b[3] == 0 {
		return string(b[:3])
	}
	return fmt.Sprintf("%x", b)
}
