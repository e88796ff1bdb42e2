package face

import (
	"fmt"

	"github.com/idemia/go-iso19794/pkg/codec"
	"github.com/idemia/go-iso19794/pkg/imaging"
)

// Gender is the subject's recorded gender.
type Gender uint8

const (
	GenderUnspecified Gender = 0   // "X"
	GenderMale        Gender = 1   // "M"
	GenderFemale      Gender = 2   // "F"
	GenderUnknown     Gender = 255 // "U"
)

var genderNames = map[Gender]string{
	GenderUnspecified: "X",
	GenderMale:        "M",
	GenderFemale:      "F",
	GenderUnknown:     "U",
}

// EyeColour is the subject's recorded eye colour.
type EyeColour uint8

const (
	EyeUnspecified   EyeColour = 0
	EyeBlack         EyeColour = 1
	EyeBlue          EyeColour = 2
	EyeBrown         EyeColour = 3
	EyeGray          EyeColour = 4
	EyeGreen         EyeColour = 5
	EyeMultiColoured EyeColour = 6
	EyePink          EyeColour = 7
	EyeUnknown       EyeColour = 255
)

var eyeColourNames = map[EyeColour]string{
	EyeUnspecified:   "UNSPECIFIED",
	EyeBlack:         "BLACK",
	EyeBlue:          "BLUE",
	EyeBrown:         "BROWN",
	EyeGray:          "GRAY",
	EyeGreen:         "GREEN",
	EyeMultiColoured: "MULTI_COLOURED",
	EyePink:          "PINK",
	EyeUnknown:       "UNKNOWN",
}

// HairColour is the subject's recorded hair colour.
type HairColour uint8

const (
	HairUnspecified HairColour = 0
	HairBald        HairColour = 1
	HairBlack       HairColour = 2
	HairBlonde      HairColour = 3
	HairBrown       HairColour = 4
	HairGray        HairColour = 5
	HairWhite       HairColour = 6
	HairRed         HairColour = 7
	HairUnknown     HairColour = 255
)

var hairColourNames = map[HairColour]string{
	HairUnspecified: "UNSPECIFIED",
	HairBald:        "BALD",
	HairBlack:       "BLACK",
	HairBlonde:      "BLONDE",
	HairBrown:       "BROWN",
	HairGray:        "GRAY",
	HairWhite:       "WHITE",
	HairRed:         "RED",
	HairUnknown:     "UNKNOWN",
}

// Expression is the recorded facial expression, a 16-bit wire field.
type Expression uint16

const (
	ExpressionUnspecified     Expression = 0
	ExpressionNeutral         Expression = 1
	ExpressionSmileClosedJaw  Expression = 2
	ExpressionSmileOpenMouth  Expression = 3
	ExpressionRaisedEyebrows  Expression = 4
	ExpressionEyesLookingAway Expression = 5
	ExpressionSquinting       Expression = 6
	ExpressionFrowning        Expression = 7
)

var expressionNames = map[Expression]string{
	ExpressionUnspecified:     "UNSPECIFIED",
	ExpressionNeutral:         "NEUTRAL",
	ExpressionSmileClosedJaw:  "SMILE_CLOSED_JAW",
	ExpressionSmileOpenMouth:  "SMILE_OPEN_MOUTH",
	ExpressionRaisedEyebrows:  "RAISED_EYEBROWS",
	ExpressionEyesLookingAway: "EYES_LOOKING_AWAY",
	ExpressionSquinting:       "SQUINTING",
	ExpressionFrowning:        "FROWNING",
}

// FaceImageType classifies the geometric normalization of the image.
type FaceImageType uint8

const (
	TypeBasic        FaceImageType = 0
	TypeFullFrontal  FaceImageType = 1
	TypeTokenFrontal FaceImageType = 2
)

var faceImageTypeNames = map[FaceImageType]string{
	TypeBasic:        "BASIC",
	TypeFullFrontal:  "FULL_FRONTAL",
	TypeTokenFrontal: "TOKEN_FRONTAL",
}

// ImageDataType identifies the payload compression for the face family.
type ImageDataType uint8

const (
	DataJPEG     ImageDataType = 0
	DataJPEG2000 ImageDataType = 1
)

var imageDataTypeNames = map[ImageDataType]string{
	DataJPEG:     "JPEG",
	DataJPEG2000: "JPEG2000",
}

// JPEG2000 reports whether the payload needs the codestream/JP2 discriminator.
func (d ImageDataType) JPEG2000() bool {
	return d == DataJPEG2000
}

// SourceType records how the image was acquired.
type SourceType uint8

const (
	SourceUnspecified        SourceType = 0
	SourceStaticUnknown      SourceType = 1
	SourceStaticCamera       SourceType = 2
	SourceStaticScanner      SourceType = 3
	SourceFrameUnknown       SourceType = 4
	SourceFrameAnalogCamera  SourceType = 5
	SourceFrameDigitalCamera SourceType = 6
	SourceUnknown            SourceType = 7
)

var sourceTypeNames = map[SourceType]string{
	SourceUnspecified:        "UNSPECIFIED",
	SourceStaticUnknown:      "STATIC_UNKNOWN",
	SourceStaticCamera:       "STATIC_CAMERA",
	SourceStaticScanner:      "STATIC_SCANNER",
	SourceFrameUnknown:       "FRAME_UNKNOWN",
	SourceFrameAnalogCamera:  "FRAME_ANALOGUE_CAMERA",
	SourceFrameDigitalCamera: "FRAME_DIGITAL_CAMERA",
	SourceUnknown:            "UNKNOWN",
}

// ColourSpace is the wire code describing the payload's pixel layout. The code
// determines both the pixel mode and the encoded bit depth; the mapping is
// consistent in both directions (decode derives the mode from the code, encode
// derives the code from the mode).
type ColourSpace uint8

var colourSpaceModes = map[ColourSpace]imaging.Mode{
	0: imaging.ModeRGB, // unspecified, 24 bit
	1: imaging.ModeRGB,
	2: imaging.ModeYCbCr,
	3: imaging.ModeGray,
	4: imaging.ModeRGB, // other 24-bit RGB
}

// colourSpaceFor is the canonical code emitted for each pixel mode.
var colourSpaceFor = map[imaging.Mode]ColourSpace{
	imaging.ModeRGB:   0,
	imaging.ModeYCbCr: 2,
	imaging.ModeGray:  3,
}

// Valid reports whether c is a defined colour-space code.
func (c ColourSpace) Valid() bool { _, ok := colourSpaceModes[c]; return ok }

// Mode returns the pixel mode the code describes.
func (c ColourSpace) Mode() imaging.Mode { return colourSpaceModes[c] }

// BitDepth returns the encoded bits per pixel for the code.
func (c ColourSpace) BitDepth() int { return colourSpaceModes[c].BitDepth() }

// Reverse name lookups, built once at start.
var (
	genderCodes        = make(map[string]Gender, len(genderNames))
	eyeColourCodes     = make(map[string]EyeColour, len(eyeColourNames))
	hairColourCodes    = make(map[string]HairColour, len(hairColourNames))
	expressionCodes    = make(map[string]Expression, len(expressionNames))
	faceImageTypeCodes = make(map[string]FaceImageType, len(faceImageTypeNames))
	imageDataTypeCodes = make(map[string]ImageDataType, len(imageDataTypeNames))
	sourceTypeCodes    = make(map[string]SourceType, len(sourceTypeNames))
)

func init() {
	for k, v := range genderNames {
		genderCodes[v] = k
	}
	for k, v := range eyeColourNames {
		eyeColourCodes[v] = k
	}
	for k, v := range hairColourNames {
		hairColourCodes[v] = k
	}
	for k, v := range expressionNames {
		expressionCodes[v] = k
	}
	for k, v := range faceImageTypeNames {
		faceImageTypeCodes[v] = k
	}
	for k, v := range imageDataTypeNames {
		imageDataTypeCodes[v] = k
	}
	for k, v := range sourceTypeNames {
		sourceTypeCodes[v] = k
	}
}

// Valid reports whether g is a defined gender code.
func (g Gender) Valid() bool { _, ok := genderNames[g]; return ok }

func (g Gender) String() string {
	if s, ok := genderNames[g]; ok {
		return s
	}
	return fmt.Sprintf("Gender(%d)", uint8(g))
}

// ParseGender maps a symbolic gender name back to its wire code.
func ParseGender(s string) (Gender, error) {
	if g, ok := genderCodes[s]; ok {
		return g, nil
	}
	return 0, &codec.UnknownValueError{Field: "gender", Value: s}
}

// Valid reports whether e is a defined eye colour.
func (e EyeColour) Valid() bool { _, ok := eyeColourNames[e]; return ok }

func (e EyeColour) String() string {
	if s, ok := eyeColourNames[e]; ok {
		return s
	}
	return fmt.Sprintf("EyeColour(%d)", uint8(e))
}

// ParseEyeColour maps a symbolic eye-colour name back to its wire code.
func ParseEyeColour(s string) (EyeColour, error) {
	if e, ok := eyeColourCodes[s]; ok {
		return e, nil
	}
	return 0, &codec.UnknownValueError{Field: "eye_colour", Value: s}
}

// Valid reports whether h is a defined hair colour.
func (h HairColour) Valid() bool { _, ok := hairColourNames[h]; return ok }

func (h HairColour) String() string {
	if s, ok := hairColourNames[h]; ok {
		return s
	}
	return fmt.Sprintf("HairColour(%d)", uint8(h))
}

// ParseHairColour maps a symbolic hair-colour name back to its wire code.
func ParseHairColour(s string) (HairColour, error) {
	if h, ok := hairColourCodes[s]; ok {
		return h, nil
	}
	return 0, &codec.UnknownValueError{Field: "hair_colour", Value: s}
}

// Valid reports whether e is a defined expression.
func (e Expression) Valid() bool { _, ok := expressionNames[e]; return ok }

func (e Expression) String() string {
	if s, ok := expressionNames[e]; ok {
		return s
	}
	return fmt.Sprintf("Expression(%d)", uint16(e))
}

// ParseExpression maps a symbolic expression name back to its wire code.
func ParseExpression(s string) (Expression, error) {
	if e, ok := expressionCodes[s]; ok {
		return e, nil
	}
	return 0, &codec.UnknownValueError{Field: "expression", Value: s}
}

// Valid reports whether t is a defined face image type.
func (t FaceImageType) Valid() bool { _, ok := faceImageTypeNames[t]; return ok }

func (t FaceImageType) String() string {
	if s, ok := faceImageTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("FaceImageType(%d)", uint8(t))
}

// ParseFaceImageType maps a symbolic face-image-type name back to its wire code.
func ParseFaceImageType(s string) (FaceImageType, error) {
	if t, ok := faceImageTypeCodes[s]; ok {
		return t, nil
	}
	return 0, &codec.UnknownValueError{Field: "face_image_type", Value: s}
}

// Valid reports whether d is a defined image data type.
func (d ImageDataType) Valid() bool { _, ok := imageDataTypeNames[d]; return ok }

func (d ImageDataType) String() string {
	if s, ok := imageDataTypeNames[d]; ok {
		return s
	}
	return fmt.Sprintf("ImageDataType(%d)", uint8(d))
}

// ParseImageDataType maps a symbolic image-data-type name back to its wire code.
func ParseImageDataType(s string) (ImageDataType, error) {
	if d, ok := imageDataTypeCodes[s]; ok {
		return d, nil
	}
	return 0, &codec.UnknownValueError{Field: "image_data_type", Value: s}
}

// Valid reports whether s is a defined source type.
func (s SourceType) Valid() bool { _, ok := sourceTypeNames[s]; return ok }

func (s SourceType) String() string {
	if n, ok := sourceTypeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("SourceType(%d)", uint8(s))
}

// ParseSourceType maps a symbolic source-type name back to its wire code.
func ParseSourceType(s string) (SourceType, error) {
	if t, ok := sourceTypeCodes[s]; ok {
		return t, nil
	}
	return 0, &codec.UnknownValueError{Field: "source_type", Value: s}
}
