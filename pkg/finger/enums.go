package finger

import (
	"fmt"

	"github.com/idemia/go-iso19794/pkg/codec"
)

// Position identifies the finger or palm location a frame was captured from.
type Position uint8

const (
	PositionUnknown          Position = 0
	RightThumb               Position = 1
	RightIndexFinger         Position = 2
	RightMiddleFinger        Position = 3
	RightRingFinger          Position = 4
	RightLittleFinger        Position = 5
	LeftThumb                Position = 6
	LeftIndexFinger          Position = 7
	LeftMiddleFinger         Position = 8
	LeftRingFinger           Position = 9
	LeftLittleFinger         Position = 10
	PlainRightFourFingers    Position = 13
	PlainLeftFourFingers     Position = 14
	PlainThumbs              Position = 15
	UnknownPalm              Position = 20
	RightFullPalm            Position = 21
	RightWriterPalm          Position = 22
	LeftFullPalm             Position = 23
	LeftWriterPalm           Position = 24
	RightLowerPalm           Position = 25
	RightUpperPalm           Position = 26
	LeftLowerPalm            Position = 27
	LeftUpperPalm            Position = 28
	RightOther               Position = 29
	LeftOther                Position = 30
	RightInterdigital        Position = 31
	RightThenar              Position = 32
	RightHypothenar          Position = 33
	LeftInterdigital         Position = 34
	LeftThenar               Position = 35
	LeftHypothenar           Position = 36
	RightIndexAndMiddle      Position = 40
	RightMiddleAndRing       Position = 41
	RightRingAndLittle       Position = 42
	LeftIndexAndMiddle       Position = 43
	LeftMiddleAndRing        Position = 44
	LeftRingAndLittle        Position = 45
	RightIndexAndLeftIndex   Position = 46
	RightIndexMiddleAndRing  Position = 47
	RightMiddleRingAndLittle Position = 48
	LeftIndexMiddleAndRing   Position = 49
	LeftMiddleRingAndLittle  Position = 50
)

var positionNames = map[Position]string{
	PositionUnknown:          "UNKNOWN",
	RightThumb:               "RIGHT_THUMB",
	RightIndexFinger:         "RIGHT_INDEX_FINGER",
	RightMiddleFinger:        "RIGHT_MIDDLE_FINGER",
	RightRingFinger:          "RIGHT_RING_FINGER",
	RightLittleFinger:        "RIGHT_LITTLE_FINGER",
	LeftThumb:                "LEFT_THUMB",
	LeftIndexFinger:          "LEFT_INDEX_FINGER",
	LeftMiddleFinger:         "LEFT_MIDDLE_FINGER",
	LeftRingFinger:           "LEFT_RING_FINGER",
	LeftLittleFinger:         "LEFT_LITTLE_FINGER",
	PlainRightFourFingers:    "PLAIN_RIGHT_FOUR_FINGERS",
	PlainLeftFourFingers:     "PLAIN_LEFT_FOUR_FINGERS",
	PlainThumbs:              "PLAIN_THUMBS",
	UnknownPalm:              "UNKNOWN_PALM",
	RightFullPalm:            "RIGHT_FULL_PALM",
	RightWriterPalm:          "RIGHT_WRITER_PALM",
	LeftFullPalm:             "LEFT_FULL_PALM",
	LeftWriterPalm:           "LEFT_WRITER_PALM",
	RightLowerPalm:           "RIGHT_LOWER_PALM",
	RightUpperPalm:           "RIGHT_UPPER_PALM",
	LeftLowerPalm:            "LEFT_LOWER_PALM",
	LeftUpperPalm:            "LEFT_UPPER_PALM",
	RightOther:               "RIGHT_OTHER",
	LeftOther:                "LEFT_OTHER",
	RightInterdigital:        "RIGHT_INTERDIGITAL",
	RightThenar:              "RIGHT_THENAR",
	RightHypothenar:          "RIGHT_HYPOTHENAR",
	LeftInterdigital:         "LEFT_INTERDIGITAL",
	LeftThenar:               "LEFT_THENAR",
	LeftHypothenar:           "LEFT_HYPOTHENAR",
	RightIndexAndMiddle:      "RIGHT_INDEX_AND_MIDDLE",
	RightMiddleAndRing:       "RIGHT_MIDDLE_AND_RING",
	RightRingAndLittle:       "RIGHT_RING_AND_LITTLE",
	LeftIndexAndMiddle:       "LEFT_INDEX_AND_MIDDLE",
	LeftMiddleAndRing:        "LEFT_MIDDLE_AND_RING",
	LeftRingAndLittle:        "LEFT_RING_AND_LITTLE",
	RightIndexAndLeftIndex:   "RIGHT_INDEX_AND_LEFT_INDEX",
	RightIndexMiddleAndRing:  "RIGHT_INDEX_AND_MIDDLE_AND_RING",
	RightMiddleRingAndLittle: "RIGHT_MIDDLE_AND_RING_AND_LITTLE",
	LeftIndexMiddleAndRing:   "LEFT_INDEX_AND_MIDDLE_AND_RING",
	LeftMiddleRingAndLittle:  "LEFT_MIDDLE_AND_RING_AND_LITTLE",
}

// ScaleUnit is the unit of the sampling-rate fields.
type ScaleUnit uint8

const (
	UnitPPI  ScaleUnit = 1 // pixels per inch
	UnitPPCM ScaleUnit = 2 // pixels per centimetre
)

var scaleUnitNames = map[ScaleUnit]string{
	UnitPPI:  "PPI",
	UnitPPCM: "PPCM",
}

// Compression identifies the algorithm the image payload is compressed with.
type Compression uint8

const (
	CompressionRaw              Compression = 0
	CompressionRawPacked        Compression = 1
	CompressionWSQ              Compression = 2
	CompressionJPEG             Compression = 3
	CompressionJPEG2000Lossy    Compression = 4
	CompressionJPEG2000Lossless Compression = 5
	CompressionPNG              Compression = 6
)

var compressionNames = map[Compression]string{
	CompressionRaw:              "RAW",
	CompressionRawPacked:        "RAW_PACKED",
	CompressionWSQ:              "WSQ",
	CompressionJPEG:             "JPEG",
	CompressionJPEG2000Lossy:    "JPEG2000_LOSSY",
	CompressionJPEG2000Lossless: "JPEG2000_LOSSLESS",
	CompressionPNG:              "PNG",
}

// JPEG2000 reports whether the payload needs the codestream/JP2 discriminator.
func (c Compression) JPEG2000() bool {
	return c == CompressionJPEG2000Lossy || c == CompressionJPEG2000Lossless
}

// Impression classifies how the print was taken.
type Impression uint8

const (
	LivescanPlain                   Impression = 0
	LivescanRolled                  Impression = 1
	NonlivescanPlain                Impression = 2
	NonlivescanRolled               Impression = 3
	LatentImpression                Impression = 4
	LatentTracing                   Impression = 5
	LatentPhoto                     Impression = 6
	LatentLift                      Impression = 7
	LivescanSwipe                   Impression = 8
	LivescanVerticalRoll            Impression = 9
	LivescanPalm                    Impression = 10
	NonlivescanPalm                 Impression = 11
	LatentPalmImpression            Impression = 12
	LatentPalmTracing               Impression = 13
	LatentPalmPhoto                 Impression = 14
	LatentPalmLift                  Impression = 15
	LivescanOpticalContactlessPlain Impression = 24
	ImpressionOther                 Impression = 28
	ImpressionUnknown               Impression = 29
)

var impressionNames = map[Impression]string{
	LivescanPlain:                   "LIVESCAN_PLAIN",
	LivescanRolled:                  "LIVESCAN_ROLLED",
	NonlivescanPlain:                "NONLIVESCAN_PLAIN",
	NonlivescanRolled:               "NONLIVESCAN_ROLLED",
	LatentImpression:                "LATENT_IMPRESSION",
	LatentTracing:                   "LATENT_TRACING",
	LatentPhoto:                     "LATENT_PHOTO",
	LatentLift:                      "LATENT_LIFT",
	LivescanSwipe:                   "LIVESCAN_SWIPE",
	LivescanVerticalRoll:            "LIVESCAN_VERTICAL_ROLL",
	LivescanPalm:                    "LIVESCAN_PALM",
	NonlivescanPalm:                 "NONLIVESCAN_PALM",
	LatentPalmImpression:            "LATENT_PALM_IMPRESSION",
	LatentPalmTracing:               "LATENT_PALM_TRACING",
	LatentPalmPhoto:                 "LATENT_PALM_PHOTO",
	LatentPalmLift:                  "LATENT_PALM_LIFT",
	LivescanOpticalContactlessPlain: "LIVESCAN_OPTICAL_CONTACTLESS_PLAIN",
	ImpressionOther:                 "OTHER",
	ImpressionUnknown:               "UNKNOWN",
}

// Reverse name lookups, built once at start.
var (
	positionCodes    = make(map[string]Position, len(positionNames))
	scaleUnitCodes   = make(map[string]ScaleUnit, len(scaleUnitNames))
	compressionCodes = make(map[string]Compression, len(compressionNames))
	impressionCodes  = make(map[string]Impression, len(impressionNames))
)

func init() {
	for k, v := range positionNames {
		positionCodes[v] = k
	}
	for k, v := range scaleUnitNames {
		scaleUnitCodes[v] = k
	}
	for k, v := range compressionNames {
		compressionCodes[v] = k
	}
	for k, v := range impressionNames {
		impressionCodes[v] = k
	}
}

// Valid reports whether p is a position the standard defines.
func (p Position) Valid() bool { _, ok := positionNames[p]; return ok }

func (p Position) String() string {
	if s, ok := positionNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Position(%d)", uint8(p))
}

// ParsePosition maps a symbolic position name back to its wire code.
func ParsePosition(s string) (Position, error) {
	if p, ok := positionCodes[s]; ok {
		return p, nil
	}
	return 0, &codec.UnknownValueError{Field: "position", Value: s}
}

// Valid reports whether u is a defined scale unit.
func (u ScaleUnit) Valid() bool { _, ok := scaleUnitNames[u]; return ok }

func (u ScaleUnit) String() string {
	if s, ok := scaleUnitNames[u]; ok {
		return s
	}
	return fmt.Sprintf("ScaleUnit(%d)", uint8(u))
}

// ParseScaleUnit maps a symbolic scale-unit name back to its wire code.
func ParseScaleUnit(s string) (ScaleUnit, error) {
	if u, ok := scaleUnitCodes[s]; ok {
		return u, nil
	}
	return 0, &codec.UnknownValueError{Field: "scale_units", Value: s}
}

// Valid reports whether c is a defined compression algorithm.
func (c Compression) Valid() bool { _, ok := compressionNames[c]; return ok }

func (c Compression) String() string {
	if s, ok := compressionNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Compression(%d)", uint8(c))
}

// ParseCompression maps a symbolic compression name back to its wire code.
func ParseCompression(s string) (Compression, error) {
	if c, ok := compressionCodes[s]; ok {
		return c, nil
	}
	return 0, &codec.UnknownValueError{Field: "image_compression_algo", Value: s}
}

// Valid reports whether i is a defined impression type.
func (i Impression) Valid() bool { _, ok := impressionNames[i]; return ok }

func (i Impression) String() string {
	if s, ok := impressionNames[i]; ok {
		return s
	}
	return fmt.Sprintf("Impression(%d)", uint8(i))
}

// ParseImpression maps a symbolic impression name back to its wire code.
func ParseImpression(s string) (Impression, error) {
	if i, ok := impressionCodes[s]; ok {
		return i, nil
	}
	return 0, &codec.UnknownValueError{Field: "impression_type", Value: s}
}
