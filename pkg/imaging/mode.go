// Package imaging is the boundary between the container codec and pixel data.
//
// The container codec never touches pixel bytes itself: it hands a compression
// identifier and byte boundaries to a Codec registered here, and carries the
// pixel mode and dimensions between the headers and the caller's image buffer.
package imaging

// Mode identifies the pixel layout a payload decodes into.
type Mode string

const (
	ModeGray  Mode = "L"
	ModeRGB   Mode = "RGB"
	ModeYCbCr Mode = "YCbCr"
)

// Valid reports whether m is a mode the container formats can describe.
func (m Mode) Valid() bool {
	switch m {
	case ModeGray, ModeRGB, ModeYCbCr:
		return true
	}
	return false
}

// Channels returns the number of interleaved channels per pixel.
func (m Mode) Channels() int {
	if m == ModeGray {
		return 1
	}
	return 3
}

// BitDepth returns the encoded bits per pixel.
func (m Mode) BitDepth() int {
	return 8 * m.Channels()
}
