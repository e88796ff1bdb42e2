package imaging

import "bytes"

// JPEG2000 payload sub-variants. The container headers only say "JPEG2000";
// whether the payload is a bare codestream or a JP2 wrapper is only
// discoverable from the payload's own magic bytes.
const (
	JPEG2000Codestream = "j2k"
	JPEG2000JP2        = "jp2"
)

// SniffLen is how many payload bytes DetectJPEG2000 needs.
const SniffLen = 12

var (
	j2kSignature = []byte{0xFF, 0x4F, 0xFF, 0x51}
	jp2Signature = []byte{0x00, 0x00, 0x00, 0x0C, 'j', 'P', ' ', ' ', 0x0D, 0x0A, 0x87, 0x0A}
)

// DetectJPEG2000 discriminates a JPEG 2000 payload by its signature,
// returning JPEG2000Codestream or JPEG2000JP2. The second return is false
// when the bytes match neither sub-variant.
func DetectJPEG2000(sig []byte) (string, bool) {
	if len(sig) >= len(j2kSignature) && bytes.Equal(sig[:len(j2kSignature)], j2kSignature) {
		return JPEG2000Codestream, true
	}
	if len(sig) >= len(jp2Signature) && bytes.Equal(sig[:len(jp2Signature)], jp2Signature) {
		return JPEG2000JP2, true
	}
	return "", false
}
