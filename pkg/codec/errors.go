package codec

import "fmt"

// FormatError reports a byte stream whose magic tag does not identify any
// supported container family.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string {
	return "iso19794: " + e.Msg
}

// VersionError reports a recognized container whose version tag is not one of
// the versions supported for its family. It is deliberately distinct from
// FormatError: the stream is an ISO 19794 container, just not one we can read.
type VersionError struct {
	Family  string
	Version string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("iso19794: unsupported %s version %q", e.Family, e.Version)
}

// UnknownValueError reports an enumerated field holding a code (decode) or a
// symbol (encode) outside its table's domain, or a property mask with bits set
// beyond the defined flags.
type UnknownValueError struct {
	Field string
	Value any
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("iso19794: unknown value %v for %s", e.Value, e.Field)
}

// SchemaError reports a header that cannot be encoded for the requested
// version: a field was supplied that the version's layout does not carry, or a
// value falls outside its fixed-width range.
type SchemaError struct {
	Version string
	Field   string
	Msg     string
}

func (e *SchemaError) Error() string {
	if e.Version == "" {
		return fmt.Sprintf("iso19794: %s: %s", e.Field, e.Msg)
	}
	return fmt.Sprintf("iso19794: %s: %s (version %s)", e.Field, e.Msg, e.Version)
}

// TruncatedError reports a stream ending before a declared count or length was
// satisfied.
type TruncatedError struct {
	What string
	Want int
	Got  int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("iso19794: truncated stream reading %s: want %d bytes, got %d", e.What, e.Want, e.Got)
}
