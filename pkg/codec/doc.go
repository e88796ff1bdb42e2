// Package codec provides the wire-level primitives shared by both ISO/IEC 19794
// container families (face and finger records).
//
// Everything in an ISO 19794 container is big-endian. The package offers a
// positioned Reader over a seekable byte source, the fixed-width codecs for the
// repeated sub-records embedded in representation headers (quality records,
// certification records and landmark points), the 9-byte capture-datetime
// codec, and the error taxonomy used by the family packages.
//
// # Sub-Record Formats
//
// Quality record (5 bytes):
//
//	[Score(1)][AlgoVendorID(2)][AlgoID(2)]
//
// Certification record (3 bytes, finger family only):
//
//	[AuthorityID(2)][SchemeID(1)]
//
// Landmark point (8 bytes, face family only):
//
//	[PointType(1)][PointCode(1)][X(2)][Y(2)][Z(2)]
//
// Quality and certification lists are prefixed by a one-byte count;
// the landmark count travels inside the facial information block and is
// therefore passed to the landmark codec explicitly.
//
// # Error Handling
//
// Decoding never defaults silently: a declared count whose records do not fit
// the remaining bytes is a *TruncatedError, and every enumerated field decoded
// by the family packages reports codes outside its table as an
// *UnknownValueError. All error types are exported so callers can distinguish
// the failure classes with errors.As.
package codec
