// Package tzdata is the compact binary codec for zone rules and the
// archive container that ships them.
//
// # Encoding
//
// Offsets and epoch seconds use a quarter-hour quantization: an offset
// aligned to 900 seconds is a single signed byte (the quarter-hour
// count), anything else is the escape byte 127 followed by the full
// 32-bit second count. An epoch second aligned to 900 seconds and inside
// the years 1825..2300 becomes a biased 24-bit big-endian quantity;
// anything else is the escape byte 255 followed by the full 64-bit
// value.
//
// Each serialized object is preceded by a type tag: 1 for a complete
// rules record, 2 for a single transition, 3 for a transition rule. An
// unknown tag or a truncated stream is a hard decode error. DecodeRules
// additionally accepts the bare field sequence without the tag, for
// callers that frame records themselves.
//
// # Archive
//
// An archive is a TZDB header (magic, format version, data version), a
// zone table sorted by identifier with one tagged rules record per zone,
// and a BLAKE2b-256 checksum trailer verified on read.
package tzdata
