// Package format defines the small closed enumerations that drive MDX's
// on-disk layout: the compression type tag and the container format
// version. Both are validated once, at Writer construction, so the rest of
// the writer can route on a typed value instead of re-parsing strings or
// magic numbers (see the teacher's format.CompressionType for the pattern).
package format

// CompressionType is the 4-byte little-endian tag stored at the front of
// every compressed block and of the v2.0 key-block index. Its three values
// are part of the MDX wire format and must not be renumbered.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0 // verbatim payload, no compression
	CompressionLZO  CompressionType = 1 // LZO1X payload, optional backend
	CompressionZlib CompressionType = 2 // zlib (deflate) payload, default
)

// Valid reports whether c is one of the three defined compression types.
func (c CompressionType) Valid() bool {
	switch c {
	case CompressionNone, CompressionLZO, CompressionZlib:
		return true
	default:
		return false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZO:
		return "lzo"
	case CompressionZlib:
		return "zlib"
	default:
		return "unknown"
	}
}

// Version selects the MDX container generation. It changes integer widths
// and preamble layout throughout the file; every serializer that cares
// about width takes a Version instead of branching on a string, per the
// re-architecture guidance in spec.md §9.
type Version uint8

const (
	Version12 Version = iota // "1.2": 4-byte widths, no key-index compressed-size field
	Version20                // "2.0": 8-byte widths, full preamble + checksum
)

// ParseVersion validates and converts the user-facing version string.
func ParseVersion(s string) (Version, bool) {
	switch s {
	case "1.2":
		return Version12, true
	case "2.0":
		return Version20, true
	default:
		return 0, false
	}
}

func (v Version) String() string {
	if v == Version12 {
		return "1.2"
	}

	return "2.0"
}

// WidthLong is the width, in bytes, of a "long" big-endian integer field
// (block counts, sizes, offsets) under this version: 4 bytes for 1.2, 8 for
// 2.0.
func (v Version) WidthLong() int {
	if v == Version12 {
		return 4
	}

	return 8
}

// WidthShort is the width, in bytes, of a key-length field in a key-block
// index entry: 1 byte for 1.2, 2 bytes for 2.0.
func (v Version) WidthShort() int {
	if v == Version12 {
		return 1
	}

	return 2
}
