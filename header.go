package mdx

import (
	"encoding/binary"
	"fmt"
	"hash/adler32"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/gomdict/mdxwriter/charset"
)

// headerParams collects everything buildHeader needs to render the
// self-closing <Dictionary .../> metadata element.
type headerParams struct {
	Version     string // GeneratedByEngineVersion == RequiredEngineVersion == container version
	Encrypted   int    // bitwise OR of 1 (dict encryption) / 2 (index encryption)
	Encoding    string // charset.Charset.CanonicalName()
	Description string
	Title       string
	RegCode     string // empty unless both encrypt_key and user_email are set
	today       func() time.Time
}

// buildHeader renders the XML-like header element, encodes it UTF-16LE
// with no BOM, and wraps it in the 4-byte BE length / bytes / 4-byte LE
// Adler-32 framing described in spec.md §4.10.
func buildHeader(p headerParams) []byte {
	today := p.today
	if today == nil {
		today = time.Now
	}

	element := fmt.Sprintf(
		`<Dictionary GeneratedByEngineVersion="%s" RequiredEngineVersion="%s" Encrypted="%d" Encoding="%s" Format="Html" CreationDate="%s" Compact="No" Compat="No" KeyCaseSensitive="No" Description="%s" Title="%s" DataSourceFormat="106" StyleSheet="" RegisterBy="Email" RegCode="%s" />`+"\r\n\x00",
		p.Version, p.Version, p.Encrypted, p.Encoding, unpaddedDate(today()),
		escapeXMLAttr(p.Description), escapeXMLAttr(p.Title), p.RegCode,
	)

	body := utf16LEBytes(element)

	out := make([]byte, 4, 4+len(body)+4)
	binary.BigEndian.PutUint32(out[0:4], uint32(len(body)))
	out = append(out, body...)

	var checksum [4]byte
	binary.LittleEndian.PutUint32(checksum[:], adler32.Checksum(body))
	out = append(out, checksum[:]...)

	return out
}

// unpaddedDate renders t as "YYYY-M-D" with single-digit months and days
// left unpadded. time.Format has no layout verb for an unpadded numeric
// field, so the three components are assembled by hand; this preserves the
// original writer's byte-for-byte CreationDate format rather than
// "correcting" it to zero-padded ISO-8601.
func unpaddedDate(t time.Time) string {
	return strconv.Itoa(t.Year()) + "-" + strconv.Itoa(int(t.Month())) + "-" + strconv.Itoa(t.Day())
}

// escapeXMLAttr escapes the characters that are unsafe inside a
// double-quoted XML attribute value: '&', '<', '>', '"', and '\'' — the
// same set Python's html.escape(quote=True) covers, which is what the
// original writer escapes Description/Title through.
func escapeXMLAttr(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#x27;",
	)

	return r.Replace(s)
}

// utf16LEBytes encodes s as UTF-16LE with no byte-order mark, matching
// charset.UTF16's encoder but kept local to the header since the header is
// always UTF-16LE regardless of the dictionary's declared content encoding.
func utf16LEBytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, len(units)*2)
	for _, u := range units {
		out = append(out, byte(u), byte(u>>8))
	}

	return out
}

// encodingAttr resolves a Charset to the header's Encoding="..." value.
func encodingAttr(cs charset.Charset) string {
	return cs.CanonicalName()
}
