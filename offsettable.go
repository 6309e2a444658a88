package mdx

import (
	"fmt"
	"sort"

	"github.com/gomdict/mdxwriter/charset"
	"github.com/gomdict/mdxwriter/errs"
)

// OffsetTableEntry is one dictionary entry after sorting and encoding, the
// shared input to both the key-block and record-block builders.
type OffsetTableEntry struct {
	Headword string // original, unencoded; used only for diagnostics and sort
	Key      []byte // headword encoded under the writer's charset, no terminator
	KeyNull  []byte // Key plus one encoded NUL code unit
	KeyLen   int    // code-unit length of Key (= len(Key) / encoding unit size)

	RecordNull []byte // explanation encoded, plus one encoded NUL code unit
	Offset     uint64 // cumulative sum of len(RecordNull) over prior entries
}

// buildOffsetTable sorts entries by the code-point sequence of their
// headword (Go's native string comparison already orders valid UTF-8 by
// code point, so a plain less-than on the source string is sufficient
// regardless of the charset entries are eventually encoded into), encodes
// every headword and explanation, and accumulates record offsets.
func buildOffsetTable(entries map[string]string, cs charset.Charset) ([]OffsetTableEntry, error) {
	headwords := make([]string, 0, len(entries))
	for h := range entries {
		headwords = append(headwords, h)
	}
	sort.Strings(headwords)

	table := make([]OffsetTableEntry, 0, len(headwords))

	var offset uint64
	for _, headword := range headwords {
		explanation := entries[headword]
		if headword == "" || explanation == "" {
			return nil, fmt.Errorf("%w: headword %q", errs.ErrEmptyEntry, headword)
		}

		key, err := cs.Encode(headword)
		if err != nil {
			return nil, fmt.Errorf("%w: headword %q", err, headword)
		}

		keyNull, err := cs.EncodeWithNUL(headword)
		if err != nil {
			return nil, fmt.Errorf("%w: headword %q", err, headword)
		}

		recordNull, err := cs.EncodeWithNUL(explanation)
		if err != nil {
			return nil, fmt.Errorf("%w: explanation for %q", err, headword)
		}

		table = append(table, OffsetTableEntry{
			Headword:   headword,
			Key:        key,
			KeyNull:    keyNull,
			KeyLen:     cs.UnitCount(key),
			RecordNull: recordNull,
			Offset:     offset,
		})

		offset += uint64(len(recordNull))
	}

	return table, nil
}
