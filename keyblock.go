package mdx

import (
	"fmt"

	"github.com/gomdict/mdxwriter/compress"
	"github.com/gomdict/mdxwriter/errs"
	"github.com/gomdict/mdxwriter/format"
	"github.com/gomdict/mdxwriter/internal/pool"
)

// KeyBlock is one partitioned run of the offset table, compressed as a key
// block and summarized by one key-block index entry.
type KeyBlock struct {
	NumEntries int
	FirstKey   []byte // v2.0: NUL-terminated; v1.2: bare
	FirstLen   int    // code-unit length, excluding NUL
	LastKey    []byte
	LastLen    int

	CompData   []byte // includes the 8-byte compression frame header
	DecompSize int
}

// buildKeyBlocks compresses each partitioned group of entries into a
// KeyBlock, packing each entry as pack(offset, width) ∥ key_null in entry
// order before compression.
func buildKeyBlocks(groups [][]OffsetTableEntry, version format.Version, compType format.CompressionType) ([]KeyBlock, error) {
	width := version.WidthLong()
	blocks := make([]KeyBlock, 0, len(groups))

	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)

	for _, group := range groups {
		if len(group) == 0 {
			continue
		}

		buf.Reset()
		for _, e := range group {
			buf.MustWrite(packUint(width, e.Offset))
			buf.MustWrite(e.KeyNull)
		}

		decompSize := buf.Len()

		payload := make([]byte, decompSize)
		copy(payload, buf.Bytes())

		compData, err := compress.Compress(payload, compType)
		if err != nil {
			return nil, fmt.Errorf("%w: key block compression", err)
		}

		first, firstLen := keyBlockKey(group[0], version)
		last, lastLen := keyBlockKey(group[len(group)-1], version)

		blocks = append(blocks, KeyBlock{
			NumEntries: len(group),
			FirstKey:   first,
			FirstLen:   firstLen,
			LastKey:    last,
			LastLen:    lastLen,
			CompData:   compData,
			DecompSize: decompSize,
		})
	}

	return blocks, nil
}

// keyBlockKey returns the bytes and code-unit length an index entry
// records for one boundary key of a block: NUL-terminated under v2.0, bare
// under v1.2.
func keyBlockKey(e OffsetTableEntry, version format.Version) ([]byte, int) {
	if version == format.Version20 {
		return e.KeyNull, e.KeyLen
	}

	return e.Key, e.KeyLen
}

// buildKeyBlockIndex concatenates the per-block index entries (§4.8), then
// compresses and optionally encrypts the whole table per version:
//   - v2.0: compress, then mdx_encrypt the compressed form if encryptIndex.
//   - v1.2: written verbatim, uncompressed; encryptIndex is rejected earlier
//     at construction time, so mdxEncrypt is never reached here.
func buildKeyBlockIndex(blocks []KeyBlock, version format.Version, compType format.CompressionType, encryptIndex bool, mdxEncrypt func([]byte) []byte) (onDisk []byte, decompSize int, err error) {
	widthLong := version.WidthLong()
	widthShort := version.WidthShort()

	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)

	for _, b := range blocks {
		buf.MustWrite(packUint(widthLong, uint64(b.NumEntries)))
		buf.MustWrite(packUint(widthShort, uint64(b.FirstLen)))
		buf.MustWrite(b.FirstKey)
		buf.MustWrite(packUint(widthShort, uint64(b.LastLen)))
		buf.MustWrite(b.LastKey)
		buf.MustWrite(packUint(widthLong, uint64(len(b.CompData))))
		buf.MustWrite(packUint(widthLong, uint64(b.DecompSize)))
	}

	plain := make([]byte, buf.Len())
	copy(plain, buf.Bytes())
	decompSize = len(plain)

	if version == format.Version12 {
		if encryptIndex {
			return nil, 0, fmt.Errorf("%w: encrypt_index requires version 2.0", errs.ErrParameter)
		}

		return plain, decompSize, nil
	}

	compressed, err := compress.Compress(plain, compType)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: key block index compression", err)
	}

	if encryptIndex {
		return mdxEncrypt(compressed), decompSize, nil
	}

	return compressed, decompSize, nil
}
