package mdx

import (
	"fmt"

	"github.com/gomdict/mdxwriter/compress"
	"github.com/gomdict/mdxwriter/format"
	"github.com/gomdict/mdxwriter/internal/pool"
)

// RecordBlock is one partitioned run of the offset table, compressed as a
// record block. Unlike KeyBlock, it carries no per-block index metadata
// beyond the two sizes the record-block index stores.
type RecordBlock struct {
	CompData   []byte
	DecompSize int
}

// buildRecordBlocks compresses each partitioned group's concatenated
// record_null payload into a RecordBlock.
func buildRecordBlocks(groups [][]OffsetTableEntry, compType format.CompressionType) ([]RecordBlock, error) {
	blocks := make([]RecordBlock, 0, len(groups))

	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)

	for _, group := range groups {
		if len(group) == 0 {
			continue
		}

		buf.Reset()
		for _, e := range group {
			buf.MustWrite(e.RecordNull)
		}

		decompSize := buf.Len()

		payload := make([]byte, decompSize)
		copy(payload, buf.Bytes())

		compData, err := compress.Compress(payload, compType)
		if err != nil {
			return nil, fmt.Errorf("%w: record block compression", err)
		}

		blocks = append(blocks, RecordBlock{CompData: compData, DecompSize: decompSize})
	}

	return blocks, nil
}

// buildRecordBlockIndex concatenates pack(comp_size) ∥ pack(decomp_size)
// for every record block, at the version's long width. The record-block
// index is never compressed or encrypted.
func buildRecordBlockIndex(blocks []RecordBlock, version format.Version) []byte {
	width := version.WidthLong()
	out := make([]byte, 0, len(blocks)*2*width)

	for _, b := range blocks {
		out = append(out, packUint(width, uint64(len(b.CompData)))...)
		out = append(out, packUint(width, uint64(b.DecompSize))...)
	}

	return out
}
