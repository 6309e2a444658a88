package mdx

// partition performs a greedy left-to-right split of entries into blocks
// whose summed sizeOf stays at or below blockSize. A new block starts
// whenever adding the current entry would push the running total over the
// limit; the final block is always closed even if it falls under the
// limit. A single entry whose own size exceeds blockSize still forms its
// own one-entry block rather than being split or rejected. An empty input
// yields zero blocks.
func partition(entries []OffsetTableEntry, blockSize int, sizeOf func(OffsetTableEntry) int) [][]OffsetTableEntry {
	if len(entries) == 0 {
		return nil
	}

	var blocks [][]OffsetTableEntry
	current := make([]OffsetTableEntry, 0)
	currentSize := 0

	for _, e := range entries {
		entrySize := sizeOf(e)

		if len(current) > 0 && currentSize+entrySize > blockSize {
			blocks = append(blocks, current)
			current = make([]OffsetTableEntry, 0)
			currentSize = 0
		}

		current = append(current, e)
		currentSize += entrySize
	}

	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}

// keyBlockEntrySize is the _len_block_entry contribution of entry to a key
// block: the width of its packed offset plus its NUL-terminated key. It is
// computed with the 8-byte offset width regardless of version, which
// over-estimates for v1.2 (4-byte offsets) by design — see DESIGN.md.
func keyBlockEntrySize(e OffsetTableEntry) int {
	return 8 + len(e.KeyNull)
}

// recordBlockEntrySize is the _len_block_entry contribution of entry to a
// record block: the length of its NUL-terminated explanation.
func recordBlockEntrySize(e OffsetTableEntry) int {
	return len(e.RecordNull)
}
