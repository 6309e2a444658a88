package mdx

// packUint big-endian encodes v into a field of the given byte width (1, 2,
// 4, or 8), the single helper every width-sensitive serializer in this
// package routes through per the FormatVariant guidance: callers pass
// version.WidthLong() or version.WidthShort() instead of branching on the
// version themselves.
func packUint(width int, v uint64) []byte {
	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}

	return out
}
