package compress

// noopCodec implements the "no compression" backend (compression type 0):
// the payload passes through unchanged, and the frame carries only the
// Adler-32 checksum for integrity.
type noopCodec struct{}

func (noopCodec) Compress(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}

func (noopCodec) Decompress(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}
