//go:build nolzo

package compress

import "github.com/gomdict/mdxwriter/errs"

// Under the nolzo build tag, the LZO backend is stubbed out entirely so a
// binary can be built without pulling in the cgo-free-but-still-sizable
// woozymasta/lzo assembler-style implementation. Requesting compression
// type 1 then fails at Compress time rather than at link time.
type lzoBackend struct{}

var lzoCodec Codec = lzoBackend{}

func (lzoBackend) Compress([]byte) ([]byte, error) {
	return nil, errs.ErrUnsupportedCompression
}

func (lzoBackend) Decompress([]byte) ([]byte, error) {
	return nil, errs.ErrUnsupportedCompression
}
