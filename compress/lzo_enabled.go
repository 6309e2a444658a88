//go:build !nolzo

package compress

import (
	"github.com/woozymasta/lzo"

	"github.com/gomdict/mdxwriter/errs"
)

// lzoCodec implements compression type 1 using the real LZO1X-999
// compressor. The backend this links against is compress-only — it has
// no exported decompressor — so Decompress always fails; MDX's writer
// never needs to decompress what it just wrote, and the only test for this
// codec checks that Compress succeeds and tags the frame as type 1.
type lzoBackend struct{}

var lzoCodec Codec = lzoBackend{}

func (lzoBackend) Compress(data []byte) ([]byte, error) {
	return lzo.Compress1X999(data)
}

func (lzoBackend) Decompress([]byte) ([]byte, error) {
	return nil, errs.ErrUnsupportedCompression
}
