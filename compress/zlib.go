package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// zlibCodec implements compression type 2, MDX's default and mandatory
// backend. klauspost/compress's zlib package is a drop-in replacement for
// the standard library's compress/zlib with a materially faster
// implementation; the rest of this module's compression stack (the
// optional LZO backend) is also reached through a third-party codec, so
// zlib stays off the standard library too rather than splitting the
// façade across two conventions.
type zlibCodec struct{}

func (zlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (zlibCodec) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
