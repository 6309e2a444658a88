// Package compress implements MDX's compression façade: every key block,
// every record block, and (for version 2.0) the key-block index itself is
// wrapped in a small self-describing frame before it is written — a
// 4-byte little-endian compression-type tag followed by the 4-byte
// big-endian Adler-32 checksum of the UNCOMPRESSED payload, followed by
// the (possibly compressed) payload bytes. A reader needs only the type
// tag to know which of the three backends to invoke, and the checksum
// lets it verify the decompressed result without touching the rest of
// the file.
//
// This mirrors the role the teacher's compress package plays — a small
// Codec interface plus a factory keyed off a format.CompressionType — but
// the codecs themselves, and the frame they produce, are specific to
// MDX's three-value, closed compression enumeration.
package compress

import (
	"encoding/binary"
	"fmt"
	"hash/adler32"

	"github.com/gomdict/mdxwriter/errs"
	"github.com/gomdict/mdxwriter/format"
)

// frameHeaderSize is the size, in bytes, of the type-tag + checksum
// frame prepended to every compressed block and to the v2.0 key-block
// index.
const frameHeaderSize = 8

// Codec compresses and decompresses one block payload. Decompress is kept
// alongside Compress, even though a writer never calls it, because the
// round-trip property tests in this package (and any future reader built
// against this module) need a way to verify a frame without re-deriving
// the façade by hand.
type Codec interface {
	// Compress returns the raw compressed bytes of data (no framing).
	Compress(data []byte) ([]byte, error)
	// Decompress returns the original bytes given the raw compressed
	// bytes previously produced by Compress.
	Decompress(data []byte) ([]byte, error)
}

// codecFor resolves a format.CompressionType to its backend. LZO
// resolution is indirected through the lzoCodec package variable so that
// the `nolzo` build tag can swap in a backend that always errors, without
// this function needing two copies.
func codecFor(t format.CompressionType) (Codec, error) {
	switch t {
	case format.CompressionNone:
		return noopCodec{}, nil
	case format.CompressionZlib:
		return zlibCodec{}, nil
	case format.CompressionLZO:
		return lzoCodec, nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownCompression, t)
	}
}

// Compress produces one complete MDX compression frame for data: the
// 4-byte LE type tag, the 4-byte BE Adler-32 of data, and the compressed
// payload.
func Compress(data []byte, t format.CompressionType) ([]byte, error) {
	codec, err := codecFor(t)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	out := make([]byte, frameHeaderSize, frameHeaderSize+len(payload))
	binary.LittleEndian.PutUint32(out[0:4], uint32(t))
	binary.BigEndian.PutUint32(out[4:8], adler32.Checksum(data))
	out = append(out, payload...)

	return out, nil
}

// Decompress reverses Compress: it reads the type tag, decompresses the
// payload with the matching backend, and verifies the Adler-32 checksum
// against the recovered plaintext.
func Decompress(frame []byte) ([]byte, error) {
	if len(frame) < frameHeaderSize {
		return nil, fmt.Errorf("%w: frame shorter than %d bytes", errs.ErrInternal, frameHeaderSize)
	}

	t := format.CompressionType(binary.LittleEndian.Uint32(frame[0:4]))
	wantChecksum := binary.BigEndian.Uint32(frame[4:8])

	codec, err := codecFor(t)
	if err != nil {
		return nil, err
	}

	data, err := codec.Decompress(frame[frameHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}

	if got := adler32.Checksum(data); got != wantChecksum {
		return nil, fmt.Errorf("%w: adler32 mismatch after decompression", errs.ErrInternal)
	}

	return data, nil
}
