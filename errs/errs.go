// Package errs defines the sentinel errors returned throughout mdxwriter.
//
// Callers should use errors.Is against these values rather than comparing
// error strings; every error the writer raises itself is one of them or
// wraps one of them with fmt.Errorf("%w: ..."). Errors from the io.Writer
// passed to Writer.Write are returned unchanged.
package errs

import "errors"

var (
	// ErrParameter indicates an invalid or illegal combination of
	// construction options: an unknown encoding, an unknown format version,
	// or encrypt_index requested under version "1.2".
	ErrParameter = errors.New("mdxwriter: invalid parameter")

	// ErrUnknownCompression indicates a compression type outside {0, 1, 2}.
	ErrUnknownCompression = errors.New("mdxwriter: unknown compression type")

	// ErrUnsupportedCompression indicates LZO compression was requested but
	// no LZO backend is compiled in, or LZO decompression was requested (the
	// linked LZO backend compresses only).
	ErrUnsupportedCompression = errors.New("mdxwriter: unsupported compression backend")

	// ErrEmptyEntry indicates a headword or explanation string was empty.
	ErrEmptyEntry = errors.New("mdxwriter: headword and explanation must be non-empty")

	// ErrAlreadyWritten indicates Write was called more than once on the
	// same Writer; the writer is one-shot by design.
	ErrAlreadyWritten = errors.New("mdxwriter: writer already consumed")

	// ErrInternal indicates an invariant was violated; this should be
	// unreachable for validated input and signals a bug in the writer.
	ErrInternal = errors.New("mdxwriter: internal invariant violation")
)
