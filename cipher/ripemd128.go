// Package cipher implements the three cryptographic primitives MDX's
// container format is built on: a RIPEMD-128 digest (used to derive
// encryption keys from a dictionary key or registration email), a
// reduced-round Salsa20 stream cipher (used for the key-section preamble
// and the registration-key helper), and the custom nibble-swap cipher MDX
// uses to obfuscate its key-block index. None of these three have a
// ready-made Go library: RIPEMD-128 never shipped one, and Salsa20's only
// ecosystem implementation (golang.org/x/crypto/salsa20) hardcodes a
// 32-byte key and 20 rounds, neither of which MDX uses. They are written
// here in the style of a from-scratch hash.Hash (buffer, offset, compress)
// the way a block-buffered digest is commonly structured in Go.
package cipher

import "encoding/binary"

// ripemd128BlockSize is the size, in bytes, of one RIPEMD-128 compression
// block.
const ripemd128BlockSize = 64

// ripemd128Size is the size, in bytes, of a RIPEMD-128 digest.
const ripemd128Size = 16

// ripemd128 initial chaining values, shared by both the left and right
// compression lines.
const (
	rmd128h0 = 0x67452301
	rmd128h1 = 0xefcdab89
	rmd128h2 = 0x98badcfe
	rmd128h3 = 0x10325476
)

// Per-round additive constants for the left and right compression lines.
var rmd128KL = [4]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc}
var rmd128KR = [4]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x00000000}

// Message word selection order, one slice of 16 indices per round, for the
// left and right lines.
var rmd128RL = [4][16]uint{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8},
	{3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12},
	{1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2},
}
var rmd128RR = [4][16]uint{
	{5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12},
	{6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2},
	{15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13},
	{8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14},
}

// Per-step rotate-left amounts, same shape as the word selection tables.
var rmd128SL = [4][16]uint{
	{11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8},
	{7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12},
	{11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5},
	{11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12},
}
var rmd128SR = [4][16]uint{
	{8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6},
	{9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11},
	{9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5},
	{15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8},
}

func rmd128f(round int, x, y, z uint32) uint32 {
	switch round {
	case 0:
		return x ^ y ^ z
	case 1:
		return (x & y) | (^x & z)
	case 2:
		return (x | ^y) ^ z
	default:
		return (x & z) | (y &^ z)
	}
}

func rotl32(x uint32, n uint) uint32 {
	return (x << n) | (x >> (32 - n))
}

// ripemd128Digest is the running state of a RIPEMD-128 computation.
type ripemd128Digest struct {
	h      [4]uint32
	buf    [ripemd128BlockSize]byte
	offset int
	length uint64 // total bytes written, for the length suffix
}

func newRipemd128Digest() *ripemd128Digest {
	d := &ripemd128Digest{}
	d.reset()

	return d
}

func (d *ripemd128Digest) reset() {
	d.h = [4]uint32{rmd128h0, rmd128h1, rmd128h2, rmd128h3}
	d.offset = 0
	d.length = 0
}

func (d *ripemd128Digest) write(p []byte) {
	d.length += uint64(len(p))

	for len(p) > 0 {
		n := copy(d.buf[d.offset:], p)
		d.offset += n
		p = p[n:]

		if d.offset == ripemd128BlockSize {
			d.compress(d.buf[:])
			d.offset = 0
		}
	}
}

// sum finalizes a copy of the digest (leaving d usable for Write/Sum
// idempotency, matching hash.Hash's contract) and returns the 16-byte
// result.
func (d *ripemd128Digest) sum() [ripemd128Size]byte {
	cp := *d

	bitLen := cp.length * 8
	cp.write([]byte{0x80})

	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], bitLen)

	for cp.offset != 56 {
		cp.write([]byte{0x00})
	}
	cp.write(lenBuf[:])

	var out [ripemd128Size]byte
	binary.LittleEndian.PutUint32(out[0:4], cp.h[0])
	binary.LittleEndian.PutUint32(out[4:8], cp.h[1])
	binary.LittleEndian.PutUint32(out[8:12], cp.h[2])
	binary.LittleEndian.PutUint32(out[12:16], cp.h[3])

	return out
}

func (d *ripemd128Digest) compress(block []byte) {
	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	al, bl, cl, dl := d.h[0], d.h[1], d.h[2], d.h[3]
	ar, br, cr, dr := d.h[0], d.h[1], d.h[2], d.h[3]

	for round := 0; round < 4; round++ {
		for step := 0; step < 16; step++ {
			t := rotl32(al+rmd128f(round, bl, cl, dl)+x[rmd128RL[round][step]]+rmd128KL[round], rmd128SL[round][step])
			al, dl, cl, bl = dl, cl, bl, t

			t = rotl32(ar+rmd128f(3-round, br, cr, dr)+x[rmd128RR[round][step]]+rmd128KR[round], rmd128SR[round][step])
			ar, dr, cr, br = dr, cr, br, t
		}
	}

	t := d.h[1] + cl + dr
	d.h[1] = d.h[2] + dl + ar
	d.h[2] = d.h[3] + al + br
	d.h[3] = d.h[0] + bl + cr
	d.h[0] = t
}

// RIPEMD128 computes the 16-byte RIPEMD-128 digest of data. MDX uses this
// digest, never incrementally, to derive the key schedule for both the
// key-block index cipher and the Salsa20 preamble cipher, so a single
// one-shot function covers every call site.
func RIPEMD128(data []byte) [16]byte {
	d := newRipemd128Digest()
	d.write(data)

	return d.sum()
}
