package cipher

import "encoding/binary"

// salsa20TauConstants are the four 32-bit constant words Salsa20 mixes
// into its initial state when keyed with a 16-byte key (the 16-byte key
// is used for both key halves of the state). golang.org/x/crypto/salsa20
// only exposes the 32-byte-key, 20-round variant ("expand 32-byte k"), so
// MDX's 16-byte-key, variable-round preamble cipher needs its own core —
// this is that core, following the reference algorithm's row/column
// quarter-round structure.
var salsa20TauConstants = [4]uint32{
	0x61707865, // "expa"
	0x3120646e, // "nd 1"
	0x79622d36, // "6-by"
	0x6b206574, // "te k"
}

func rotl(x uint32, n uint) uint32 {
	return (x << n) | (x >> (32 - n))
}

// salsa20Core runs the Salsa20 hash function over a 16-word input state
// for the given number of rounds (must be even: 8, 12, or 20) and writes
// the resulting 64-byte keystream block to out.
func salsa20Core(rounds int, in *[16]uint32, out *[64]byte) {
	x := *in

	for i := 0; i < rounds; i += 2 {
		x[4] ^= rotl(x[0]+x[12], 7)
		x[8] ^= rotl(x[4]+x[0], 9)
		x[12] ^= rotl(x[8]+x[4], 13)
		x[0] ^= rotl(x[12]+x[8], 18)

		x[9] ^= rotl(x[5]+x[1], 7)
		x[13] ^= rotl(x[9]+x[5], 9)
		x[1] ^= rotl(x[13]+x[9], 13)
		x[5] ^= rotl(x[1]+x[13], 18)

		x[14] ^= rotl(x[10]+x[6], 7)
		x[2] ^= rotl(x[14]+x[10], 9)
		x[6] ^= rotl(x[2]+x[14], 13)
		x[10] ^= rotl(x[6]+x[2], 18)

		x[3] ^= rotl(x[15]+x[11], 7)
		x[7] ^= rotl(x[3]+x[15], 9)
		x[11] ^= rotl(x[7]+x[3], 13)
		x[15] ^= rotl(x[11]+x[7], 18)

		x[1] ^= rotl(x[0]+x[3], 7)
		x[2] ^= rotl(x[1]+x[0], 9)
		x[3] ^= rotl(x[2]+x[1], 13)
		x[0] ^= rotl(x[3]+x[2], 18)

		x[6] ^= rotl(x[5]+x[4], 7)
		x[7] ^= rotl(x[6]+x[5], 9)
		x[4] ^= rotl(x[7]+x[6], 13)
		x[5] ^= rotl(x[4]+x[7], 18)

		x[11] ^= rotl(x[10]+x[9], 7)
		x[8] ^= rotl(x[11]+x[10], 9)
		x[9] ^= rotl(x[8]+x[11], 13)
		x[10] ^= rotl(x[9]+x[8], 18)

		x[12] ^= rotl(x[15]+x[14], 7)
		x[13] ^= rotl(x[12]+x[15], 9)
		x[14] ^= rotl(x[13]+x[12], 13)
		x[15] ^= rotl(x[14]+x[13], 18)
	}

	for i := range x {
		x[i] += in[i]
	}

	for i, word := range x {
		binary.LittleEndian.PutUint32(out[i*4:], word)
	}
}

// Salsa20 is a Salsa20/r stream cipher instance keyed with a 16-byte key,
// an 8-byte IV (Salsa20's "nonce"), and a caller-chosen round count. MDX
// uses the 8-round variant everywhere it appears (the key-section
// preamble cipher and the registration-key helper); the full type is kept
// general because both dict_key-derived and email-derived keys flow
// through the same construction.
type Salsa20 struct {
	state   [16]uint32
	block   [64]byte
	blockAt int // number of bytes of block already consumed
	rounds  int
}

// NewSalsa20 constructs a Salsa20 cipher. key must be 16 bytes, iv must be
// 8 bytes, and rounds must be one of 8, 12, or 20; any other combination
// returns false.
func NewSalsa20(key, iv []byte, rounds int) (*Salsa20, bool) {
	if len(key) != 16 || len(iv) != 8 {
		return nil, false
	}
	switch rounds {
	case 8, 12, 20:
	default:
		return nil, false
	}

	s := &Salsa20{rounds: rounds, blockAt: 64}

	s.state[0] = salsa20TauConstants[0]
	s.state[1] = binary.LittleEndian.Uint32(key[0:4])
	s.state[2] = binary.LittleEndian.Uint32(key[4:8])
	s.state[3] = binary.LittleEndian.Uint32(key[8:12])
	s.state[4] = binary.LittleEndian.Uint32(key[12:16])
	s.state[5] = salsa20TauConstants[1]
	s.state[6] = binary.LittleEndian.Uint32(iv[0:4])
	s.state[7] = binary.LittleEndian.Uint32(iv[4:8])
	s.state[8] = 0 // block counter, low word
	s.state[9] = 0 // block counter, high word
	s.state[10] = salsa20TauConstants[2]
	s.state[11] = binary.LittleEndian.Uint32(key[0:4])
	s.state[12] = binary.LittleEndian.Uint32(key[4:8])
	s.state[13] = binary.LittleEndian.Uint32(key[8:12])
	s.state[14] = binary.LittleEndian.Uint32(key[12:16])
	s.state[15] = salsa20TauConstants[3]

	return s, true
}

func (s *Salsa20) nextBlock() {
	salsa20Core(s.rounds, &s.state, &s.block)
	s.blockAt = 0

	s.state[8]++
	if s.state[8] == 0 {
		s.state[9]++
	}
}

// XORKeyStream XORs src with the Salsa20 keystream and writes the result
// to dst, which must be at least len(src) long. Successive calls continue
// the keystream from where the previous call left off.
func (s *Salsa20) XORKeyStream(dst, src []byte) {
	for i := range src {
		if s.blockAt == 64 {
			s.nextBlock()
		}
		dst[i] = src[i] ^ s.block[s.blockAt]
		s.blockAt++
	}
}

// EncryptBytes returns a new slice containing plaintext XORed with the
// keystream; it does not mutate plaintext.
func (s *Salsa20) EncryptBytes(plaintext []byte) []byte {
	out := make([]byte, len(plaintext))
	s.XORKeyStream(out, plaintext)

	return out
}
