package cipher

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
)

// FastEncrypt runs MDX's nibble-swap index cipher over data using key,
// cycling key byte-for-byte and chaining each output byte into the next
// input's XOR mask. It is not an involution: running it again with the
// same key over the ciphertext does NOT recover the plaintext, because a
// true decrypt has to undo the nibble swap before the XORs, while this
// function swaps after them; MDX never decrypts this cipher, so no inverse
// is provided.
func FastEncrypt(data, key []byte) []byte {
	out := make([]byte, len(data))
	previous := byte(0x36)

	for i, b := range data {
		t := b ^ previous ^ byte(i&0xff) ^ key[i%len(key)]
		previous = (t >> 4) | (t << 4)
		out[i] = previous
	}

	return out
}

// MdxEncrypt obfuscates a version-2.0 key-block index the way MDX's
// writer does: the first 8 bytes (the index's own compression header) are
// left in the clear, and the key used to cipher the remainder is derived
// from bytes 4:8 of that header (the index's Adler-32 checksum) concatenated
// with the fixed constant 0x3695, little-endian, hashed with RIPEMD-128.
func MdxEncrypt(compBlock []byte) []byte {
	var salt [4]byte
	binary.LittleEndian.PutUint32(salt[:], 0x3695)

	seed := append(append([]byte{}, compBlock[4:8]...), salt[:]...)
	key := RIPEMD128(seed)

	out := make([]byte, 8, len(compBlock))
	copy(out, compBlock[0:8])

	return append(out, FastEncrypt(compBlock[8:], key[:])...)
}

// SalsaEncrypt encrypts plaintext for the key-section preamble: the
// encryption key is RIPEMD128(dictKey), and the cipher is 8-round Salsa20
// with a zero IV. dictKey is typically the ASCII registration key the
// dictionary author distributes to end users.
func SalsaEncrypt(plaintext, dictKey []byte) []byte {
	key := RIPEMD128(dictKey)
	s20, ok := NewSalsa20(key[:], make([]byte, 8), 8)
	if !ok {
		// key is always 16 bytes (RIPEMD128's output) and the IV is
		// always 8 zero bytes, so construction can never fail here.
		panic("cipher: unreachable salsa20 construction failure")
	}

	return s20.EncryptBytes(plaintext)
}

// EncryptKey generates the hexadecimal registration key MDict's reader
// expects in a dictionary's sibling .key file: 32 uppercase hex digits
// derived from the dictionary's own key and the end user's registration
// email. Write the returned string, verbatim, to a file with the same
// base name as the .mdx file but a ".key" extension.
func EncryptKey(dictKey, email []byte) string {
	emailDigest := RIPEMD128(email)
	dictKeyDigest := RIPEMD128(dictKey)

	s20, ok := NewSalsa20(emailDigest[:], make([]byte, 8), 8)
	if !ok {
		panic("cipher: unreachable salsa20 construction failure")
	}

	out := s20.EncryptBytes(dictKeyDigest[:])

	return strings.ToUpper(hex.EncodeToString(out))
}
