package mdx

import (
	"encoding/binary"
	"hash/adler32"

	"github.com/gomdict/mdxwriter/cipher"
	"github.com/gomdict/mdxwriter/format"
)

// keyPreambleValues are the fields of the key-section preamble before
// width encoding and optional encryption. keyIndexCompSize is only
// meaningful (and only written) under version 2.0.
type keyPreambleValues struct {
	NumKeyBlocks           uint64
	NumEntries             uint64
	KeyIndexDecompSize     uint64
	KeyIndexCompSize       uint64
	KeyBlocksTotalCompSize uint64
}

// buildKeyPreamble renders the key-section preamble per spec.md §4.11.
// Under v2.0 it is five 8-byte big-endian fields followed, always, by a
// 4-byte big-endian Adler-32 of the PLAINTEXT written in the clear; if
// dictionary encryption is enabled the 40 field bytes are Salsa20-encrypted
// before the checksum is appended.
// Under v1.2 it is four 4-byte fields (no compressed-size field, no
// checksum); Salsa20 encryption, if enabled, is still applied to those
// bytes directly.
func buildKeyPreamble(v keyPreambleValues, version format.Version, dictKey []byte) []byte {
	width := version.WidthLong()

	var plain []byte
	if version == format.Version20 {
		plain = make([]byte, 0, width*5)
		plain = append(plain, packUint(width, v.NumKeyBlocks)...)
		plain = append(plain, packUint(width, v.NumEntries)...)
		plain = append(plain, packUint(width, v.KeyIndexDecompSize)...)
		plain = append(plain, packUint(width, v.KeyIndexCompSize)...)
		plain = append(plain, packUint(width, v.KeyBlocksTotalCompSize)...)
	} else {
		plain = make([]byte, 0, width*4)
		plain = append(plain, packUint(width, v.NumKeyBlocks)...)
		plain = append(plain, packUint(width, v.NumEntries)...)
		plain = append(plain, packUint(width, v.KeyIndexDecompSize)...)
		plain = append(plain, packUint(width, v.KeyBlocksTotalCompSize)...)
	}

	out := plain
	if dictKey != nil {
		out = cipher.SalsaEncrypt(plain, dictKey)
	}

	if version == format.Version20 {
		var checksum [4]byte
		binary.BigEndian.PutUint32(checksum[:], adler32.Checksum(plain))
		out = append(out, checksum[:]...)
	}

	return out
}

// recordPreambleValues are the fields of the record-section preamble.
type recordPreambleValues struct {
	NumRecordBlocks           uint64
	NumEntries                uint64
	RecordIndexSize           uint64
	RecordBlocksTotalCompSize uint64
}

// buildRecordPreamble renders the record-section preamble: four fields,
// 8 bytes big-endian each under v2.0 or 4 bytes under v1.2. It is never
// encrypted.
func buildRecordPreamble(v recordPreambleValues, version format.Version) []byte {
	width := version.WidthLong()

	out := make([]byte, 0, width*4)
	out = append(out, packUint(width, v.NumRecordBlocks)...)
	out = append(out, packUint(width, v.NumEntries)...)
	out = append(out, packUint(width, v.RecordIndexSize)...)
	out = append(out, packUint(width, v.RecordBlocksTotalCompSize)...)

	return out
}
