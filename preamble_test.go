package mdx

import (
	"encoding/binary"
	"hash/adler32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomdict/mdxwriter/format"
)

func TestBuildKeyPreamble_V20UnencryptedHasChecksumOverPlaintext(t *testing.T) {
	v := keyPreambleValues{
		NumKeyBlocks: 1, NumEntries: 3,
		KeyIndexDecompSize: 10, KeyIndexCompSize: 20, KeyBlocksTotalCompSize: 30,
	}
	out := buildKeyPreamble(v, format.Version20, nil)
	require.Len(t, out, 5*8+4)

	plain := out[:40]
	checksum := binary.BigEndian.Uint32(out[40:44])
	assert.Equal(t, adler32.Checksum(plain), checksum)
	assert.Equal(t, uint64(1), beUint(plain[0:8]))
	assert.Equal(t, uint64(3), beUint(plain[8:16]))
}

func TestBuildKeyPreamble_V20EncryptedChecksumStillOverPlaintext(t *testing.T) {
	v := keyPreambleValues{NumKeyBlocks: 1, NumEntries: 1, KeyIndexDecompSize: 1, KeyIndexCompSize: 1, KeyBlocksTotalCompSize: 1}

	plainOut := buildKeyPreamble(v, format.Version20, nil)
	encOut := buildKeyPreamble(v, format.Version20, []byte("secret-dict-key"))

	require.Len(t, encOut, len(plainOut))
	assert.NotEqual(t, plainOut[:40], encOut[:40])
	assert.Equal(t, plainOut[40:44], encOut[40:44]) // checksum is over plaintext either way
}

func TestBuildKeyPreamble_V12HasNoCompressedSizeFieldOrChecksum(t *testing.T) {
	v := keyPreambleValues{NumKeyBlocks: 2, NumEntries: 5, KeyIndexDecompSize: 9, KeyBlocksTotalCompSize: 40}
	out := buildKeyPreamble(v, format.Version12, nil)
	assert.Len(t, out, 4*4)
}

func TestBuildRecordPreamble_WidthsPerVersion(t *testing.T) {
	v := recordPreambleValues{NumRecordBlocks: 1, NumEntries: 2, RecordIndexSize: 3, RecordBlocksTotalCompSize: 4}

	v20 := buildRecordPreamble(v, format.Version20)
	assert.Len(t, v20, 4*8)

	v12 := buildRecordPreamble(v, format.Version12)
	assert.Len(t, v12, 4*4)
}
