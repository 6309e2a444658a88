package mdx

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomdict/mdxwriter/errs"
	"github.com/gomdict/mdxwriter/format"
)

func basicDict() map[string]string {
	return map[string]string{
		"alpha": "<i>alpha</i>",
		"beta":  "Letter <b>beta</b>",
		"gamma": "Capital version is Γ &lt;",
	}
}

func TestNewWriter_BasicDictDefaults(t *testing.T) {
	w, err := NewWriter(basicDict(), "t", "d")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))
	assert.NotZero(t, buf.Len())

	assert.Len(t, w.keyBlocks, 1)
	assert.Equal(t, 3, w.keyBlocks[0].NumEntries)
}

func TestNewWriter_UTF16EncodingUsesTwoByteTerminators(t *testing.T) {
	w, err := NewWriter(basicDict(), "t", "d", WithEncoding("utf-16"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))

	for _, b := range w.keyBlocks {
		assert.Equal(t, 0, len(b.FirstKey)%2)
		assert.Equal(t, []byte{0, 0}, b.FirstKey[len(b.FirstKey)-2:])
	}
}

func TestNewWriter_NonBMPHeadwordUTF16(t *testing.T) {
	w, err := NewWriter(map[string]string{"\U00029FF6": "A fish"}, "t", "d", WithEncoding("utf-16"))
	require.NoError(t, err)

	require.Len(t, w.keyBlocks, 1)
	assert.Equal(t, 2, w.keyBlocks[0].FirstLen)
	// surrogate pair (4 bytes) + 2-byte NUL terminator
	assert.Equal(t, 6, len(w.keyBlocks[0].FirstKey))
}

func TestNewWriter_Version12UsesFourByteWidths(t *testing.T) {
	w, err := NewWriter(basicDict(), "t", "d", WithVersion("1.2"))
	require.NoError(t, err)

	assert.Len(t, w.recordPreamble, 4*4)
	assert.Len(t, w.keyPreamble, 4*4)

	for _, rb := range w.recordBlocks {
		_ = rb
	}
	require.NotEmpty(t, w.recordBlocks)
}

func TestNewWriter_EncryptIndexObfuscatesIndexButKeepsFrameHeaderClear(t *testing.T) {
	plain, err := NewWriter(basicDict(), "t", "d", WithCompressionType(format.CompressionZlib))
	require.NoError(t, err)

	enc, err := NewWriter(basicDict(), "t", "d", WithCompressionType(format.CompressionZlib), WithEncryptIndex(true))
	require.NoError(t, err)

	require.Equal(t, len(plain.keyIndexBytes), len(enc.keyIndexBytes))
	assert.Equal(t, plain.keyIndexBytes[:8], enc.keyIndexBytes[:8])
	if len(plain.keyIndexBytes) > 8 {
		assert.NotEqual(t, plain.keyIndexBytes[8:], enc.keyIndexBytes[8:])
	}
}

func TestNewWriter_EncryptIndexRejectedUnderV12(t *testing.T) {
	_, err := NewWriter(basicDict(), "t", "d", WithVersion("1.2"), WithEncryptIndex(true))
	assert.ErrorIs(t, err, errs.ErrParameter)
}

func TestNewWriter_EncryptKeyAndUserEmailSetsRegCodeAndEncryptsPreamble(t *testing.T) {
	dictKey := []byte("abc")
	email := []byte("example@example.com")

	plain, err := NewWriter(basicDict(), "t", "d")
	require.NoError(t, err)

	w, err := NewWriter(basicDict(), "t", "d", WithEncryptKey(dictKey), WithUserEmail(email))
	require.NoError(t, err)

	wantRegCode := EncryptKey(dictKey, email)
	assert.Contains(t, string(headerBodyForAssert(t, w.header)), `Encrypted="1"`)
	assert.Contains(t, string(headerBodyForAssert(t, w.header)), `RegCode="`+wantRegCode+`"`)

	require.Equal(t, len(plain.keyPreamble), len(w.keyPreamble))
	assert.NotEqual(t, plain.keyPreamble[:40], w.keyPreamble[:40])
	assert.Equal(t, plain.keyPreamble[40:44], w.keyPreamble[40:44])
}

func headerBodyForAssert(t *testing.T, raw []byte) string {
	t.Helper()
	length := binary.BigEndian.Uint32(raw[0:4])
	return decodeHeaderBody(t, raw[:8+length])
}

func TestNewWriter_EmptyMappingProducesValidEmptyFile(t *testing.T) {
	w, err := NewWriter(map[string]string{}, "t", "d")
	require.NoError(t, err)

	assert.Empty(t, w.keyBlocks)
	assert.Empty(t, w.recordBlocks)

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))
	assert.NotZero(t, buf.Len()) // header is still written
}

func TestNewWriter_SingleEntryLargerThanBlockSizeFormsOneBlock(t *testing.T) {
	big := map[string]string{"word": string(bytes.Repeat([]byte("x"), 200))}
	w, err := NewWriter(big, "t", "d", WithBlockSize(16))
	require.NoError(t, err)

	assert.Len(t, w.recordBlocks, 1)
}

func TestNewWriter_RejectsUnknownEncoding(t *testing.T) {
	_, err := NewWriter(basicDict(), "t", "d", WithEncoding("latin1"))
	assert.ErrorIs(t, err, errs.ErrParameter)
}

func TestNewWriter_RejectsUnknownVersion(t *testing.T) {
	_, err := NewWriter(basicDict(), "t", "d", WithVersion("3.0"))
	assert.ErrorIs(t, err, errs.ErrParameter)
}

func TestNewWriter_RejectsUnknownCompressionType(t *testing.T) {
	_, err := NewWriter(basicDict(), "t", "d", WithCompressionType(format.CompressionType(99)))
	assert.ErrorIs(t, err, errs.ErrUnknownCompression)
}

func TestWriter_WriteIsOneShot(t *testing.T) {
	w, err := NewWriter(basicDict(), "t", "d")
	require.NoError(t, err)

	var buf1, buf2 bytes.Buffer
	require.NoError(t, w.Write(&buf1))
	err = w.Write(&buf2)
	assert.ErrorIs(t, err, errs.ErrAlreadyWritten)
}
