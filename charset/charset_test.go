package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AcceptsCaseInsensitiveSpellings(t *testing.T) {
	cases := map[string]Charset{
		"utf8": UTF8, "UTF-8": UTF8, "": UTF8,
		"utf16": UTF16, "UTF-16": UTF16,
		"gbk": GBK, "GBK": GBK,
		"big5": Big5, "BIG5": Big5,
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParse_RejectsUnknownEncoding(t *testing.T) {
	_, err := Parse("latin1")
	assert.Error(t, err)
}

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "UTF-8", UTF8.CanonicalName())
	assert.Equal(t, "UTF-16", UTF16.CanonicalName())
	assert.Equal(t, "GBK", GBK.CanonicalName())
	assert.Equal(t, "BIG5", Big5.CanonicalName())
}

func TestUnitSize(t *testing.T) {
	assert.Equal(t, 1, UTF8.UnitSize())
	assert.Equal(t, 2, UTF16.UnitSize())
	assert.Equal(t, 1, GBK.UnitSize())
	assert.Equal(t, 1, Big5.UnitSize())
}

func TestEncode_UTF8PassesThrough(t *testing.T) {
	out, err := UTF8.Encode("hello")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), out)
}

func TestEncode_UTF16LittleEndianNoBOM(t *testing.T) {
	out, err := UTF16.Encode("A")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41, 0x00}, out)
}

func TestEncode_UTF16SurrogatePairForNonBMP(t *testing.T) {
	out, err := UTF16.Encode("\U00029FF6")
	require.NoError(t, err)
	assert.Len(t, out, 4)
}

func TestEncode_GBKRoundTripsASCII(t *testing.T) {
	out, err := GBK.Encode("abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)
}

func TestEncode_Big5RoundTripsASCII(t *testing.T) {
	out, err := Big5.Encode("abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)
}

func TestEncodeWithNUL_AppendsTerminatorSizedForCharset(t *testing.T) {
	out, err := UTF8.EncodeWithNUL("hi")
	require.NoError(t, err)
	assert.Equal(t, []byte("hi\x00"), out)

	out, err = UTF16.EncodeWithNUL("A")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41, 0x00, 0x00, 0x00}, out)
}

func TestUnitCount(t *testing.T) {
	assert.Equal(t, 5, UTF8.UnitCount([]byte("hello")))
	assert.Equal(t, 2, UTF16.UnitCount([]byte{0, 0, 0, 0}))
}
