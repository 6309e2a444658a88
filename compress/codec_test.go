package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomdict/mdxwriter/format"
)

func TestCompress_NoneRoundTrips(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	frame, err := Compress(data, format.CompressionNone)
	require.NoError(t, err)

	got, err := Decompress(frame)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestCompress_ZlibRoundTrips(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh"), 500)

	frame, err := Compress(data, format.CompressionZlib)
	require.NoError(t, err)
	assert.Less(t, len(frame), len(data), "zlib should shrink a repetitive payload")

	got, err := Decompress(frame)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestCompress_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionNone, format.CompressionZlib} {
		frame, err := Compress(nil, ct)
		require.NoError(t, err)

		got, err := Decompress(frame)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestCompress_FrameLayout(t *testing.T) {
	data := []byte("hello")

	frame, err := Compress(data, format.CompressionNone)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(frame), frameHeaderSize)
	assert.Equal(t, byte(format.CompressionNone), frame[0])
	assert.Equal(t, byte(0), frame[1])
	assert.Equal(t, byte(0), frame[2])
	assert.Equal(t, byte(0), frame[3])
}

func TestCompress_UnknownType(t *testing.T) {
	_, err := Compress([]byte("x"), format.CompressionType(99))
	assert.Error(t, err)
}

func TestDecompress_ShortFrame(t *testing.T) {
	_, err := Decompress([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestDecompress_CorruptChecksum(t *testing.T) {
	frame, err := Compress([]byte("payload data"), format.CompressionNone)
	require.NoError(t, err)

	frame[4] ^= 0xff // corrupt the Adler-32 byte

	_, err = Decompress(frame)
	assert.Error(t, err)
}

func TestLZOCompress_Succeeds(t *testing.T) {
	data := bytes.Repeat([]byte("lzo payload "), 200)

	frame, err := Compress(data, format.CompressionLZO)
	require.NoError(t, err)
	assert.Equal(t, byte(format.CompressionLZO), frame[0])
}
