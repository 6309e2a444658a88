package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompressionType_Valid(t *testing.T) {
	assert.True(t, CompressionNone.Valid())
	assert.True(t, CompressionLZO.Valid())
	assert.True(t, CompressionZlib.Valid())
	assert.False(t, CompressionType(99).Valid())
}

func TestCompressionType_String(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "lzo", CompressionLZO.String())
	assert.Equal(t, "zlib", CompressionZlib.String())
	assert.Equal(t, "unknown", CompressionType(99).String())
}

func TestParseVersion(t *testing.T) {
	v, ok := ParseVersion("1.2")
	assert.True(t, ok)
	assert.Equal(t, Version12, v)

	v, ok = ParseVersion("2.0")
	assert.True(t, ok)
	assert.Equal(t, Version20, v)

	_, ok = ParseVersion("3.0")
	assert.False(t, ok)
}

func TestVersion_String(t *testing.T) {
	assert.Equal(t, "1.2", Version12.String())
	assert.Equal(t, "2.0", Version20.String())
}

func TestVersion_Widths(t *testing.T) {
	assert.Equal(t, 4, Version12.WidthLong())
	assert.Equal(t, 8, Version20.WidthLong())
	assert.Equal(t, 1, Version12.WidthShort())
	assert.Equal(t, 2, Version20.WidthShort())
}
