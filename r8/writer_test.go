package r8_test

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtauraso/spacesim-tools/r8"
)

func TestEncode(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, 256, 256), greyPalette())
	m.SetColorIndex(0, 0, 128)
	m.SetColorIndex(255, 255, 200)

	b := new(bytes.Buffer)
	require.NoError(t, r8.Encode(b, m))

	raw := b.Bytes()
	require.Len(t, raw, r8.ImageBytes)
	assert.Equal(t, byte(128), raw[0])
	assert.Equal(t, byte(200), raw[r8.ImageBytes-1])
	assert.Equal(t, byte(0), raw[1])
}

func TestEncodeWrongSize(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, 64, 40), greyPalette())

	err := r8.Encode(new(bytes.Buffer), m)
	assert.EqualError(t, err, "r8: image is wrong size")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := greyPalette()
	m := image.NewPaletted(image.Rect(0, 0, 256, 256), p)
	for i := range m.Pix {
		m.Pix[i] = uint8(i * 7)
	}

	b := new(bytes.Buffer)
	require.NoError(t, r8.Encode(b, m))

	got, err := r8.Decode(b, p)
	require.NoError(t, err)

	pm, ok := got.(*image.Paletted)
	require.True(t, ok)
	assert.Equal(t, m.Pix, pm.Pix)
}

func TestEncodeOffsetBounds(t *testing.T) {
	// An image whose bounds do not start at the origin still encodes
	// from its own top-left corner.
	m := image.NewPaletted(image.Rect(10, 10, 266, 266), greyPalette())
	m.SetColorIndex(10, 10, 42)

	b := new(bytes.Buffer)
	require.NoError(t, r8.Encode(b, m))
	assert.Equal(t, byte(42), b.Bytes()[0])
}
