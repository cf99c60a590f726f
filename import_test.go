package spacesim

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, filename string, m image.Image) {
	t.Helper()
	f, err := os.Create(filename)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))
}

func TestImportImage(t *testing.T) {
	dir := chtmp(t)

	// A two-color image quantizes without loss of count.
	src := image.NewRGBA(image.Rect(0, 0, 256, 256))
	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			c := color.RGBA{0x00, 0xff, 0x00, 0xff}
			if x >= 128 {
				c = color.RGBA{0xff, 0x00, 0x00, 0xff}
			}
			src.Set(x, y, c)
		}
	}
	writePNG(t, filepath.Join(dir, "title.png"), src)

	s := New(nil, discardLogger())
	require.NoError(t, s.ImportImage("title.png"))

	// The palette fragment holds the quantized colors at DAC depth.
	plt, err := os.ReadFile("title.PLT")
	require.NoError(t, err)
	require.LessOrEqual(t, len(plt), 128*3)
	assert.Zero(t, len(plt)%3)

	// Every channel byte fits the 6-bit range after quantization.
	for i, b := range plt {
		assert.LessOrEqual(t, b, uint8(0x3f), "byte %d", i)
	}

	// The raster is the fixed size and only references overlay
	// registers.
	raw, err := os.ReadFile("title.R8")
	require.NoError(t, err)
	require.Len(t, raw, 65536)
	for i, b := range raw {
		require.GreaterOrEqual(t, b, uint8(128), "byte %d", i)
	}
}

func TestImportImageWrongSize(t *testing.T) {
	dir := chtmp(t)

	writePNG(t, filepath.Join(dir, "small.png"), image.NewRGBA(image.Rect(0, 0, 10, 10)))

	s := New(nil, discardLogger())
	err := s.ImportImage("small.png")
	assert.EqualError(t, err, "image must be exactly 256x256")
}

func TestImportImageMissingFile(t *testing.T) {
	chtmp(t)

	s := New(nil, discardLogger())
	err := s.ImportImage("NOPE.PNG")
	assert.ErrorContains(t, err, "could not read image file")
}
