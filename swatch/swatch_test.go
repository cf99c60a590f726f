package swatch_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mtauraso/spacesim-tools/swatch"
)

var black = color.RGBA{A: 0xff}

func testPalette(n int) color.Palette {
	p := make(color.Palette, n)
	for i := range p {
		p[i] = color.RGBA{R: uint8(i + 1), G: 0x80, B: uint8(i), A: 0xff}
	}
	return p
}

func TestRenderFullPalette(t *testing.T) {
	m := swatch.Render(testPalette(256))

	b := m.Bounds()
	assert.Equal(t, 16*17+1, b.Dx())
	assert.Equal(t, 16*17+1, b.Dy())
}

func TestRenderPartialRow(t *testing.T) {
	p := testPalette(17)
	m := swatch.Render(p)

	b := m.Bounds()
	assert.Equal(t, 273, b.Dx())
	assert.Equal(t, 2*17+1, b.Dy())

	// Cell 16 sits at row 1, column 0 and is painted.
	assert.Equal(t, p[16], m.At(1, 18))
	// Cell 17 has no palette entry and stays background.
	assert.Equal(t, black, m.At(18, 18))
}

func TestRenderGeometry(t *testing.T) {
	p := testPalette(32)
	m := swatch.Render(p)

	// Outer border.
	assert.Equal(t, black, m.At(0, 0))
	assert.Equal(t, black, m.At(272, 0))
	assert.Equal(t, black, m.At(0, 34))

	// Cell 0 spans (1,1) to (16,16) inclusive.
	assert.Equal(t, p[0], m.At(1, 1))
	assert.Equal(t, p[0], m.At(16, 16))
	// The gap between cells 0 and 1 is border.
	assert.Equal(t, black, m.At(17, 1))
	// Cell 1 starts at (18, 1).
	assert.Equal(t, p[1], m.At(18, 1))
	// Cell 16 (second row) starts at (1, 18).
	assert.Equal(t, p[16], m.At(1, 18))
}
