package spacesim

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/mtauraso/spacesim-tools/palette"
	"github.com/mtauraso/spacesim-tools/r8"
)

const (
	importX = 256
	importY = 256
)

// ImportImage converts a standard 256 by 256 image into simulator
// assets in the current directory: <stem>.PLT holding a custom overlay
// palette at DAC depth and <stem>.R8 indexing into it. Colors are
// median-cut quantized down to the 128 overlay registers and channels
// are quantized to 6 bits, so the conversion is lossy in both color
// count and channel precision.
func (s *SpaceSim) ImportImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not read image file: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	b := src.Bounds()
	if b.Dx() != importX || b.Dy() != importY {
		return errors.New("image must be exactly 256x256")
	}

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, palette.OverlaySize), src)

	pm := image.NewPaletted(image.Rect(0, 0, importX, importY), p)
	draw.Draw(pm, pm.Bounds(), src, b.Min, draw.Src)

	// The overlay is stored at DAC depth, the form a .PLT carries.
	overlay := make([]palette.Color, len(p))
	for i, c := range p {
		cr, cg, cb, _ := c.RGBA()
		overlay[i] = palette.Color{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8)}.Quantize()
	}

	// Re-index the raster against the full assembled table so every
	// byte is a real register number in the overlay region.
	full := image.NewPaletted(pm.Rect, palette.Assemble(overlay).Expand().Palette())
	for y := 0; y < importY; y++ {
		for x := 0; x < importX; x++ {
			full.SetColorIndex(x, y, palette.OverlayOffset+pm.ColorIndexAt(x, y))
		}
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s.logger.Printf("Quantized %s to %d colors\n", path, len(overlay))

	if err := s.writePLT(stem+".PLT", overlay); err != nil {
		return err
	}
	return s.writeR8(stem+".R8", full)
}

func (s *SpaceSim) writePLT(filename string, colors []palette.Color) error {
	s.logger.Printf("Writing out %s\n", filename)

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return palette.Encode(f, colors)
}

func (s *SpaceSim) writeR8(filename string, m *image.Paletted) error {
	s.logger.Printf("Writing out %s\n", filename)

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return r8.Encode(f, m)
}
