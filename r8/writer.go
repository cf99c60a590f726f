package r8

import (
	"errors"
	"image"
	"io"
)

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(m *image.Paletted) error {
	b := m.Bounds()

	var row [pixelX]byte
	for y := 0; y < pixelY; y++ {
		for x := 0; x < pixelX; x++ {
			row[x] = m.ColorIndexAt(b.Min.X+x, b.Min.Y+y)
		}
		if _, err := e.w.Write(row[:]); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes the register indices of m to w in .R8 format. m must
// be exactly 256 by 256 pixels; the palette itself is not written and
// must be carried separately.
func Encode(w io.Writer, m *image.Paletted) error {
	b := m.Bounds()
	if b.Dx() != pixelX || b.Dy() != pixelY {
		return errors.New("r8: image is wrong size")
	}

	e := encoder{w: w}

	return e.encode(m)
}
