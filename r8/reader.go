package r8

import (
	"errors"
	"image"
	"image/color"
	"io"
)

var (
	errNotEnough  = errors.New("r8: not enough image data, need exactly 65536 bytes")
	errTooMuch    = errors.New("r8: too much image data, need exactly 65536 bytes")
	errBadPalette = errors.New("r8: palette must hold exactly 256 colors")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	image *image.Paletted

	tmp [ImageBytes]byte
}

func (d *decoder) decode(r io.Reader, p color.Palette) error {
	d.r = r

	if err := readFull(d.r, d.tmp[:]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	if n, err := r.Read(d.tmp[:1]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return err
		}
		return errTooMuch
	}

	if p == nil {
		return nil
	}

	d.image = image.NewPaletted(image.Rect(0, 0, pixelX, pixelY), p)

	for y := 0; y < pixelY; y++ {
		for x := 0; x < pixelX; x++ {
			// Every byte value is a valid register; a 256-entry
			// palette means no bounds remapping is needed.
			d.image.SetColorIndex(x, y, d.tmp[y*pixelX+x])
		}
	}

	return nil
}

// Decode reads a .R8 raster from r and returns it as a paletted image
// over p. p must hold a full 256 colors so that every register index
// is representable. The stream must be exactly 65536 bytes; anything
// shorter or longer is a structurally wrong file and an error.
func Decode(r io.Reader, p color.Palette) (image.Image, error) {
	if len(p) != registers {
		return nil, errBadPalette
	}
	var d decoder
	if err := d.decode(r, p); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a .R8 raster.
// The format carries no palette, so the color model is reported as
// nil; the dimensions are fixed but the stream length is still
// validated.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, nil); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		Width:  pixelX,
		Height: pixelY,
	}, nil
}
