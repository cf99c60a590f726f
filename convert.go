package spacesim

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/mtauraso/spacesim-tools/palette"
	"github.com/mtauraso/spacesim-tools/r8"
	"github.com/mtauraso/spacesim-tools/swatch"
	"golang.org/x/image/bmp"
)

// debugBasename is the fixed stem of the swatch sheets written as a
// side effect of palette assembly in debug mode.
const debugBasename = "SPACESIM_DEBUG"

// ConvertImage reconstructs the .R8 raster at imagePath into a
// viewable BMP in the current directory, named from the source stem
// plus its original extension (VIDEO.R8 becomes VIDEO_R8.BMP).
// palettePath supplies the custom overlay registers; when empty the
// overlay region is left at the alarm fill so missing palettes are
// visible in the output.
func (s *SpaceSim) ConvertImage(imagePath, palettePath string, debug bool) error {
	custom := palettePath
	if custom == "" {
		custom = "<no custom palette>"
	}
	s.logger.Printf("Converting image %s using custom palette %s\n", imagePath, custom)

	t, err := s.buildPalette(palettePath, debug)
	if err != nil {
		return err
	}

	f, err := os.Open(imagePath)
	if err != nil {
		return fmt.Errorf("could not read image file: %w", err)
	}
	defer f.Close()

	m, err := r8.Decode(f, t.Palette())
	if err != nil {
		return err
	}

	out := outputName(imagePath)
	s.logger.Printf("Writing out %s\n", out)

	return writeBMP(out, m)
}

// ConvertPalette renders the .PLT file at path as a pair of swatch
// sheets in the current directory: <stem>_PAL_8.BMP holding the
// display values and <stem>_PAL_6.BMP holding the DAC values in use.
func (s *SpaceSim) ConvertPalette(path string) error {
	t, err := s.buildPalette(path, false)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return s.savePalette(t, base)
}

// buildPalette assembles the full display palette, using the .PLT file
// at path as the custom overlay when path is non-empty. In debug mode
// it also writes both diagnostic swatch sheets under debugBasename.
func (s *SpaceSim) buildPalette(path string, debug bool) (*palette.RGBTable, error) {
	var overlay []palette.Color
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not read palette file: %w", err)
		}
		overlay, err = palette.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("could not read palette file: %w", err)
		}
		s.logger.Printf("Found %d colors in palette %s\n", len(overlay), path)
	}

	t := palette.Assemble(overlay).Expand()

	if debug {
		if err := s.savePalette(t, debugBasename); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// savePalette writes the display sheet and the re-quantized DAC sheet
// for t under basename.
func (s *SpaceSim) savePalette(t *palette.RGBTable, basename string) error {
	if err := s.saveSwatch(t.Palette(), basename+"_PAL_8.BMP"); err != nil {
		return err
	}
	return s.saveSwatch(t.Quantize().Palette(), basename+"_PAL_6.BMP")
}

func (s *SpaceSim) saveSwatch(p color.Palette, filename string) error {
	s.logger.Printf("Writing out palette %s\n", filename)
	return writeBMP(filename, swatch.Render(p))
}

func writeBMP(filename string, m image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return bmp.Encode(f, m)
}

// outputName derives the BMP filename from the source file: stem plus
// its original extension, so the format a raster came from stays
// visible in the output name.
func outputName(path string) string {
	base := filepath.Base(path)
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if ext == "" {
		return stem + ".BMP"
	}
	return stem + "_" + ext + ".BMP"
}
