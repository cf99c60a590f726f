/*
Package palette implements the 256-register VGA DAC color table paired
with the space simulator's graphics assets.

A register holds three channel values that are significant to 6 bits
(0-63) on the original hardware. Registers 0-15 are the VGA
compatibility colors and keep their DAC values even when the rest of
the table is expanded for display on modern 8-bit-per-channel hardware.
A full table is assembled by layering a fixed 32-register base palette,
a 96-register dump captured from the running simulator, and a
128-register per-image overlay.
*/
package palette

import "image/color"

const (
	// Size is the number of registers in a full DAC table.
	Size = 256

	// Registers below this index are the VGA compatibility colors and
	// are never converted between DAC and display depth.
	compatColors = 16

	baseOffset = 0
	dumpOffset = 32

	// OverlayOffset is the first register of the per-image custom
	// palette; OverlaySize registers sit above it.
	OverlayOffset = 128
	OverlaySize   = Size - OverlayOffset
)

// Color is one palette register, three channels, no alpha. Whether the
// channels hold DAC (6-bit) or display (8-bit) values is a property of
// the containing table type.
type Color struct {
	R, G, B uint8
}

// Expand widens a 6-bit channel value to 8 bits by shifting left twice
// and replicating the top two bits of the 6-bit value into the low
// bits:
//
//	0x00 -> 0x00
//	0x0e -> 0x38
//	0x0f -> 0x3c
//	0x10 -> 0x41
//	0x11 -> 0x45
//	0x3f -> 0xff
//
// Both endpoints map exactly and the ramp is monotonic in between.
// Values above 0x3f are not masked; their high bits wrap through the
// shift, matching the original converter.
func Expand(v uint8) uint8 {
	return v<<2 | v&0x30>>4
}

// Quantize narrows an 8-bit channel value to 6 bits by discarding the
// low two bits. It inverts Expand exactly for any value Expand
// produced and is many-to-one otherwise.
func Quantize(v uint8) uint8 {
	return v >> 2
}

// Expand converts all three channels from DAC to display depth.
func (c Color) Expand() Color {
	return Color{Expand(c.R), Expand(c.G), Expand(c.B)}
}

// Quantize converts all three channels from display to DAC depth.
func (c Color) Quantize() Color {
	return Color{Quantize(c.R), Quantize(c.G), Quantize(c.B)}
}

// Table is a full register table holding DAC channel values.
type Table [Size]Color

// RGBTable is a full register table holding display channel values,
// except for the compatibility registers which always carry their
// original DAC bytes.
type RGBTable [Size]Color

// Expand converts the table to display depth. Registers from 16 up are
// expanded per channel; the compatibility registers pass through
// untouched.
func (t *Table) Expand() *RGBTable {
	var out RGBTable
	copy(out[:], t[:compatColors])
	for i := compatColors; i < Size; i++ {
		out[i] = t[i].Expand()
	}
	return &out
}

// Quantize converts the table back to DAC depth, the view of the
// values as they would sit in the DAC registers. Compatibility
// registers pass through untouched.
func (t *RGBTable) Quantize() *Table {
	var out Table
	copy(out[:], t[:compatColors])
	for i := compatColors; i < Size; i++ {
		out[i] = t[i].Quantize()
	}
	return &out
}

// Palette returns the table as a stdlib color palette, channel bytes
// taken as-is with opaque alpha.
func (t *RGBTable) Palette() color.Palette {
	return toPalette(t[:])
}

// Palette returns the raw DAC values as a stdlib color palette. The
// result is intentionally dark; it is used for the diagnostic DAC
// swatch sheet, not for display.
func (t *Table) Palette() color.Palette {
	return toPalette(t[:])
}

func toPalette(colors []Color) color.Palette {
	p := make(color.Palette, len(colors))
	for i, c := range colors {
		p[i] = color.RGBA{c.R, c.G, c.B, 0xff}
	}
	return p
}
