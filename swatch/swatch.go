/*
Package swatch renders a color palette as a grid of bordered boxes for
visual inspection.

The grid is 16 columns wide with one 16 by 16 pixel box per palette
entry and a one pixel black border around every box, outer edge
included. Entries are laid out row-major in palette order, so the sheet
for a full 256-entry palette reads as the 16 by 16 register map.
*/
package swatch

import (
	"image"
	"image/color"
	"image/draw"
)

const (
	boxCols   = 16
	boxSize   = 16
	boxBorder = 1

	// box plus its leading border; one extra border closes the grid
	cell = boxSize + boxBorder
)

// Render draws every entry of p as a filled box in a 16-column grid
// and returns the sheet. The canvas is 16*17+1 pixels wide and
// rows*17+1 tall, where rows is len(p) divided into full rows of 16,
// rounded up. Grid cells past the last entry are left as the black
// background, which also forms the borders.
func Render(p color.Palette) image.Image {
	rows := (len(p) + boxCols - 1) / boxCols

	width := boxCols*cell + boxBorder
	height := rows*cell + boxBorder

	m := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(m, m.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	for i, c := range p {
		xmin := (i%boxCols)*cell + boxBorder
		ymin := (i/boxCols)*cell + boxBorder
		box := image.Rect(xmin, ymin, xmin+boxSize, ymin+boxSize)
		draw.Draw(m, box, image.NewUniform(c), image.Point{}, draw.Src)
	}

	return m
}
