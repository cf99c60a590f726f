/*
Package r8 implements a decoder and encoder for the space simulator's
.R8 image format.

The format is a headerless 256 by 256 pixel raster stored row-major at
one byte per pixel, 65536 bytes exactly. Each byte is a palette
register number; the file carries no color information of its own and
must be paired with a full 256-entry palette to be displayed.
*/
package r8

const (
	pixelX    = 256
	pixelY    = 256
	numPixels = pixelX * pixelY
	registers = 256

	// ImageBytes is the exact byte length of an .R8 file: one register
	// index per pixel.
	ImageBytes = numPixels
)
