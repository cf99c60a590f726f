package palette

import "io"

// Encode writes colors to w in .PLT format, one 3-byte RGB triple per
// entry. Values are written as-is; callers authoring files for the
// simulator should quantize to DAC depth first.
func Encode(w io.Writer, colors []Color) error {
	var tmp [bytesPerEntry]byte
	for _, c := range colors {
		tmp[0], tmp[1], tmp[2] = c.R, c.G, c.B
		if _, err := w.Write(tmp[:]); err != nil {
			return err
		}
	}
	return nil
}
