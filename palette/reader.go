package palette

import "io"

// Each register is stored on disk as three bytes, R then G then B.
const bytesPerEntry = 3

// Decode reads a raw .PLT palette fragment from r: a flat sequence of
// 3-byte RGB triples at DAC depth. Channel values are not validated
// against the 0-63 convention. Trailing bytes short of a full triple
// are silently dropped.
func Decode(r io.Reader) ([]Color, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	colors := make([]Color, len(b)/bytesPerEntry)
	for i := range colors {
		colors[i] = Color{b[i*bytesPerEntry], b[i*bytesPerEntry+1], b[i*bytesPerEntry+2]}
	}
	return colors, nil
}
