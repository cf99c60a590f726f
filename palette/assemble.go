package palette

// alarmColor fills the overlay registers when no custom palette is
// supplied. Bright green makes the unassigned registers obvious in the
// rendered output instead of failing the conversion.
var alarmColor = Color{G: 0xff}

// Overlay writes src over dst starting at offset, clipped to dst's
// bounds. Entries outside the written span are left untouched. This is
// the single layering primitive used for every step of Assemble.
func Overlay(dst, src []Color, offset int) {
	if offset < 0 || offset > len(dst) {
		return
	}
	copy(dst[offset:], src)
}

// Assemble layers a full register table the way the simulator builds
// its DAC: every register zeroed, the base palette at register 0, the
// simulator dump at register 32, and overlay across the top 128
// registers. A nil overlay selects the alarm fill; a non-nil overlay
// is written as far as it reaches, clipped at the end of the table.
// The result is at DAC depth; call Expand for the display form.
func Assemble(overlay []Color) *Table {
	var t Table
	Overlay(t[:], basePalette, baseOffset)
	Overlay(t[:], dumpPalette, dumpOffset)
	if overlay == nil {
		overlay = alarmFill()
	}
	Overlay(t[:], overlay, OverlayOffset)
	return &t
}

func alarmFill() []Color {
	fill := make([]Color, OverlaySize)
	for i := range fill {
		fill[i] = alarmColor
	}
	return fill
}
