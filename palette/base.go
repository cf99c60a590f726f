package palette

// basePalette is the first 32 registers of the default VGA DAC
// palette: the 16 CGA compatibility colors followed by a 16-step
// greyscale ramp. DAC depth.
var basePalette = rgb(
	// Compatibility
	0x000000, 0x00002a, 0x002a00, 0x002a2a, 0x2a0000, 0x2a002a, 0x2a1500, 0x2a2a2a,
	0x151515, 0x15153f, 0x153f15, 0x153f3f, 0x3f1515, 0x3f153f, 0x3f3f15, 0x3f3f3f,

	// Greyscale
	0x000000, 0x050505, 0x080808, 0x0b0b0b, 0x0e0e0e, 0x111111, 0x141414, 0x181818,
	0x1c1c1c, 0x202020, 0x242424, 0x282828, 0x2d2d2d, 0x323232, 0x383838, 0x3f3f3f,
)

// dumpPalette is registers 32-127 of the DAC as dumped from the
// simulator in its starting flight situation: six 16-step ramps. DAC
// depth.
var dumpPalette = rgb(
	// Reds
	0x030101, 0x070202, 0x0b0303, 0x0f0404, 0x130505, 0x170606, 0x1b0707, 0x1f0808,
	0x230909, 0x270a0a, 0x2b0b0b, 0x2f0c0c, 0x330d0d, 0x370e0e, 0x3b0f0f, 0x3f1010,

	// Oranges
	0x030200, 0x070400, 0x0b0600, 0x0f0800, 0x130a00, 0x170c00, 0x1b0e00, 0x1f1000,
	0x231200, 0x271400, 0x2b1600, 0x2f1800, 0x331a00, 0x371c00, 0x3b1e00, 0x3f2000,

	// Yellows
	0x030200, 0x070600, 0x0b0a00, 0x0f0e00, 0x131200, 0x171600, 0x1b1a00, 0x1f1e00,
	0x232200, 0x272600, 0x2b2a00, 0x2f2e00, 0x333200, 0x373600, 0x3b3a00, 0x3f3e00,

	// Greens
	0x000300, 0x010701, 0x020b02, 0x030f03, 0x041304, 0x051705, 0x061b06, 0x071f07,
	0x082308, 0x092709, 0x0a2b0a, 0x0b2f0b, 0x0c330c, 0x0d370d, 0x0e3b0e, 0x0f3f0f,

	// Light blues
	0x010203, 0x030507, 0x05080b, 0x070b0f, 0x090e13, 0x0b1117, 0x0d141b, 0x0f171f,
	0x111a23, 0x131d27, 0x15202b, 0x17232f, 0x192633, 0x1b2937, 0x1d2c3b, 0x1f2f3f,

	// Dark blues
	0x000003, 0x000007, 0x00000b, 0x00000f, 0x000013, 0x000017, 0x00001b, 0x00001f,
	0x000023, 0x000027, 0x00002b, 0x00002f, 0x000033, 0x000037, 0x00003b, 0x00003f,
)

func rgb(values ...uint32) []Color {
	colors := make([]Color, len(values))
	for i, v := range values {
		colors[i] = Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}
	}
	return colors
}
