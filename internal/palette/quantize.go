package palette

// Quantize maps a 24-bit color to its nearest entry in the 256-color
// palette for terminals without truecolor support.
//
// Equal channels use the 24-step greyscale ramp (232-255), with pure black
// and white clamped to the cube corners 16 and 231. Everything else maps
// into the 6x6x6 color cube starting at index 16.
func Quantize(r, g, b uint8) uint8 {
	if r == g && g == b {
		switch {
		case r <= 7:
			return 16
		case r >= 249:
			return 231
		}
		gray := (int(r) - 8) / 10
		if gray > 23 {
			gray = 23
		}
		return uint8(232 + gray)
	}
	return uint8(16 + 36*cubeIndex(r) + 6*cubeIndex(g) + cubeIndex(b))
}

// cubeIndex rounds a channel onto the six cube steps: round(v/255*5).
func cubeIndex(v uint8) int {
	return (int(v)*10 + 255) / 510
}
