package rings

import colorful "github.com/lucasb-eyer/go-colorful"

// Lerp interpolates between two hex colors in RGB space. t outside
// [0, 1] is clamped so segment colors stay inside the gradient even
// when a caller over-sweeps.
func Lerp(startHex, endHex string, t float64) colorful.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	start := mustHex(startHex)
	end := mustHex(endHex)
	return start.BlendRgb(end, t)
}

// mustHex parses a hex color, falling back to black on a malformed
// value rather than failing a render pass.
func mustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
