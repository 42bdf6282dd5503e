package covergen

import (
	"image/color"
	"strconv"
)

// RGBA represents a color with float64 components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts to a color.Color.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// RGBA implements the color.Color interface.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return uint32(clamp01(c.R) * 65535), uint32(clamp01(c.G) * 65535),
		uint32(clamp01(c.B) * 65535), uint32(clamp01(c.A) * 65535)
}

// RGB creates an opaque color from red, green, blue in [0, 1].
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Hex creates a color from a hex string.
// Supports "#RGB", "#RRGGBB" and the same forms without "#".
// Invalid input yields opaque black.
func Hex(hex string) RGBA {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r *= 17
		g *= 17
		b *= 17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	default:
		return RGBA{A: 1}
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		*val = 0
		return
	}
	*val = uint32(v)
}

// Lerp linearly interpolates between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
