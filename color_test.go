package covergen

import (
	"image/color"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"6-digit red", "#ff0000", RGBA{R: 1, A: 1}},
		{"6-digit white", "#FFFFFF", RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"3-digit shorthand", "#fff", RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"without hash", "00ff00", RGBA{G: 1, A: 1}},
		{"mixed case", "#fF00Ff", RGBA{R: 1, B: 1, A: 1}},
		{"invalid length falls back to black", "#12345", RGBA{A: 1}},
		{"empty falls back to black", "", RGBA{A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); got != tt.want {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	a := RGBA{R: 0, G: 0, B: 0, A: 1}
	b := RGBA{R: 1, G: 1, B: 1, A: 1}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %+v, want %+v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if mid.R != 0.5 || mid.G != 0.5 || mid.B != 0.5 {
		t.Errorf("Lerp(0.5) = %+v, want 0.5 channels", mid)
	}
}

func TestRGBA_Color(t *testing.T) {
	c := Hex("#336699").Color()
	nrgba, ok := c.(color.NRGBA)
	if !ok {
		t.Fatalf("Color() returned %T, want color.NRGBA", c)
	}
	want := color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}
	if nrgba != want {
		t.Errorf("Color() = %+v, want %+v", nrgba, want)
	}
}
