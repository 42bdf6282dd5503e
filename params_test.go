package covergen

import "testing"

func TestMapToVisualParameters_SeedLiteral(t *testing.T) {
	// |6*137 + 28*31 + 3.5*17| = 1749
	m := ContentMetrics{WordCount: 6, CharacterCount: 28, AvgWordLength: 3.5}
	p := MapToVisualParameters(m, StyleOverrides{})
	if p.Seed != 1749 {
		t.Errorf("Seed = %d, want 1749", p.Seed)
	}
}

func TestMapToVisualParameters_VertexClamp(t *testing.T) {
	tests := []struct {
		paragraphs int
		want       int
	}{
		{0, 3},
		{1, 3},
		{3, 3},
		{20, 20},
		{50, 20},
	}
	for _, tt := range tests {
		m := ContentMetrics{ParagraphCount: tt.paragraphs}
		if got := MapToVisualParameters(m, StyleOverrides{}).ShapeVertexCount; got != tt.want {
			t.Errorf("paragraphs %d: ShapeVertexCount = %d, want %d", tt.paragraphs, got, tt.want)
		}
	}
}

func TestMapToVisualParameters_Ranges(t *testing.T) {
	tests := []struct {
		name string
		m    ContentMetrics
	}{
		{"zero", ContentMetrics{}},
		{"small", ContentMetrics{WordCount: 50, CharacterCount: 300, AvgWordLength: 4.2, ReadingTimeMinutes: 1, ParagraphCount: 2, ContentHash: 12345}},
		{"large", ContentMetrics{WordCount: 50000, CharacterCount: 400000, AvgWordLength: 99, ReadingTimeMinutes: 250, ParagraphCount: 900, ContentHash: 4294967295}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MapToVisualParameters(tt.m, StyleOverrides{})
			if p.Density < 0 || p.Density > 1 {
				t.Errorf("Density %v out of [0,1]", p.Density)
			}
			if p.Complexity < 0 || p.Complexity > 1 {
				t.Errorf("Complexity %v out of [0,1]", p.Complexity)
			}
			if p.Smoothness < 0 || p.Smoothness > 1 {
				t.Errorf("Smoothness %v out of [0,1]", p.Smoothness)
			}
			if p.LayerCount < 3 || p.LayerCount > 10 {
				t.Errorf("LayerCount %d out of [3,10]", p.LayerCount)
			}
			if p.ShapeVertexCount < 3 || p.ShapeVertexCount > 20 {
				t.Errorf("ShapeVertexCount %d out of [3,20]", p.ShapeVertexCount)
			}
			if p.PaletteIndex < 0 || p.PaletteIndex > 9 {
				t.Errorf("PaletteIndex %d out of [0,9]", p.PaletteIndex)
			}
		})
	}
}

func TestMapToVisualParameters_PaletteIndexBounded(t *testing.T) {
	hashes := []uint32{0, 1, 9, 10, 11, 4294967295, 92862707, 2147483648}
	for _, h := range hashes {
		p := MapToVisualParameters(ContentMetrics{ContentHash: h}, StyleOverrides{})
		if p.PaletteIndex != int(h%10) {
			t.Errorf("hash %d: PaletteIndex = %d, want %d", h, p.PaletteIndex, h%10)
		}
	}
}

func TestMapToVisualParameters_StrokeDefaults(t *testing.T) {
	p := MapToVisualParameters(ContentMetrics{}, StyleOverrides{})
	if p.MinStrokeWidth != DefaultMinStrokeWidth || p.MaxStrokeWidth != DefaultMaxStrokeWidth {
		t.Errorf("defaults = (%v, %v), want (%v, %v)",
			p.MinStrokeWidth, p.MaxStrokeWidth, DefaultMinStrokeWidth, DefaultMaxStrokeWidth)
	}

	p = MapToVisualParameters(ContentMetrics{}, StyleOverrides{MinStrokeWidth: 2, MaxStrokeWidth: 8})
	if p.MinStrokeWidth != 2 || p.MaxStrokeWidth != 8 {
		t.Errorf("overrides = (%v, %v), want (2, 8)", p.MinStrokeWidth, p.MaxStrokeWidth)
	}
}

func TestMapToVisualParameters_Pure(t *testing.T) {
	m := Analyze("Some representative article body with a few words in it.")
	a := MapToVisualParameters(m, StyleOverrides{MinStrokeWidth: 1, MaxStrokeWidth: 3})
	b := MapToVisualParameters(m, StyleOverrides{MinStrokeWidth: 1, MaxStrokeWidth: 3})
	if a != b {
		t.Errorf("mapping not pure: %+v vs %+v", a, b)
	}
}
