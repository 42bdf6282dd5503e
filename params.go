package covergen

import "math"

// Default stroke width bounds used when no style overrides are supplied.
const (
	DefaultMinStrokeWidth = 0.5
	DefaultMaxStrokeWidth = 1.5
)

// StyleOverrides carries the externally supplied style knobs. Zero values
// mean "use the default".
type StyleOverrides struct {
	MinStrokeWidth float64
	MaxStrokeWidth float64
}

// VisualParameters is the compact parameter vector that fully determines a
// rendered composition. It is a pure function of ContentMetrics plus the
// style overrides.
type VisualParameters struct {
	Seed             uint32  // initializes the PRNG and the noise field
	Density          float64 // [0, 1], drives the number of flows per layer
	Complexity       float64 // [0, 1], drives shape size and stroke width
	Smoothness       float64 // [0, 1], drives shape selection and noise scale
	LayerCount       int     // [3, 10]
	ShapeVertexCount int     // [3, 20]
	PaletteIndex     int     // [0, 9]
	MinStrokeWidth   float64
	MaxStrokeWidth   float64
}

// MapToVisualParameters maps content metrics to the visual parameter vector.
// Pure arithmetic, total over all inputs.
func MapToVisualParameters(m ContentMetrics, style StyleOverrides) VisualParameters {
	minStroke := style.MinStrokeWidth
	if minStroke == 0 {
		minStroke = DefaultMinStrokeWidth
	}
	maxStroke := style.MaxStrokeWidth
	if maxStroke == 0 {
		maxStroke = DefaultMaxStrokeWidth
	}

	seed := math.Floor(math.Abs(
		float64(m.WordCount)*137 + float64(m.CharacterCount)*31 + m.AvgWordLength*17))

	layers := m.ReadingTimeMinutes
	if layers > 10 {
		layers = 10
	}
	if layers < 3 {
		layers = 3
	}

	return VisualParameters{
		Seed:             uint32(seed),
		Density:          math.Min(float64(m.WordCount)/1000, 1),
		Complexity:       math.Min(float64(m.CharacterCount)/5000, 1),
		Smoothness:       math.Min(m.AvgWordLength/10, 1),
		LayerCount:       layers,
		ShapeVertexCount: clampInt(m.ParagraphCount, 3, 20),
		PaletteIndex:     int(m.ContentHash % 10),
		MinStrokeWidth:   minStroke,
		MaxStrokeWidth:   maxStroke,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
