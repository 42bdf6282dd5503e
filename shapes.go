package covergen

import "math"

// ShapeKind enumerates the five procedural shape variants.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeStar
	ShapeRect
	ShapePolygon
	ShapeBlob
)

// String returns the shape name for logging.
func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeStar:
		return "star"
	case ShapeRect:
		return "rect"
	case ShapePolygon:
		return "polygon"
	default:
		return "blob"
	}
}

// selectShape maps a flow's deterministic offset and the smoothness
// parameter to a shape kind. The selector arithmetic and the threshold
// ladder are part of the visual contract: selection depends only on
// (offset, smoothness), never on PRNG draw order, so two flows with the
// same offset always get the same shape.
func selectShape(offset int, smoothness float64) ShapeKind {
	selector := math.Mod(float64(offset)*37+smoothness*100, 100)
	switch {
	case selector < 20:
		return ShapeCircle
	case selector < 35:
		return ShapeStar
	case selector < 50:
		return ShapeRect
	case selector < 70:
		return ShapePolygon
	default:
		return ShapeBlob
	}
}

// circleSegments is the polygon resolution used to approximate circles, so
// both canvas backends share a single geometry path.
const circleSegments = 64

// circlePoints approximates a circle of the given radius.
func circlePoints(cx, cy, radius float64) []Point {
	pts := make([]Point, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = Point{X: cx + math.Cos(a)*radius, Y: cy + math.Sin(a)*radius}
	}
	return pts
}

// starPoints builds a star with n outer vertices; inner vertices sit at half
// the outer radius, alternating with the outer ones.
func starPoints(cx, cy, outer float64, n int) []Point {
	inner := outer * 0.5
	pts := make([]Point, 2*n)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + math.Pi*float64(i)/float64(n)
		pts[i] = Point{X: cx + math.Cos(a)*r, Y: cy + math.Sin(a)*r}
	}
	return pts
}

// rectPoints builds a rectangle centered on (cx, cy), rotated by rot
// radians.
func rectPoints(cx, cy, w, h, rot float64) []Point {
	cos, sin := math.Cos(rot), math.Sin(rot)
	hw, hh := w/2, h/2
	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	pts := make([]Point, 4)
	for i, c := range corners {
		pts[i] = Point{
			X: cx + c[0]*cos - c[1]*sin,
			Y: cy + c[0]*sin + c[1]*cos,
		}
	}
	return pts
}

// polygonPoints builds a regular polygon with n sides.
func polygonPoints(cx, cy, radius float64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		pts[i] = Point{X: cx + math.Cos(a)*radius, Y: cy + math.Sin(a)*radius}
	}
	return pts
}

// blobPoints builds an organic blob: a polygon whose per-vertex radius is
// perturbed by the noise field, sampled at angle-derived offsets so adjacent
// vertices stay correlated and the outline remains smooth.
func blobPoints(cx, cy, size float64, n int, noise *NoiseField, noiseScale float64) []Point {
	base := size / 2
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		sample := noise.Sample(
			(cx+math.Cos(a)*size)*noiseScale,
			(cy+math.Sin(a)*size)*noiseScale,
		)
		r := base * (0.7 + sample*0.6)
		pts[i] = Point{X: cx + math.Cos(a)*r, Y: cy + math.Sin(a)*r}
	}
	return pts
}
