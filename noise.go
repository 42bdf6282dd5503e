package covergen

import "math"

// NoiseField is a seeded 2D Perlin-style noise function. Construction
// shuffles a 256-entry permutation table with a PRNG seeded identically to
// the field, so two fields with the same seed are indistinguishable. The
// table is immutable after construction and safe for concurrent sampling.
type NoiseField struct {
	perm [512]int
}

// NewNoiseField creates a noise field for the given seed.
func NewNoiseField(seed uint32) *NoiseField {
	n := &NoiseField{}

	var table [256]int
	for i := range table {
		table[i] = i
	}

	// Fisher-Yates driven by the seeded LCG.
	rng := NewPRNG(seed)
	for i := len(table) - 1; i > 0; i-- {
		j := int(rng.Next() * float64(i+1))
		table[i], table[j] = table[j], table[i]
	}

	// Duplicate to 512 so lookups never need a modulo.
	for i := 0; i < 512; i++ {
		n.perm[i] = table[i&255]
	}
	return n
}

// Sample returns the noise value at (x, y), in [0, 1]. The field is
// continuous: nearby inputs yield nearby outputs, including across integer
// lattice boundaries.
func (n *NoiseField) Sample(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx) & 255
	yi := int(fy) & 255
	xf := x - fx
	yf := y - fy

	u := fade(xf)
	v := fade(yf)

	aa := n.perm[n.perm[xi]+yi]
	ab := n.perm[n.perm[xi]+yi+1]
	ba := n.perm[n.perm[xi+1]+yi]
	bb := n.perm[n.perm[xi+1]+yi+1]

	x1 := lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u)
	x2 := lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u)
	value := lerp(x1, x2, v)

	return clamp01((value + 1) / 2)
}

// fade is the quintic smoothing curve t^3*(t*(6t-15)+10).
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// grad selects one of four gradient directions from the low bits of the
// permutation hash and projects (x, y) onto it.
func grad(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}
