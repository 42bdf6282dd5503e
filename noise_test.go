package covergen

import (
	"math"
	"testing"
)

func TestNoiseField_Bounded(t *testing.T) {
	n := NewNoiseField(7)
	for y := -5.0; y < 5.0; y += 0.037 {
		for x := -5.0; x < 5.0; x += 0.037 {
			v := n.Sample(x, y)
			if v < 0 || v > 1 {
				t.Fatalf("Sample(%v, %v) = %v, out of [0,1]", x, y, v)
			}
		}
	}
}

// Continuity: shrinking the step must shrink the output delta, including
// across integer lattice boundaries.
func TestNoiseField_Continuous(t *testing.T) {
	n := NewNoiseField(99)

	probes := []struct {
		name string
		x, y float64
	}{
		{"cell interior", 3.4, 7.6},
		{"x lattice boundary", 4.0, 2.5},
		{"y lattice boundary", 1.3, 6.0},
		{"origin", 0.0, 0.0},
	}

	for _, p := range probes {
		t.Run(p.name, func(t *testing.T) {
			prev := math.Inf(1)
			for _, eps := range []float64{0.1, 0.01, 0.001, 0.0001} {
				d := math.Abs(n.Sample(p.x+eps, p.y) - n.Sample(p.x, p.y))
				if d > prev+1e-12 {
					t.Fatalf("delta grew as eps shrank: eps=%v delta=%v prev=%v", eps, d, prev)
				}
				prev = d
			}
			if prev > 0.01 {
				t.Fatalf("delta %v at eps=0.0001, expected near zero", prev)
			}
		})
	}
}

func TestNoiseField_Deterministic(t *testing.T) {
	a := NewNoiseField(1234)
	b := NewNoiseField(1234)
	for i := 0; i < 500; i++ {
		x := float64(i) * 0.173
		y := float64(i) * 0.291
		if av, bv := a.Sample(x, y), b.Sample(x, y); av != bv {
			t.Fatalf("same seed diverged at (%v, %v): %v vs %v", x, y, av, bv)
		}
	}
}

func TestNoiseField_SeedsDiffer(t *testing.T) {
	a := NewNoiseField(1)
	b := NewNoiseField(2)
	diff := 0
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.39
		if a.Sample(x, x*0.7) != b.Sample(x, x*0.7) {
			diff++
		}
	}
	if diff == 0 {
		t.Error("seeds 1 and 2 produced identical fields over 100 samples")
	}
}

func TestNoiseField_NotConstant(t *testing.T) {
	n := NewNoiseField(55)
	first := n.Sample(0.1, 0.1)
	varies := false
	for i := 1; i < 200; i++ {
		if n.Sample(float64(i)*0.13, float64(i)*0.17) != first {
			varies = true
			break
		}
	}
	if !varies {
		t.Error("field is constant over 200 samples")
	}
}
