package covergen

// PRNG is a 32-bit linear congruential generator. For a fixed seed the
// sequence of Next calls is fully reproducible across platforms: the state
// update uses unsigned 32-bit wraparound arithmetic only.
//
// A PRNG instance is not safe for concurrent use; construct one per
// generation request.
type PRNG struct {
	state uint32
}

// NewPRNG creates a generator with the given seed.
func NewPRNG(seed uint32) *PRNG {
	return &PRNG{state: seed}
}

// Next advances the generator and returns a uniform value in [0, 1).
func (p *PRNG) Next() float64 {
	p.state = p.state*1664525 + 1013904223
	return float64(p.state) / (1 << 32)
}

// State returns the current internal state. Useful for pinning golden
// sequences in tests.
func (p *PRNG) State() uint32 {
	return p.state
}
