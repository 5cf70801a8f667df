// Copyright (C) 2026. See AUTHORS.

package icg

// Float64 returns the next sample scaled into [0, 1). Returns 0 on an
// invalid generator.
func (g *Generator) Float64() float64 {
	if !g.valid {
		return 0
	}
	return float64(g.Uint32()) / float64(g.p)
}

// Uint32n returns a value uniformly in [0, n). The bias against a
// perfectly uniform distribution is bounded by n/p; no rejection is
// applied. Uint32n(0) returns 0, as does any call on an invalid
// generator.
func (g *Generator) Uint32n(n uint32) uint32 {
	return uint32(g.Float64() * float64(n))
}

// Interval returns a value uniformly in [min(a, b), max(a, b)). The
// endpoints may be given in either order. Interval(x, x) returns x
// without consuming a sample. Returns 0 on an invalid generator, even
// when 0 lies outside the interval.
func (g *Generator) Interval(a, b float64) float64 {
	if !g.valid {
		return 0
	}
	if a == b {
		return a
	}
	if b < a {
		a, b = b, a
	}
	return float64(g.Uint32())/float64(g.p)*(b-a) + a
}
