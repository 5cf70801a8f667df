// Copyright (C) 2026. See AUTHORS.

package icg

import "math"

// rejected pairs with a squared radius this small would blow up the
// logarithm below.
const polarEps = 0.0001

// NormFloat64 returns a standard normally distributed sample produced by
// the polar Box-Muller method. Each accepted pair of uniform draws yields
// two samples; the second is cached and returned by the next call.
// Returns 0 on an invalid generator.
func (g *Generator) NormFloat64() float64 {
	if !g.valid {
		return 0
	}

	if g.haveSpare {
		g.haveSpare = false
		return g.spare
	}

	var u1, u2, q float64
	for {
		u1 = g.Interval(-1, 1)
		u2 = g.Interval(-1, 1)
		q = u1*u1 + u2*u2
		if q > polarEps && q <= 1 {
			break
		}
	}
	r := math.Sqrt(-2 * math.Log(q) / q)

	g.spare = r * u2
	g.haveSpare = true
	return r * u1
}

// Normal returns a sample from the normal distribution with mean mu and
// variance variance. Note the second parameter is the variance, not the
// standard deviation; it enters the sample through its square root.
func (g *Generator) Normal(mu, variance float64) float64 {
	return math.Sqrt(variance)*g.NormFloat64() + mu
}
