// Copyright (C) 2026. See AUTHORS.

// Package icg implements an inversive congruential generator, a
// pseudorandom number generator over the prime field Z/pZ driven by the
// recurrence
//
//	next = (a * inverse(cur) + b) mod p
//
// where p is prime and a, b, seed are less than p. On top of the field
// stream it provides uniform samplers over integer and real ranges and
// normally distributed samples via the polar Box-Muller method.
package icg

// Generator is a single inversive congruential generator. It is not safe
// for concurrent use.
//
// The maximum supported modulus is 1<<32 - 1: parameters are 32 bits wide
// and the one product that can exceed 32 bits is carried out in 64.
type Generator struct {
	p, a, b uint32
	seed    uint32
	cur     uint32
	valid   bool

	// the polar Box-Muller step produces samples in pairs. the second one
	// waits here for the next NormFloat64 call.
	spare     float64
	haveSpare bool
}

// validParams reports whether (p, a, b, seed) form a usable generator:
// p prime and greater than 3, everything else strictly below p.
func validParams(p, a, b, seed uint32) bool {
	return p > 3 && isPrime(p) && a < p && b < p && seed < p
}

// New constructs a Generator with modulus p, multiplier a, addend b and
// starting state seed. Validity is checked once here; an invalid
// generator returns 0 from every sampler until repaired with
// Reparametrize.
func New(p, a, b, seed uint32) *Generator {
	return &Generator{
		p:     p,
		a:     a,
		b:     b,
		seed:  seed,
		cur:   seed,
		valid: validParams(p, a, b, seed),
	}
}

// Uint32 advances the recurrence and returns the next field element in
// [0, p). On an invalid generator it returns 0 without touching state.
func (g *Generator) Uint32() uint32 {
	if !g.valid {
		return 0
	}

	// 0 has no inverse in Z/pZ. the recurrence is extended over it by
	// evaluating a*inverse(0) as 0, so the successor of 0 is always b.
	if g.cur == 0 {
		g.cur = g.b
		return g.cur
	}

	// a and inverse(cur) are both below p <= 1<<32 - 1, so the product
	// needs up to 64 bits before the reduction.
	inv := uint64(inverse(g.cur, g.p))
	g.cur = uint32((uint64(g.a)*inv + uint64(g.b)) % uint64(g.p))

	return g.cur
}

// Reparametrize replaces all four parameters, restarts the sequence at
// the new seed, drops any cached Box-Muller sample, and reports whether
// the new parameters are valid.
func (g *Generator) Reparametrize(p, a, b, seed uint32) bool {
	g.p, g.a, g.b = p, a, b
	g.seed = seed
	g.cur = seed
	g.haveSpare = false
	g.valid = validParams(p, a, b, seed)
	return g.valid
}

// Reseed restarts the sequence at seed under the current (p, a, b),
// drops any cached Box-Muller sample, and reports whether the generator
// is valid with the new seed.
func (g *Generator) Reseed(seed uint32) bool {
	g.seed = seed
	g.cur = seed
	g.haveSpare = false
	g.valid = validParams(g.p, g.a, g.b, seed)
	return g.valid
}

// Valid reports whether the generator's parameters passed validation. An
// invalid generator returns 0 from every sampler.
func (g *Generator) Valid() bool { return g.valid }

// P returns the modulus.
func (g *Generator) P() uint32 { return g.p }

// A returns the multiplier.
func (g *Generator) A() uint32 { return g.a }

// B returns the addend.
func (g *Generator) B() uint32 { return g.b }
