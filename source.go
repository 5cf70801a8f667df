// Copyright (C) 2026. See AUTHORS.

package icg

// Source adapts a Generator to the shape of math/rand.Source64 and
// math/rand/v2.Source so the field stream can drive the standard
// library's Rand or any consumer of a 64-bit source. Each output packs
// two consecutive field samples into one word, so it is uniform over
// the full range only to the extent p approaches 1<<32; the shortfall
// is not corrected.
type Source struct {
	g *Generator
}

// NewSource returns a Source drawing from g.
func NewSource(g *Generator) *Source {
	return &Source{g: g}
}

// Uint64 returns the next 64 bits of the stream.
func (s *Source) Uint64() (ret uint64) {
	ret = uint64(s.g.Uint32()) << 32
	ret |= uint64(s.g.Uint32())
	return ret
}

// Int63 returns a positive 63 bit integer in an int64.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed reseeds the underlying generator with seed reduced mod p.
func (s *Source) Seed(seed int64) {
	if s.g.p == 0 {
		return
	}
	s.g.Reseed(uint32(uint64(seed) % uint64(s.g.p)))
}
