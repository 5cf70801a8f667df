// Copyright (C) 2026. See AUTHORS.

package icg

// Coin is a simple struct to let us get random bools while making
// minimum calls to the underlying generator: one 64-bit word is drawn
// and handed out a bit at a time.
type Coin struct {
	src  *Source
	val  uint64
	bits int
}

// NewCoin returns a Coin tossing bits drawn from src.
func NewCoin(src *Source) *Coin {
	return &Coin{src: src}
}

// Toss returns the next random bool.
func (c *Coin) Toss() (val bool) {
	if c.bits == 0 {
		c.val = c.src.Uint64()
		c.bits = 64
	}
	c.bits--
	val = c.val&1 > 0
	c.val >>= 1
	return val
}
