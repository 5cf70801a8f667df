// Copyright (C) 2026. See AUTHORS.

package icg

// isPrime reports whether n is prime by trial division. Only called at
// parameter-validation time, so O(sqrt n) is fine.
func isPrime(n uint32) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := uint64(3); d*d <= uint64(n); d += 2 {
		if n%uint32(d) == 0 {
			return false
		}
	}
	return true
}

// inverse returns the z in [1, p) with y*z == 1 (mod p), computed by the
// extended Euclidean algorithm on (p, y). Out-of-contract inputs (y == 0
// or y >= p) return 0; the step routine relies on that sentinel never
// being reached because it handles cur == 0 first.
func inverse(y, p uint32) uint32 {
	if y == 0 || y >= p {
		return 0
	}
	if y == 1 {
		return 1
	}

	// track only the Bezout coefficient of y. it stays below p in
	// magnitude, so one correction brings it into [0, p).
	r0, r1 := y, p%y
	t0, t1 := int64(1), -int64(p/y)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		t0, t1 = t1, t0-int64(q)*t1
	}

	if t0 < 0 {
		t0 += int64(p)
	}
	return uint32(t0)
}
