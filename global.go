// Copyright (C) 2026. See AUTHORS.

package icg

import "time"

// Parameters of the process-wide generator. The modulus is the
// 1,000,000th prime.
const (
	defaultP = 15485863
	defaultA = 213
	defaultB = 64
)

// std is the shared generator behind the package-level samplers. It is
// built once at program start, seeded from the wall clock, and is never
// reseeded or reparametrized afterwards. Like Generator itself it is not
// safe for concurrent use.
var std = New(defaultP, defaultA, defaultB, uint32(time.Now().Unix()%defaultP))

// Uint32n returns a value uniformly in [0, n) from the shared generator.
func Uint32n(n uint32) uint32 { return std.Uint32n(n) }

// Float64 returns a value uniformly in [0, 1) from the shared generator.
func Float64() float64 { return std.Float64() }

// Interval returns a value uniformly in [min(a, b), max(a, b)) from the
// shared generator.
func Interval(a, b float64) float64 { return std.Interval(a, b) }

// NormFloat64 returns a standard normally distributed value from the
// shared generator.
func NormFloat64() float64 { return std.NormFloat64() }

// Normal returns a value from N(mu, variance) from the shared generator.
// The second parameter is the variance, not the standard deviation.
func Normal(mu, variance float64) float64 { return std.Normal(mu, variance) }
