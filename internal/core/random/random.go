// Package random wraps the pseudo-random source the engine draws from.
// Every draw in a simulation goes through one Source so that a fixed seed
// reproduces a run exactly.
package random

import "math/rand"

// Source is satisfied by *rand.Rand. Read feeds seeded uuid generation.
type Source interface {
	Float64() float64
	Intn(n int) int
	Read(p []byte) (n int, err error)
}

// New returns a seeded source. Seed 0 is remapped to 1.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

// Range returns a uniform value in [min, max).
func Range(src Source, min, max float64) float64 {
	return src.Float64()*(max-min) + min
}

// Jitter returns a uniform value in [-amount, amount).
func Jitter(src Source, amount float64) float64 {
	return Range(src, -amount, amount)
}

// Chance reports whether a uniform draw falls under p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Pick returns a uniformly chosen element. It panics on an empty slice.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}
