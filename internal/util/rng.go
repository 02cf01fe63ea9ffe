// Package util holds small helpers shared by tests and tools.
package util

import "math/rand"

// New returns a deterministic generator for sampling rosters and filters.
// Seed 0 is mapped to 1 so a zero-valued config still yields a fixed stream.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}
