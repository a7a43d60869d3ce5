package engine

import "math/rand"

// engineRng is the package-level random source used by combat resolution.
// When nil, the functions below delegate to the global math/rand default.
// Use SeedRng to set a deterministic source for reproducible simulations.
var engineRng *rand.Rand

// SeedRng sets a deterministic random source for reproducible combat.
func SeedRng(seed int64) {
	engineRng = rand.New(rand.NewSource(seed))
}

// ResetRng reverts to the default (non-deterministic) global random source.
func ResetRng() {
	engineRng = nil
}

func engineFloat64() float64 {
	if engineRng != nil {
		return engineRng.Float64()
	}
	return rand.Float64()
}

// uniform draws from [lo, hi).
func uniform(lo, hi float64) float64 {
	return lo + engineFloat64()*(hi-lo)
}
