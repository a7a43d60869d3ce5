package ai

import "math/rand"

// aiRng is the package-level random source used by all archetype
// strategies. When nil, the functions below delegate to the global
// math/rand default. Use SeedRng to set a deterministic source for
// reproducible decisions.
var aiRng *rand.Rand

// SeedRng sets a deterministic random source for reproducible AI behavior.
func SeedRng(seed int64) {
	aiRng = rand.New(rand.NewSource(seed))
}

// ResetRng reverts to the default (non-deterministic) global random source.
func ResetRng() {
	aiRng = nil
}

func aiFloat64() float64 {
	if aiRng != nil {
		return aiRng.Float64()
	}
	return rand.Float64()
}

func aiIntn(n int) int {
	if aiRng != nil {
		return aiRng.Intn(n)
	}
	return rand.Intn(n)
}

// aiRange draws a float uniformly from [lo, hi).
func aiRange(lo, hi float64) float64 {
	return lo + aiFloat64()*(hi-lo)
}
