package survey

import "math/rand/v2"

// Shuffle permutes list in place with a Fisher-Yates pass and returns it.
// A nil rng uses the unseeded global source.
func Shuffle[T any](list []T, rng *rand.Rand) []T {
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}
	for i := len(list) - 1; i > 0; i-- {
		j := intN(i + 1)
		list[i], list[j] = list[j], list[i]
	}
	return list
}

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
