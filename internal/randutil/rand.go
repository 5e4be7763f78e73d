// Package randutil derives reproducible math/rand/v2 sources from int64 seeds.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns a stream for the index-th independent consumer of seed.
// Sessions use it so their cards do not depend on which worker runs them.
func Derive(seed int64, index int) *rand.Rand {
	stream := mix(uint64(seed) ^ mix(uint64(index)+goldenRatio64))
	return rand.New(rand.NewPCG(stream, mix(stream+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
