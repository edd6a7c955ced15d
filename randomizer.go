package streetnames

import "math/rand/v2"

// randomizer streams, so that sources seeded with the same identity seed draw independent sequences
const (
	streamMotorway = uint64(iota + 1)
	streamSuffix
	streamPrefix
)

// randomizer is a deterministic pseudo-random source seeded by an identity seed
type randomizer struct {
	source *rand.Rand
}

func newRandomizer(seed NameSeed, stream uint64) *randomizer {
	return &randomizer{source: rand.New(rand.NewPCG(uint64(seed), stream))}
}

// uint32 returns uniform value in range [0; MaxUint32]
func (r *randomizer) uint32() uint32 {
	return r.source.Uint32()
}

// between returns uniform value in range [min; max]
func (r *randomizer) between(min, max uint32) uint32 {
	return min + r.source.Uint32N(max-min+1)
}

// index returns uniform value in range [0; n)
func (r *randomizer) index(n int) int {
	return r.source.IntN(n)
}
