package reverse

import "github.com/corvusglyph/seedreaper/internal/prng"

// GroupSeedFromGenSeed inverts a single xoroshiro128+ advance seeded fresh
// as (s0=groupSeed, s1=C1): the first Next() of that generator returns
// groupSeed+C1, so subtracting C1 (mod 2^64) recovers the group seed.
// Constant time.
func GroupSeedFromGenSeed(genSeed uint64) uint64 {
	return genSeed - prng.C1
}
