// Package validate implements the group-seed validator: forward-simulates
// a candidate group seed and checks whether it reproduces a cohort's
// encryption constants under one of three spawner patterns.
package validate

import (
	"errors"

	"github.com/corvusglyph/seedreaper/internal/config"
	"github.com/corvusglyph/seedreaper/internal/prng"
)

// ErrInvalidArgument is a programmer error: an empty ecs slice or an
// out-of-range first index. It is not a search-failure outcome; callers
// should treat it as a bug to fix, not a "no seed found" result.
var ErrInvalidArgument = errors.New("validate: ecs must be non-empty and first must be a valid index")

// Accepted reports which spawner mode accepted the candidate, if any.
type Accepted struct {
	OK   bool
	Mode config.SpawnerMode
}

// Validate checks candidate groupSeed against the cohort's encryption
// constants ecs, given that entity ecs[first] is the one whose reversal
// produced the candidate. modes is the bitset of spawner patterns to try,
// tested in Multi, Single, Mixed order — matching the order the source
// returns the first accepting mode.
func Validate(groupSeed uint64, ecs []uint32, first int, modes config.Modes) (Accepted, error) {
	if len(ecs) == 0 || first < 0 || first >= len(ecs) {
		return Accepted{}, ErrInvalidArgument
	}

	if modes.Has(config.ModeMulti) && len(ecs) >= 2 && validateMulti(groupSeed, ecs) {
		return Accepted{OK: true, Mode: config.ModeMulti}, nil
	}
	if modes.Has(config.ModeSingle) && validateSingle(groupSeed, ecs, first) {
		return Accepted{OK: true, Mode: config.ModeSingle}, nil
	}
	if modes.Has(config.ModeMixed) && validateMixed(groupSeed, ecs, first) {
		return Accepted{OK: true, Mode: config.ModeMixed}, nil
	}
	return Accepted{}, nil
}

// spawnWave reads two draws from the group generator (a generator seed,
// and one discarded "alpha move" draw whose semantics are unspecified and
// never interpreted) and constructs the ephemeral per-wave sub-generator
// chain, returning the encryption constant it produces. Every wave is a
// pure function of the group generator's current state plus its own two
// draws.
func spawnWave(groupRNG *prng.Generator) uint32 {
	genSeed := groupRNG.Next()
	groupRNG.Next() // alpha move: discarded, semantics intentionally opaque

	slotRNG := prng.New(genSeed)
	slotRNG.Next() // slot draw, discarded
	entitySeed := slotRNG.Next()

	entityRNG := prng.New(entitySeed)
	return entityRNG.NextU32()
}

// validateMulti simulates a single spawn wave of len(ecs) entities and
// accepts iff every produced ec appears in ecs (set membership, not
// positional). Rejects cohorts of size 1, which can never disambiguate a
// multi-spawn from any other mode.
func validateMulti(groupSeed uint64, ecs []uint32) bool {
	if len(ecs) < 2 {
		return false
	}
	want := toSet(ecs)
	rng := prng.New(groupSeed)
	matched := 0
	for i := 0; i < len(ecs); i++ {
		ec := spawnWave(rng)
		if want[ec] {
			matched++
		}
	}
	return matched == len(ecs)
}

// validateSingle simulates one wave per entity, each wave seeded from the
// group rng's then-current state, separated by one extra group-level
// advance. The first wave's ec must equal ecs[first]; every wave's ec must
// be present in (and is then removed from) the remaining working set.
func validateSingle(groupSeed uint64, ecs []uint32, first int) bool {
	remaining := toMultiset(ecs)
	rng := prng.New(groupSeed)

	for wave := 0; wave < len(ecs); wave++ {
		ec := spawnWave(rng)
		if wave == 0 && ec != ecs[first] {
			return false
		}
		if remaining[ec] == 0 {
			return false
		}
		remaining[ec]--
		if wave < len(ecs)-1 {
			rng.Next() // advance to the next wave's group seed
		}
	}
	for _, count := range remaining {
		if count != 0 {
			return false
		}
	}
	return true
}

// validateMixed simulates wave 1 as a single entity (must equal
// ecs[first]), advances once, then simulates a multi-spawn wave of the
// remaining len(ecs)-1 entities.
func validateMixed(groupSeed uint64, ecs []uint32, first int) bool {
	if len(ecs) < 2 {
		return false
	}
	rng := prng.New(groupSeed)

	ec := spawnWave(rng)
	if ec != ecs[first] {
		return false
	}
	rng.Next() // advance to the next wave's group seed

	want := toSetExcept(ecs, ec)
	matched := 0
	for i := 0; i < len(ecs)-1; i++ {
		ec := spawnWave(rng)
		if want[ec] {
			matched++
		}
	}
	return matched == len(ecs)-1
}

func toSet(ecs []uint32) map[uint32]bool {
	m := make(map[uint32]bool, len(ecs))
	for _, ec := range ecs {
		m[ec] = true
	}
	return m
}

func toMultiset(ecs []uint32) map[uint32]int {
	m := make(map[uint32]int, len(ecs))
	for _, ec := range ecs {
		m[ec]++
	}
	return m
}

// toSetExcept builds the set of values left in ecs after one occurrence of
// exclude is removed, used for the multi-spawn remainder check in
// validateMixed.
func toSetExcept(ecs []uint32, exclude uint32) map[uint32]bool {
	counts := toMultiset(ecs)
	if counts[exclude] > 0 {
		counts[exclude]--
	}
	set := make(map[uint32]bool, len(counts))
	for ec, n := range counts {
		if n > 0 {
			set[ec] = true
		}
	}
	return set
}
