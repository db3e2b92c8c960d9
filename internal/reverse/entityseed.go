package reverse

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/corvusglyph/seedreaper/internal/antishiny"
	"github.com/corvusglyph/seedreaper/internal/config"
	"github.com/corvusglyph/seedreaper/internal/prng"
	"github.com/corvusglyph/seedreaper/internal/record"
	"github.com/corvusglyph/seedreaper/internal/shiny"
)

// SeedCandidate is an entity seed paired with the personality roll count
// that confirmed it against a specific record.
type SeedCandidate struct {
	Seed  uint64
	Rolls uint8
}

const (
	searchChunks   = 1 << 16
	searchChunkLen = 1 << 16 // searchChunks * searchChunkLen == 1<<32
)

// EntitySeedCandidates searches the 2^32 space of entity seeds consistent
// with rec's encryption constant and returns every seed (paired with the
// roll count that confirmed it) whose forward trait regeneration matches
// rec exactly.
//
// The search is split into 2^16 independent chunks run by a worker pool
// bounded by cfg.Workers; each chunk touches only the shared sink, which is
// safe for concurrent insertion. Order of discovered candidates is
// unspecified.
func EntitySeedCandidates(ctx context.Context, rec record.Record, cfg config.SearchConfig) ([]SeedCandidate, error) {
	low := lowSeedFromEC(rec.EncryptionConstant)

	var sink concurrentSink
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for outer := 0; outer < searchChunks; outer++ {
		outer := outer
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			searchChunk(outer, low, rec, cfg.MaxRolls, &sink)
			return nil
		})
	}

	if err := g.Wait(); err != nil && err != context.Canceled {
		return nil, err
	}
	return sink.drain(), nil
}

// lowSeedFromEC derives the known low 32 bits of every candidate entity
// seed from the record's encryption constant: the first Next() of a
// freshly seeded (s0=S, s1=C1) generator is S+C1, whose low 32 bits equal
// ec, so S_low = ec - (C1 mod 2^32) in 32-bit wrapping arithmetic.
func lowSeedFromEC(ec uint32) uint32 {
	return ec - uint32(uint64(prng.C1)&0xFFFFFFFF)
}

// searchChunk tests the inner 2^16 candidates for one outer chunk.
func searchChunk(outer int, low uint32, rec record.Record, maxRolls uint8, sink *concurrentSink) {
	antiShiny := !rec.IsShiny() && antishiny.IsPotentialAntiShiny(rec.TrainerID, rec.SecretID, rec.Personality)

	for inner := 0; inner < searchChunkLen; inner++ {
		upper := uint32(outer)<<16 | uint32(inner)
		seed := uint64(upper)<<32 | uint64(low)

		if !screenPersonality(seed, rec, maxRolls, antiShiny) {
			continue
		}
		confirmAllCombinations(seed, rec, maxRolls, sink)
	}
}

// screenPersonality runs the cheap first pass: draw up to maxRolls
// personality values and check whether any satisfies the record's
// personality condition. This is a necessary, not sufficient, condition —
// full confirmation happens in confirmAllCombinations.
func screenPersonality(seed uint64, rec record.Record, maxRolls uint8, checkAntiShiny bool) bool {
	rng := prng.New(seed)
	rng.NextU32() // encryption constant, already matched by construction
	rng.NextU32() // fake trainer id

	isShiny := rec.IsShiny()
	wantLow16 := rec.Personality & 0xFFFF
	wantExact := rec.Personality
	wantAnti := rec.Personality ^ antishiny.Bit

	for i := uint8(0); i < maxRolls; i++ {
		pid := rng.NextU32()
		if isShiny {
			if pid&0xFFFF == wantLow16 {
				return true
			}
			continue
		}
		if pid == wantExact {
			return true
		}
		if checkAntiShiny && pid == wantAnti {
			return true
		}
	}
	return false
}

// confirmAllCombinations regenerates every trait for each (flawlessIVCount,
// rolls) combination and records every one that matches rec exactly.
func confirmAllCombinations(seed uint64, rec record.Record, maxRolls uint8, sink *concurrentSink) {
	for _, k := range [3]uint8{0, 3, 4} {
		for r := uint8(1); r <= maxRolls; r++ {
			if confirmTraits(seed, rec, k, r) {
				sink.add(SeedCandidate{Seed: seed, Rolls: r})
			}
		}
	}
}

// confirmTraits replays the full forward trait generator from a fresh
// (s0=seed, s1=C1) generator and reports whether every trait matches rec,
// for a specific flawless IV count and roll count.
func confirmTraits(seed uint64, rec record.Record, flawlessIVs, rolls uint8) bool {
	rng := prng.New(seed)

	ec := rng.NextU32()
	if ec != rec.EncryptionConstant {
		return false
	}
	fakeTrainerID := rng.NextU32()

	var pid uint32
	for i := uint8(0); i < rolls; i++ {
		pid = rng.NextU32()
	}

	shinyXor := shiny.Xor(pid, fakeTrainerID)
	if rec.IsShiny() {
		if pid&0xFFFF != rec.Personality&0xFFFF {
			return false
		}
		if shinyXor >= 16 {
			return false
		}
	} else {
		if pid != rec.Personality && pid != rec.Personality^antishiny.Bit {
			return false
		}
	}

	ivs := rec.IVsSpeedLast()
	var slotFilled [6]bool

	for i := uint8(0); i < flawlessIVs; i++ {
		var slot int
		for {
			slot = int(rng.NextBounded(6))
			if !slotFilled[slot] {
				break
			}
		}
		if ivs[slot] != 31 {
			return false
		}
		slotFilled[slot] = true
	}
	for i := 0; i < 6; i++ {
		if slotFilled[i] {
			continue
		}
		draw := uint8(rng.NextBounded(32))
		if draw != ivs[i] {
			return false
		}
	}

	ability := uint8(rng.NextBounded(2)) + 1
	if ability != rec.AbilityNumber {
		return false
	}

	if !rec.SkipsGenderRoll() {
		draw := uint8(rng.NextBounded(252)) + 1
		var gender uint8
		if draw < rec.GenderRatio {
			gender = 1
		}
		if gender != rec.Gender {
			return false
		}
	}

	nature := uint8(rng.NextBounded(25))
	if nature != rec.Nature {
		return false
	}

	if rec.IsAlpha {
		return true
	}

	height := uint8(rng.NextBounded(0x81)) + uint8(rng.NextBounded(0x80))
	if height != rec.HeightScalar {
		return false
	}
	weight := uint8(rng.NextBounded(0x81)) + uint8(rng.NextBounded(0x80))
	if weight != rec.WeightScalar {
		return false
	}
	return true
}

// concurrentSink is a safe-under-contention bag of SeedCandidate values
// accumulated by a concurrent worker pool.
type concurrentSink struct {
	mu    sync.Mutex
	items []SeedCandidate
}

func (s *concurrentSink) add(c SeedCandidate) {
	s.mu.Lock()
	s.items = append(s.items, c)
	s.mu.Unlock()
}

func (s *concurrentSink) drain() []SeedCandidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SeedCandidate, len(s.items))
	copy(out, s.items)
	return out
}
