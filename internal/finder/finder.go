// Package finder drives the three-stage reversal (entity seed -> generator
// seed -> group seed) across a cohort and validates each candidate,
// returning the first group seed the validator confirms.
package finder

import (
	"context"

	"go.uber.org/zap"

	"github.com/corvusglyph/seedreaper/internal/config"
	"github.com/corvusglyph/seedreaper/internal/record"
	"github.com/corvusglyph/seedreaper/internal/reverse"
	"github.com/corvusglyph/seedreaper/internal/validate"
)

// Result is the finder's successful output: the group seed, the index of
// the cohort entity whose reversal produced it, the spawner mode that
// validated it, and the roll count that confirmed the winning entity-seed
// candidate.
type Result struct {
	GroupSeed  uint64
	FirstIndex int
	Mode       config.SpawnerMode
	Rolls      uint8
}

// Find orchestrates the search: for each cohort entity in order, reverse
// its entity seed candidates, then each candidate's
// generator-seed candidates, map each to a group seed, and validate
// against the whole cohort. The first validated group seed is returned.
// Returns ok=false if no candidate across the entire cohort validates.
func Find(ctx context.Context, logger *zap.Logger, cohort []record.Record, cfg config.SearchConfig) (Result, bool, error) {
	ecs := make([]uint32, len(cohort))
	for i, r := range cohort {
		ecs[i] = r.EncryptionConstant
	}

	for i, rec := range cohort {
		entitySeeds, err := reverse.EntitySeedCandidates(ctx, rec, cfg)
		if err != nil {
			return Result{}, false, err
		}
		logger.Debug("entity-seed candidates",
			zap.Int("entity_index", i),
			zap.Int("candidates", len(entitySeeds)))

		for _, sc := range entitySeeds {
			genSeeds, err := reverse.GenSeedCandidates(sc.Seed)
			if err != nil {
				return Result{}, false, err
			}
			logger.Debug("gen-seed candidates",
				zap.Int("entity_index", i),
				zap.Int("candidates", len(genSeeds)))

			for _, genSeed := range genSeeds {
				groupSeed := reverse.GroupSeedFromGenSeed(genSeed)

				accepted, err := validate.Validate(groupSeed, ecs, i, cfg.Modes)
				if err != nil {
					return Result{}, false, err
				}
				if accepted.OK {
					return Result{
						GroupSeed:  groupSeed,
						FirstIndex: i,
						Mode:       accepted.Mode,
						Rolls:      sc.Rolls,
					}, true, nil
				}
			}
		}
	}

	return Result{}, false, nil
}
