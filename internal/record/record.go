// Package record defines the decoded entity record this system consumes
// and a concrete (but intentionally minimal) directory ingestion shim.
// Decoding the game's actual binary layout is out of scope: callers supply
// a Decoder; this package only owns the shape of a decoded record and the
// mechanics of walking a directory of candidate files.
package record

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/corvusglyph/seedreaper/internal/shiny"
)

// Gender ratio sentinels. A species whose GenderRatio is one of these
// skips the gender roll entirely during trait confirmation.
const (
	GenderRatioGenderless  = 255
	GenderRatioFixedFemale = 254
	GenderRatioFixedMale   = 0
)

// Record is a decoded entity, matching the fields the real binary format
// exposes once an external decoder has parsed it.
type Record struct {
	EncryptionConstant uint32
	Personality        uint32
	TrainerID          uint16
	SecretID           uint16

	// IVs is in canonical slot order: HP, Atk, Def, SpA, SpD, Spe.
	IVs [6]uint8

	FlawlessIVCount uint8 // one of 0, 3, 4
	AbilityNumber   uint8 // 1 or 2
	Gender          uint8 // 0, 1, or 2 (genderless)
	GenderRatio     uint8
	Nature          uint8 // [0, 25)
	IsAlpha         bool

	// HeightScalar and WeightScalar are meaningless (and unset) when
	// IsAlpha is true; alpha entities skip the height/weight rolls.
	HeightScalar uint8
	WeightScalar uint8
}

// IsShiny reports whether this record's personality/trainer pair satisfies
// the shiny condition.
func (r Record) IsShiny() bool {
	return shiny.Xor(r.Personality, shiny.Combine(r.SecretID, r.TrainerID)) < 16
}

// IVsSpeedLast returns the record's IVs reordered so Speed is last, the
// order the flawless-IV roll in trait confirmation consumes.
func (r Record) IVsSpeedLast() [6]uint8 {
	// Canonical order is HP, Atk, Def, SpA, SpD, Spe; Spe is already
	// last, so this is an identity — kept as a named accessor because
	// the forward trait generator depends on this specific ordering
	// and future record layouts may not keep Spe last by construction.
	return r.IVs
}

// SkipsGenderRoll reports whether GenderRatio is one of the sentinels that
// make the gender roll in trait confirmation a no-op.
func (r Record) SkipsGenderRoll() bool {
	switch r.GenderRatio {
	case GenderRatioGenderless, GenderRatioFixedFemale, GenderRatioFixedMale:
		return true
	default:
		return false
	}
}

var (
	// ErrInsufficientInput is returned when a cohort has fewer than two
	// decoded records.
	ErrInsufficientInput = errors.New("cohort has fewer than two entity records")

	// ErrExcessInput is returned when a cohort has more than four
	// decoded records.
	ErrExcessInput = errors.New("cohort has more than four entity records")
)

// Decoder decodes a file's raw bytes into a Record. The second return value
// is false when the bytes do not decode as a valid record, in which case
// the file is skipped (or rejected, under StrictDecode).
type Decoder func([]byte) (Record, bool)

// LoadOptions controls directory ingestion.
type LoadOptions struct {
	// StrictDecode, when true, turns a decode failure on any regular
	// file into a hard error instead of silently skipping the file.
	StrictDecode bool
}

// LoadDirectory reads every regular file directly under dir, decodes each
// with decode, and returns the resulting cohort in directory-listing order.
// Files that fail to decode are skipped unless opts.StrictDecode is set.
// The cohort size is validated against [2,4] before returning.
func LoadDirectory(dir string, decode Decoder, opts LoadOptions) ([]Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading entity record directory: %w", err)
	}

	var records []Record
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		rec, ok := decode(data)
		if !ok {
			if opts.StrictDecode {
				return nil, fmt.Errorf("failed to decode %s as an entity record", path)
			}
			continue
		}
		records = append(records, rec)
	}

	if len(records) < 2 {
		return nil, ErrInsufficientInput
	}
	if len(records) > 4 {
		return nil, ErrExcessInput
	}
	return records, nil
}
