// Package logging wires up the zap logger used across the search
// pipeline. Scope is deliberately small: a constructor and a handful of
// named fields — there's nothing here worth persisting as structured
// facts, since this tool keeps no store and no queryable history.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger for the search pipeline. verbose selects debug
// level; otherwise info level.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.EncoderConfig.TimeKey = ""
	return cfg.Build()
}

// Field names for the search pipeline's structured log lines. The finder
// writes its "entity_index" and "candidates" fields as string literals with
// the same keys; nothing in the module references these constants.
const (
	FieldEntityIndex = "entity_index"
	FieldCandidates  = "candidates"
	FieldSeed        = "seed"
	FieldMode        = "mode"
)
