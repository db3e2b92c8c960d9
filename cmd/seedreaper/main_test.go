package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvusglyph/seedreaper/internal/config"
)

func TestParseModesDefault(t *testing.T) {
	modes, err := parseModes("multi,single")
	require.NoError(t, err)
	assert.True(t, modes.Has(config.ModeMulti))
	assert.True(t, modes.Has(config.ModeSingle))
	assert.False(t, modes.Has(config.ModeMixed))
}

func TestParseModesIsCaseInsensitiveAndTrimsSpace(t *testing.T) {
	modes, err := parseModes(" Multi , MIXED ")
	require.NoError(t, err)
	assert.True(t, modes.Has(config.ModeMulti))
	assert.True(t, modes.Has(config.ModeMixed))
}

func TestParseModesRejectsUnknownMode(t *testing.T) {
	_, err := parseModes("multi,quadruple")
	assert.Error(t, err)
}

func TestParseModesRejectsEmptySelection(t *testing.T) {
	_, err := parseModes("")
	assert.Error(t, err)
}
