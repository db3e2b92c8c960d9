package antishiny

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPotentialAntiShinyScenario6(t *testing.T) {
	got := IsPotentialAntiShiny(15156, 10217, 0xD9ECD53B)
	assert.True(t, got)
}

func TestIsPotentialAntiShinyFalseForOrdinaryPersonality(t *testing.T) {
	got := IsPotentialAntiShiny(1, 1, 0x12345678)
	assert.False(t, got)
}
