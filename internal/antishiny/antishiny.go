// Package antishiny implements the anti-shiny predicate: a non-shiny
// entity may actually be a shiny roll whose personality had bit 28
// (0x1000_0000) flipped by the game, suppressing the shiny outcome.
package antishiny

import "github.com/corvusglyph/seedreaper/internal/shiny"

// Bit is xored into a personality value to test whether it would have
// been shiny before the game's anti-shiny flip was applied.
const Bit = 0x1000_0000

// IsPotentialAntiShiny reports whether personality, xored with the
// anti-shiny bit, would satisfy the shiny condition against the given
// trainer/secret id pair.
func IsPotentialAntiShiny(trainerID, secretID uint16, personality uint32) bool {
	return shiny.Xor(personality^Bit, shiny.Combine(secretID, trainerID)) < 16
}
