package main

import (
	"time"

	rand "math/rand/v2"

	"github.com/Gameaday/pokermon/internal/ai"
)

// seedOrNow returns the explicit seed, or derives one from the wall clock so
// every run can still be replayed from its logged seed.
func seedOrNow(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}

// resolvePreset maps a --preset value to a roster entry. The name "random"
// draws one from the full roster.
func resolvePreset(name string, rng *rand.Rand) (ai.Preset, error) {
	if name == "" || name == "random" {
		return ai.RandomPreset(rng), nil
	}
	return ai.PresetByName(name)
}

// roundNumber maps the --round enum to the engine's betting round numbering.
func roundNumber(name string) int {
	switch name {
	case "flop":
		return ai.RoundFlop
	case "turn":
		return ai.RoundTurn
	case "river":
		return ai.RoundRiver
	default:
		return ai.RoundPreflop
	}
}
