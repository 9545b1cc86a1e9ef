// Package ai implements personality-driven poker decision making.
//
// A TraitVector carries ten 0-10 scalars (courage, guile, caution and so
// on). A BehaviorProfile derives the four poker-facing tendencies from a
// vector with fixed weights, plus the blended play traits the engine reads.
// The Engine combines a profile with a GameContext snapshot and a [0, 1]
// hand-strength scalar and produces a Decision.
//
// # Determinism
//
// Engines are seeded explicitly and never touch global randomness: the same
// seed, profile and inputs reproduce the same decision sequence. An Engine
// is single-goroutine; workers each construct their own.
//
// # Typical use
//
//	profile, err := ai.ProfileFor("Brash")
//	if err != nil { ... }
//	engine := ai.NewEngineSeeded(42)
//	decision, err := engine.Decide(profile, ai.GameContext{
//		CurrentBet:       50,
//		PotSize:          200,
//		PlayersRemaining: 4,
//		BettingRound:     ai.RoundFlop,
//		ChipRatio:        1.0,
//	}, 0.62, 1500)
package ai
