// Package battle resolves turn-based monster fights.
//
// A fight pits a player-side monster against an opponent, alternating moves
// in speed order until one side faints or the turn cap scores it a draw.
// All randomness flows through the engine's generator, so a seeded engine
// with fixed policies replays the same fight move for move.
package battle
