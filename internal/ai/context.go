package ai

import (
	"fmt"
	"math"
)

// Betting round indices. Preflop is 1 so rounds carry the numbers players
// use for them; the engine's lateness terms key off the index directly.
const (
	RoundPreflop = 1
	RoundFlop    = 2
	RoundTurn    = 3
	RoundRiver   = 4
)

// GameContext is the table snapshot one decision is made against. The zero
// value is not usable; fill the fields and let Validate or the engine catch
// anything a real table could not produce.
type GameContext struct {
	CurrentBet       int
	PotSize          int
	PlayersRemaining int
	BettingRound     int // RoundPreflop through RoundRiver
	LastToAct        bool
	ChipRatio        float64 // actor's chips over the mean opponent stack
}

// Validate rejects impossible snapshots before they reach the decision math.
func (c GameContext) Validate() error {
	switch {
	case c.CurrentBet < 0:
		return fmt.Errorf("game context: negative current bet %d", c.CurrentBet)
	case c.PotSize < 0:
		return fmt.Errorf("game context: negative pot %d", c.PotSize)
	case c.PlayersRemaining < 1:
		return fmt.Errorf("game context: %d players remaining, need at least 1", c.PlayersRemaining)
	case c.BettingRound < RoundPreflop || c.BettingRound > RoundRiver:
		return fmt.Errorf("game context: betting round %d outside %d..%d", c.BettingRound, RoundPreflop, RoundRiver)
	case math.IsNaN(c.ChipRatio) || math.IsInf(c.ChipRatio, 0) || c.ChipRatio < 0:
		return fmt.Errorf("game context: chip ratio %v must be finite and non-negative", c.ChipRatio)
	}
	return nil
}

// PotOdds is the pot relative to the bet being faced. A zero bet counts as
// one chip so an unopened pot still yields a finite ratio.
func (c GameContext) PotOdds() float64 {
	return float64(c.PotSize) / float64(max(c.CurrentBet, 1))
}
