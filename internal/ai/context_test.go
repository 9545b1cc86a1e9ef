package ai

import (
	"math"
	"testing"
)

func validContext() GameContext {
	return GameContext{
		CurrentBet:       50,
		PotSize:          200,
		PlayersRemaining: 4,
		BettingRound:     RoundFlop,
		ChipRatio:        1.0,
	}
}

func TestGameContextValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameContext)
		wantErr bool
	}{
		{"valid", func(c *GameContext) {}, false},
		{"zero bet is fine", func(c *GameContext) { c.CurrentBet = 0 }, false},
		{"heads up", func(c *GameContext) { c.PlayersRemaining = 1 }, false},
		{"river", func(c *GameContext) { c.BettingRound = RoundRiver }, false},
		{"negative bet", func(c *GameContext) { c.CurrentBet = -1 }, true},
		{"negative pot", func(c *GameContext) { c.PotSize = -10 }, true},
		{"no players", func(c *GameContext) { c.PlayersRemaining = 0 }, true},
		{"round zero", func(c *GameContext) { c.BettingRound = 0 }, true},
		{"round five", func(c *GameContext) { c.BettingRound = 5 }, true},
		{"negative chip ratio", func(c *GameContext) { c.ChipRatio = -0.5 }, true},
		{"NaN chip ratio", func(c *GameContext) { c.ChipRatio = math.NaN() }, true},
		{"infinite chip ratio", func(c *GameContext) { c.ChipRatio = math.Inf(1) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := validContext()
			tt.mutate(&ctx)
			err := ctx.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestPotOdds(t *testing.T) {
	ctx := validContext()
	if got := ctx.PotOdds(); got != 4.0 {
		t.Errorf("pot 200 over bet 50 should give 4.0, got %v", got)
	}

	ctx.CurrentBet = 0
	ctx.PotSize = 100
	if got := ctx.PotOdds(); got != 100.0 {
		t.Errorf("zero bet should divide by one chip, got %v", got)
	}
}
