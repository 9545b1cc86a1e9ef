package main

import (
	"fmt"

	"github.com/Gameaday/pokermon/cmd/pokermon/shared"
	"github.com/Gameaday/pokermon/internal/ai"
	"github.com/Gameaday/pokermon/internal/display"
	"github.com/Gameaday/pokermon/internal/randutil"
	"github.com/Gameaday/pokermon/internal/strength"
)

// DecideCmd resolves a single action point for one personality
type DecideCmd struct {
	Preset    string  `kong:"default='random',help='Personality preset name, or random'"`
	Bet       int     `kong:"default='0',help='Current bet to match'"`
	Pot       int     `kong:"default='100',help='Pot size before acting'"`
	Players   int     `kong:"default='4',help='Players still in the hand'"`
	Round     string  `kong:"default='preflop',enum='preflop,flop,turn,river',help='Betting round'"`
	LastToAct bool    `kong:"help='Acting last this round'"`
	ChipRatio float64 `kong:"default='1.0',help='Stack size relative to the table average'"`
	HandScore int     `kong:"default='2500',help='Raw evaluator hand score'"`
	Chips     int     `kong:"default='1000',help='Remaining stack'"`
	Debug     bool    `kong:"help='Enable debug logging'"`
	Seed      *int64  `kong:"help='Deterministic RNG seed (optional)'"`
}

func (c *DecideCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	seed := seedOrNow(c.Seed)
	rng := randutil.New(seed)

	preset, err := resolvePreset(c.Preset, rng)
	if err != nil {
		return err
	}
	profile, err := ai.NewBehaviorProfile(preset.Traits)
	if err != nil {
		return err
	}

	gameCtx := ai.GameContext{
		CurrentBet:       c.Bet,
		PotSize:          c.Pot,
		PlayersRemaining: c.Players,
		BettingRound:     roundNumber(c.Round),
		LastToAct:        c.LastToAct,
		ChipRatio:        c.ChipRatio,
	}

	handStrength := strength.Assess(c.HandScore)
	logger.Debug().
		Str("preset", preset.Name).
		Int64("seed", seed).
		Float64("hand_strength", handStrength).
		Msg("Resolving decision")

	decision, err := ai.NewEngine(rng).Decide(profile, gameCtx, handStrength, c.Chips)
	if err != nil {
		return err
	}

	fmt.Println(display.DecisionReport(preset.Name, decision, strength.Describe(c.HandScore), handStrength))
	return nil
}
