package main

import (
	"fmt"

	"github.com/Gameaday/pokermon/cmd/pokermon/shared"
	"github.com/Gameaday/pokermon/internal/ai"
	"github.com/Gameaday/pokermon/internal/display"
	"github.com/Gameaday/pokermon/internal/monster"
	"github.com/Gameaday/pokermon/internal/session"
	"github.com/Gameaday/pokermon/internal/strength"
)

// TableCmd loads a session config and previews every AI seat's decision for
// one spot. Human seats are skipped; monster perks apply through the session.
type TableCmd struct {
	Config    string `kong:"default='session.hcl',help='Session config file (HCL)'"`
	Bet       int    `kong:"default='50',help='Current bet to match'"`
	Pot       int    `kong:"default='150',help='Pot size before acting'"`
	Round     string `kong:"default='flop',enum='preflop,flop,turn,river',help='Betting round'"`
	HandScore int    `kong:"default='2500',help='Raw evaluator hand score'"`
	Debug     bool   `kong:"help='Enable debug logging'"`
}

func (c *TableCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := session.LoadConfig(c.Config)
	if err != nil {
		return err
	}

	db, err := monster.Load()
	if err != nil {
		return err
	}

	sess, err := cfg.Build(db, shared.EngineLogger(c.Debug, ""))
	if err != nil {
		return err
	}

	roster := sess.Roster()
	players := len(roster)
	if players < 2 {
		players = 2
	}

	gameCtx := ai.GameContext{
		CurrentBet:       c.Bet,
		PotSize:          c.Pot,
		PlayersRemaining: players,
		BettingRound:     roundNumber(c.Round),
		ChipRatio:        1,
	}

	handStrength := strength.Assess(c.HandScore)
	tier := strength.Describe(c.HandScore)
	logger.Debug().
		Int64("seed", sess.Seed()).
		Int("seats", len(roster)).
		Float64("hand_strength", handStrength).
		Msg("Previewing table")

	for _, seat := range roster {
		if seat.Human {
			fmt.Printf("Seat %d: your move\n\n", seat.Number)
			continue
		}

		chips, err := sess.BuyIn(seat.Number)
		if err != nil {
			return err
		}

		decision, err := sess.DecideFor(seat.Number, gameCtx, handStrength, chips)
		if err != nil {
			return err
		}

		name := fmt.Sprintf("Seat %d (%s)", seat.Number, seat.Preset)
		fmt.Println(display.DecisionReport(name, decision, tier, handStrength))
	}

	return nil
}
