package main

import (
	"fmt"

	"github.com/Gameaday/pokermon/cmd/pokermon/shared"
	"github.com/Gameaday/pokermon/internal/battle"
	"github.com/Gameaday/pokermon/internal/display"
	"github.com/Gameaday/pokermon/internal/monster"
	"github.com/Gameaday/pokermon/internal/strength"
)

// BattleCmd fights one battle and prints the transcript
type BattleCmd struct {
	Player        string `kong:"required,help='Player-side species name'"`
	Opponent      string `kong:"required,help='Opponent species name'"`
	PlayerLevel   int    `kong:"default='5',help='Player-side level'"`
	OpponentLevel int    `kong:"default='5',help='Opponent level'"`
	HandScore     int    `kong:"default='0',help='Raw evaluator hand score feeding the damage bonus'"`
	TurnCap       int    `kong:"default='0',help='Turn cap override (0 uses the engine default)'"`
	Debug         bool   `kong:"help='Enable debug logging'"`
	Seed          *int64 `kong:"help='Deterministic RNG seed (optional)'"`
}

func (c *BattleCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	db, err := monster.Load()
	if err != nil {
		return err
	}

	player, err := db.Spawn(c.Player, c.PlayerLevel)
	if err != nil {
		return err
	}
	opponent, err := db.Spawn(c.Opponent, c.OpponentLevel)
	if err != nil {
		return err
	}

	fmt.Println(display.MonsterCard(player))
	fmt.Println(display.MonsterCard(opponent))

	seed := seedOrNow(c.Seed)
	bonus := strength.BattleBonusPercent(c.HandScore)
	logger.Info().
		Int64("seed", seed).
		Int("hand_bonus_pct", bonus).
		Msg("Starting battle")

	opts := make([]battle.Option, 0, 2)
	if bonus > 0 {
		opts = append(opts, battle.WithHandBonus(bonus))
	}
	if c.TurnCap > 0 {
		opts = append(opts, battle.WithTurnCap(c.TurnCap))
	}

	result, err := battle.NewEngineSeeded(seed, shared.EngineLogger(c.Debug, "")).Fight(player, opponent, opts...)
	if err != nil {
		return err
	}

	fmt.Println(display.BattleTranscript(result))
	return nil
}
