package main

import (
	"fmt"

	"github.com/Gameaday/pokermon/cmd/pokermon/shared"
	"github.com/Gameaday/pokermon/internal/display"
	"github.com/Gameaday/pokermon/internal/monster"
	"github.com/Gameaday/pokermon/internal/randutil"
	"github.com/Gameaday/pokermon/internal/simulator"
	"github.com/Gameaday/pokermon/internal/strength"
)

// SimulateCmd is the root command for the repeated-run analyses.
type SimulateCmd struct {
	Decisions SimulateDecisionsCmd `cmd:"decisions" help:"Run one preset through many randomised spots"`
	Battles   SimulateBattlesCmd   `cmd:"battles" help:"Run one matchup many times"`
}

// SimulateDecisionsCmd profiles how a personality bets over many spots.
type SimulateDecisionsCmd struct {
	Preset string `kong:"default='random',help='Personality preset name, or random'"`
	Trials int    `kong:"default='1000',help='Number of decisions to simulate'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
	Seed   *int64 `kong:"help='Deterministic RNG seed (optional)'"`
}

func (c *SimulateDecisionsCmd) Run() error {
	seed := seedOrNow(c.Seed)

	preset, err := resolvePreset(c.Preset, randutil.New(seed))
	if err != nil {
		return err
	}

	tally, err := simulator.RunDecisions(preset.Name, c.Trials, seed, shared.EngineLogger(c.Debug, ""))
	if err != nil {
		return err
	}

	fmt.Println(display.DecisionStatsTable(tally))
	return nil
}

// SimulateBattlesCmd estimates win rates and fight lengths for one matchup.
type SimulateBattlesCmd struct {
	Player        string `kong:"required,help='Player-side species name'"`
	Opponent      string `kong:"required,help='Opponent species name'"`
	PlayerLevel   int    `kong:"default='5',help='Player-side level'"`
	OpponentLevel int    `kong:"default='5',help='Opponent level'"`
	HandScore     int    `kong:"default='0',help='Raw evaluator hand score feeding the damage bonus'"`
	Trials        int    `kong:"default='500',help='Number of battles to simulate'"`
	Workers       int    `kong:"default='0',help='Concurrent workers (0 picks one per CPU)'"`
	Debug         bool   `kong:"help='Enable debug logging'"`
	Seed          *int64 `kong:"help='Deterministic RNG seed (optional)'"`
}

func (c *SimulateBattlesCmd) Run() error {
	db, err := monster.Load()
	if err != nil {
		return err
	}

	tally, err := simulator.NewBattles(simulator.BattleConfig{
		Player:        c.Player,
		PlayerLevel:   c.PlayerLevel,
		Opponent:      c.Opponent,
		OpponentLevel: c.OpponentLevel,
		HandBonusPct:  strength.BattleBonusPercent(c.HandScore),
		Trials:        c.Trials,
		Workers:       c.Workers,
		Seed:          seedOrNow(c.Seed),
		Logger:        shared.EngineLogger(c.Debug, ""),
	}, db).Run()
	if err != nil {
		return err
	}

	fmt.Println(display.BattleStatsTable(tally))
	return nil
}
