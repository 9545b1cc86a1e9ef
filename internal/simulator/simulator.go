package simulator

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/Gameaday/pokermon/internal/ai"
	"github.com/Gameaday/pokermon/internal/battle"
	"github.com/Gameaday/pokermon/internal/monster"
	"github.com/Gameaday/pokermon/internal/randutil"
	"github.com/Gameaday/pokermon/internal/statistics"
)

// DecisionConfig holds configuration for running decision simulations
type DecisionConfig struct {
	Preset string
	Trials int
	Seed   int64
	Logger *log.Logger
}

// ActionTally aggregates the decisions a preset made across simulated spots
type ActionTally struct {
	Preset string
	Trials int
	Folds  int
	Checks int
	Calls  int
	Raises int
	AllIns int // subset of Raises

	RaiseSizes statistics.Sample // chip amounts of raising decisions
}

// FoldRate returns the fraction of trials that folded
func (t *ActionTally) FoldRate() float64 {
	if t.Trials == 0 {
		return 0
	}
	return float64(t.Folds) / float64(t.Trials)
}

// CallRate returns the fraction of trials that checked or called
func (t *ActionTally) CallRate() float64 {
	if t.Trials == 0 {
		return 0
	}
	return float64(t.Checks+t.Calls) / float64(t.Trials)
}

// RaiseRate returns the fraction of trials that raised, all-ins included
func (t *ActionTally) RaiseRate() float64 {
	if t.Trials == 0 {
		return 0
	}
	return float64(t.Raises) / float64(t.Trials)
}

// AverageRaise returns the mean chip amount across raising decisions
func (t *ActionTally) AverageRaise() float64 {
	return t.RaiseSizes.Mean()
}

func (t *ActionTally) record(dec ai.Decision) {
	t.Trials++
	switch {
	case dec.Action == ai.ActionFold:
		t.Folds++
	case dec.Action == ai.ActionCheck:
		t.Checks++
	case dec.Action == ai.ActionCall:
		t.Calls++
	case dec.Action.IsRaise():
		t.Raises++
		if dec.Action == ai.ActionAllIn {
			t.AllIns++
		}
		t.RaiseSizes.Add(float64(dec.Amount))
	}
}

// Validate checks that the tally accounting is consistent
func (t *ActionTally) Validate() error {
	if t.Trials <= 0 {
		return fmt.Errorf("invalid trial count: %d", t.Trials)
	}
	total := t.Folds + t.Checks + t.Calls + t.Raises
	if total != t.Trials {
		return fmt.Errorf("action totals (%d) do not match trial count (%d)", total, t.Trials)
	}
	if t.AllIns > t.Raises {
		return fmt.Errorf("all-ins (%d) exceed raises (%d)", t.AllIns, t.Raises)
	}
	if t.RaiseSizes.Count != t.Raises {
		return fmt.Errorf("raise size samples (%d) do not match raise count (%d)", t.RaiseSizes.Count, t.Raises)
	}
	return nil
}

// DecisionSimulator runs one preset through randomized poker spots
type DecisionSimulator struct {
	config DecisionConfig
}

// NewDecisions creates a decision simulator with the given configuration
func NewDecisions(config DecisionConfig) *DecisionSimulator {
	return &DecisionSimulator{config: config}
}

// Run executes the simulation and returns the action tally
func (s *DecisionSimulator) Run() (*ActionTally, error) {
	cfg := s.config
	if cfg.Trials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", cfg.Trials)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	profile, err := ai.ProfileFor(cfg.Preset)
	if err != nil {
		return nil, err
	}

	tally := &ActionTally{Preset: cfg.Preset}
	for trial := 0; trial < cfg.Trials; trial++ {
		// Independent seed per trial so any spot replays on its own
		trialSeed := cfg.Seed + int64(trial)
		rng := randutil.New(trialSeed)

		gameCtx := randomSpot(rng)
		strength := rng.Float64()
		chips := 200 + rng.IntN(1801)

		dec, err := ai.NewEngine(rng).Decide(profile, gameCtx, strength, chips)
		if err != nil {
			return nil, fmt.Errorf("trial %d (seed %d): %w", trial, trialSeed, err)
		}
		tally.record(dec)
	}

	if err := tally.Validate(); err != nil {
		return nil, fmt.Errorf("tally validation failed: %w", err)
	}

	logger.Debug("decision simulation complete",
		"preset", cfg.Preset,
		"trials", tally.Trials,
		"fold_rate", tally.FoldRate(),
		"raise_rate", tally.RaiseRate())
	return tally, nil
}

// randomSpot draws a betting situation to put in front of the engine.
// Roughly one spot in ten is unopened so check lines show up in the tally.
func randomSpot(rng *rand.Rand) ai.GameContext {
	bet := 0
	if rng.IntN(10) > 0 {
		bet = 10 * (1 + rng.IntN(20))
	}
	pot := 20 + rng.IntN(400) + bet
	return ai.GameContext{
		CurrentBet:       bet,
		PotSize:          pot,
		PlayersRemaining: 2 + rng.IntN(5),
		BettingRound:     1 + rng.IntN(4),
		LastToAct:        rng.IntN(2) == 0,
		ChipRatio:        randutil.Uniform(rng, 0.25, 4.0),
	}
}

// BattleConfig holds configuration for running battle simulations
type BattleConfig struct {
	Player        string
	PlayerLevel   int
	Opponent      string
	OpponentLevel int
	HandBonusPct  int
	TurnCap       int
	Trials        int
	Workers       int
	Seed          int64
	Logger        *log.Logger
}

// BattleTally aggregates the outcomes of a repeated matchup
type BattleTally struct {
	Trials       int
	PlayerWins   int
	OpponentWins int
	Draws        int

	Turns statistics.Sample // fight lengths in turns
}

// PlayerWinRate returns the fraction of trials the player corner won
func (t *BattleTally) PlayerWinRate() float64 {
	if t.Trials == 0 {
		return 0
	}
	return float64(t.PlayerWins) / float64(t.Trials)
}

// OpponentWinRate returns the fraction of trials the opponent corner won
func (t *BattleTally) OpponentWinRate() float64 {
	if t.Trials == 0 {
		return 0
	}
	return float64(t.OpponentWins) / float64(t.Trials)
}

// DrawRate returns the fraction of trials that hit the turn cap
func (t *BattleTally) DrawRate() float64 {
	if t.Trials == 0 {
		return 0
	}
	return float64(t.Draws) / float64(t.Trials)
}

// Validate checks that the tally accounting is consistent
func (t *BattleTally) Validate() error {
	if t.Trials <= 0 {
		return fmt.Errorf("invalid trial count: %d", t.Trials)
	}
	total := t.PlayerWins + t.OpponentWins + t.Draws
	if total != t.Trials {
		return fmt.Errorf("outcome totals (%d) do not match trial count (%d)", total, t.Trials)
	}
	if t.Turns.Count != t.Trials {
		return fmt.Errorf("turn samples (%d) do not match trial count (%d)", t.Turns.Count, t.Trials)
	}
	return nil
}

// BattleSimulator runs a fixed matchup repeatedly and tallies the outcomes
type BattleSimulator struct {
	config BattleConfig
	db     *monster.Database
}

// NewBattles creates a battle simulator backed by the given bestiary
func NewBattles(config BattleConfig, db *monster.Database) *BattleSimulator {
	return &BattleSimulator{config: config, db: db}
}

type fightRecord struct {
	outcome battle.Outcome
	turns   int
}

// Run executes the simulation and returns the battle tally. Trials are
// spread across workers; per-trial seeding keeps the tally identical for
// any worker count.
func (s *BattleSimulator) Run() (*BattleTally, error) {
	cfg := s.config
	if cfg.Trials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", cfg.Trials)
	}
	if s.db == nil {
		return nil, fmt.Errorf("battle simulation requires a bestiary")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	// Surface bad species names before any worker starts
	if _, err := s.db.ByName(cfg.Player); err != nil {
		return nil, err
	}
	if _, err := s.db.ByName(cfg.Opponent); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers > 8 {
			workers = 8
		}
	}
	if workers > cfg.Trials {
		workers = cfg.Trials
	}

	records := make([]fightRecord, cfg.Trials)
	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		start := w
		g.Go(func() error {
			for trial := start; trial < cfg.Trials; trial += workers {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				rec, err := s.runFight(cfg.Seed+int64(trial), logger)
				if err != nil {
					return fmt.Errorf("battle %d (seed %d): %w", trial, cfg.Seed+int64(trial), err)
				}
				records[trial] = rec
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tally := &BattleTally{}
	for _, rec := range records {
		tally.Trials++
		switch rec.outcome {
		case battle.OutcomePlayerWin:
			tally.PlayerWins++
		case battle.OutcomeOpponentWin:
			tally.OpponentWins++
		default:
			tally.Draws++
		}
		tally.Turns.Add(float64(rec.turns))
	}

	if err := tally.Validate(); err != nil {
		return nil, fmt.Errorf("tally validation failed: %w", err)
	}

	logger.Debug("battle simulation complete",
		"player", cfg.Player,
		"opponent", cfg.Opponent,
		"trials", tally.Trials,
		"player_win_rate", tally.PlayerWinRate(),
		"mean_turns", tally.Turns.Mean())
	return tally, nil
}

func (s *BattleSimulator) runFight(seed int64, logger *log.Logger) (fightRecord, error) {
	player, err := s.db.Spawn(s.config.Player, s.config.PlayerLevel)
	if err != nil {
		return fightRecord{}, err
	}
	opponent, err := s.db.Spawn(s.config.Opponent, s.config.OpponentLevel)
	if err != nil {
		return fightRecord{}, err
	}

	var opts []battle.Option
	if s.config.TurnCap > 0 {
		opts = append(opts, battle.WithTurnCap(s.config.TurnCap))
	}
	if s.config.HandBonusPct > 0 {
		opts = append(opts, battle.WithHandBonus(s.config.HandBonusPct))
	}

	engine := battle.NewEngineSeeded(seed, logger)
	res, err := engine.Fight(player, opponent, opts...)
	if err != nil {
		return fightRecord{}, err
	}
	return fightRecord{outcome: res.Outcome, turns: res.Turns}, nil
}

// RunDecisions is a convenience function for simulating a preset with basic parameters
func RunDecisions(preset string, trials int, seed int64, logger *log.Logger) (*ActionTally, error) {
	return NewDecisions(DecisionConfig{
		Preset: preset,
		Trials: trials,
		Seed:   seed,
		Logger: logger,
	}).Run()
}

// RunBattles is a convenience function for simulating a matchup at one level
func RunBattles(db *monster.Database, player, opponent string, level, trials int, seed int64, logger *log.Logger) (*BattleTally, error) {
	return NewBattles(BattleConfig{
		Player:        player,
		PlayerLevel:   level,
		Opponent:      opponent,
		OpponentLevel: level,
		Trials:        trials,
		Seed:          seed,
		Logger:        logger,
	}, db).Run()
}
