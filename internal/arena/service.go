package arena

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/Gameaday/pokermon/internal/ai"
	"github.com/Gameaday/pokermon/internal/battle"
	"github.com/Gameaday/pokermon/internal/monster"
	"github.com/Gameaday/pokermon/internal/strength"
)

// DefaultTimeout bounds how long a single request may run before the arena
// abandons it and reports an error to the client.
const DefaultTimeout = 2 * time.Second

// defaultBattleLevel is used when a battle request leaves a level at zero.
const defaultBattleLevel = 5

// ErrTimeout is returned when a request exceeds the service timeout.
var ErrTimeout = errors.New("timed out")

// ErrNoBestiary is returned for battle and bestiary requests when the
// service was built without a species database.
var ErrNoBestiary = errors.New("no bestiary loaded")

// Service answers arena requests. It is safe for concurrent use: every
// request runs on its own seeded engine, so two clients can never bleed
// randomness into each other's results.
type Service struct {
	db       *monster.Database
	clock    quartz.Clock
	timeout  time.Duration
	logger   *log.Logger
	baseSeed int64
	requests atomic.Int64
}

// NewService builds a service around the given bestiary. A nil db is
// allowed and limits the service to decision and preset traffic. A zero
// timeout means DefaultTimeout, a nil clock means the real one, and a zero
// seed derives one from the wall clock.
func NewService(db *monster.Database, seed int64, timeout time.Duration, clock quartz.Clock, logger *log.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.Default()
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Service{
		db:       db,
		clock:    clock,
		timeout:  timeout,
		logger:   logger,
		baseSeed: seed,
	}
}

// requestSeed picks the generator seed for one request. An explicit client
// seed wins; otherwise each request gets the next offset from the service
// base so responses stay replayable.
func (s *Service) requestSeed(override *int64) int64 {
	if override != nil {
		return *override
	}
	return s.baseSeed + s.requests.Add(1)
}

type decisionOutcome struct {
	dec ai.Decision
	err error
}

type battleOutcome struct {
	res *battle.Result
	err error
}

// Decide resolves one betting decision request.
func (s *Service) Decide(req DecisionRequestData) (DecisionResponseData, error) {
	profile, err := s.resolveProfile(req)
	if err != nil {
		return DecisionResponseData{}, err
	}
	if req.Chips < 0 {
		return DecisionResponseData{}, errors.New("chips must not be negative")
	}

	gameCtx := ai.GameContext{
		CurrentBet:       req.CurrentBet,
		PotSize:          req.PotSize,
		PlayersRemaining: req.PlayersRemaining,
		BettingRound:     req.BettingRound,
		LastToAct:        req.LastToAct,
		ChipRatio:        req.ChipRatio,
	}

	handStrength := strength.Assess(req.HandScore)
	seed := s.requestSeed(req.Seed)

	resultCh := make(chan decisionOutcome, 1)
	go func() {
		dec, decErr := ai.NewEngineSeeded(seed).Decide(profile, gameCtx, handStrength, req.Chips)
		resultCh <- decisionOutcome{dec: dec, err: decErr}
	}()

	dec, err := s.awaitDecision(resultCh)
	if err != nil {
		return DecisionResponseData{}, err
	}

	s.logger.Debug("Decision served",
		"preset", req.Preset,
		"action", dec.Action.String(),
		"amount", dec.Amount,
		"seed", seed)

	return DecisionResponseData{
		Preset:    req.Preset,
		Action:    dec.Action.String(),
		Amount:    dec.Amount,
		Reasoning: dec.Reasoning,
		HandTier:  strength.Describe(req.HandScore),
		Strength:  handStrength,
		Seed:      seed,
	}, nil
}

// resolveProfile turns the personality half of a decision request into a
// behavior profile. Exactly one of preset or traits must be present.
func (s *Service) resolveProfile(req DecisionRequestData) (ai.BehaviorProfile, error) {
	switch {
	case req.Preset != "" && req.Traits != nil:
		return ai.BehaviorProfile{}, errors.New("decision request sets both preset and traits")
	case req.Preset != "":
		return ai.ProfileFor(req.Preset)
	case req.Traits != nil:
		return ai.NewBehaviorProfile(req.Traits.Vector())
	default:
		return ai.BehaviorProfile{}, errors.New("decision request needs a preset or a trait vector")
	}
}

// Battle stages one fight between two bestiary species and returns the
// result with its transcript.
func (s *Service) Battle(req BattleRequestData) (BattleResponseData, error) {
	if s.db == nil {
		return BattleResponseData{}, ErrNoBestiary
	}

	playerLevel := req.PlayerLevel
	if playerLevel <= 0 {
		playerLevel = defaultBattleLevel
	}
	opponentLevel := req.OpponentLevel
	if opponentLevel <= 0 {
		opponentLevel = defaultBattleLevel
	}

	player, err := s.db.Spawn(req.Player, playerLevel)
	if err != nil {
		return BattleResponseData{}, fmt.Errorf("player side: %w", err)
	}
	opponent, err := s.db.Spawn(req.Opponent, opponentLevel)
	if err != nil {
		return BattleResponseData{}, fmt.Errorf("opponent side: %w", err)
	}

	bonus := strength.BattleBonusPercent(req.HandScore)
	seed := s.requestSeed(req.Seed)

	opts := make([]battle.Option, 0, 2)
	if bonus > 0 {
		opts = append(opts, battle.WithHandBonus(bonus))
	}
	if req.TurnCap > 0 {
		opts = append(opts, battle.WithTurnCap(req.TurnCap))
	}

	resultCh := make(chan battleOutcome, 1)
	go func() {
		res, fightErr := battle.NewEngineSeeded(seed, s.logger).Fight(player, opponent, opts...)
		resultCh <- battleOutcome{res: res, err: fightErr}
	}()

	res, err := s.awaitBattle(resultCh)
	if err != nil {
		return BattleResponseData{}, err
	}

	resp := BattleResponseData{
		Outcome:    res.Outcome.String(),
		Turns:      res.Turns,
		ExpAwarded: res.ExpAwarded,
		HandBonus:  bonus,
		Seed:       seed,
		Events:     res.Events,
	}
	if side, ok := res.Winner(); ok {
		resp.Winner = side.String()
	}

	s.logger.Debug("Battle served",
		"player", req.Player,
		"opponent", req.Opponent,
		"outcome", resp.Outcome,
		"turns", res.Turns,
		"seed", seed)

	return resp, nil
}

// awaitDecision waits for the engine goroutine or the service timeout,
// whichever fires first.
func (s *Service) awaitDecision(resultCh <-chan decisionOutcome) (ai.Decision, error) {
	timedOut := make(chan struct{})
	timer := s.clock.AfterFunc(s.timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case out := <-resultCh:
		return out.dec, out.err
	case <-timedOut:
		return ai.Decision{}, fmt.Errorf("decision %w after %s", ErrTimeout, s.timeout)
	}
}

// awaitBattle is the battle-side twin of awaitDecision.
func (s *Service) awaitBattle(resultCh <-chan battleOutcome) (*battle.Result, error) {
	timedOut := make(chan struct{})
	timer := s.clock.AfterFunc(s.timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case out := <-resultCh:
		return out.res, out.err
	case <-timedOut:
		return nil, fmt.Errorf("battle %w after %s", ErrTimeout, s.timeout)
	}
}

// Presets lists every built-in personality with its trait vector and
// derived table rating.
func (s *Service) Presets() PresetListData {
	roster := ai.Presets()
	data := PresetListData{Presets: make([]PresetInfo, 0, len(roster))}
	for _, p := range roster {
		data.Presets = append(data.Presets, presetInfoFrom(p))
	}
	return data
}

// Bestiary lists every species the service can field.
func (s *Service) Bestiary() (BestiaryListData, error) {
	if s.db == nil {
		return BestiaryListData{}, ErrNoBestiary
	}
	defs := s.db.All()
	data := BestiaryListData{Species: make([]SpeciesInfo, 0, len(defs))}
	for _, d := range defs {
		data.Species = append(data.Species, speciesInfoFrom(d))
	}
	return data, nil
}
