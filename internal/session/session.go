package session

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/Gameaday/pokermon/internal/ai"
	"github.com/Gameaday/pokermon/internal/battle"
	"github.com/Gameaday/pokermon/internal/monster"
	"github.com/Gameaday/pokermon/internal/randutil"
)

// DefaultStartingChips is the stake a seat buys in for when the config does
// not say otherwise.
const DefaultStartingChips = 1000

// Sentinel errors callers branch on.
var (
	ErrUnknownSeat   = errors.New("unknown seat")
	ErrHumanSeat     = errors.New("human seat has no AI profile")
	ErrNegativeChips = errors.New("chips must not be negative")
	ErrNoMonster     = errors.New("no monster attached")
)

// Settings tune one session. The zero value is usable: a zero seed derives
// one from the clock, zero chips fall back to the default stake.
type Settings struct {
	Seed          int64 `hcl:"seed,optional"`
	StartingChips int   `hcl:"starting_chips,optional"`
	BattleTurnCap int   `hcl:"battle_turn_cap,optional"`
}

// seat is one roster slot. AI seats carry a profile and their own decision
// engine; human seats carry neither. Either kind can have a monster.
type seat struct {
	number   int
	human    bool
	preset   string
	profile  ai.BehaviorProfile
	engine   *ai.Engine
	attached *monster.Monster
}

// SeatInfo is the read-only roster view of one seat.
type SeatInfo struct {
	Number       int    `json:"number"`
	Human        bool   `json:"human"`
	Preset       string `json:"preset,omitempty"`
	MonsterName  string `json:"monster,omitempty"`
	MonsterLevel int    `json:"monster_level,omitempty"`
}

// Session is a live roster. Safe for concurrent use; per-seat engines are
// serialized under the session lock.
type Session struct {
	mu       sync.Mutex
	settings Settings
	seats    map[int]*seat
	rng      *rand.Rand
	logger   *log.Logger
}

// New builds an empty roster. A nil logger falls back to the package
// default logger.
func New(settings Settings, logger *log.Logger) *Session {
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}
	if settings.StartingChips <= 0 {
		settings.StartingChips = DefaultStartingChips
	}
	if settings.BattleTurnCap <= 0 {
		settings.BattleTurnCap = battle.DefaultTurnCap
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Session{
		settings: settings,
		seats:    make(map[int]*seat),
		rng:      randutil.New(settings.Seed),
		logger:   logger,
	}
	s.logger.Debug("session ready", "seed", settings.Seed, "starting_chips", settings.StartingChips)
	return s
}

// Seed returns the seed this session runs on, for replaying a run.
func (s *Session) Seed() int64 { return s.settings.Seed }

// StartingChips is the configured base stake before monster perks.
func (s *Session) StartingChips() int { return s.settings.StartingChips }

// AssignPersonality gives a seat an AI personality, creating the seat if
// needed. Reassigning reseeds the seat's engine, so a roster rebuilt in the
// same order replays identically.
func (s *Session) AssignPersonality(number int, presetName string) error {
	if number < 0 {
		return fmt.Errorf("seat number must not be negative, got %d", number)
	}
	preset, err := ai.PresetByName(presetName)
	if err != nil {
		return err
	}
	profile, err := ai.NewBehaviorProfile(preset.Traits)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.ensureSeat(number)
	st.human = false
	st.preset = preset.Name
	st.profile = profile
	st.engine = ai.NewEngineSeeded(s.settings.Seed + int64(number))
	s.logger.Debug("personality assigned", "seat", number, "preset", preset.Name)
	return nil
}

// AssignRandom gives a seat a personality drawn from the preset roster and
// returns the drawn name. Draws come off the session generator, so a fixed
// seed fixes the whole table.
func (s *Session) AssignRandom(number int) (string, error) {
	if number < 0 {
		return "", fmt.Errorf("seat number must not be negative, got %d", number)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	preset := ai.RandomPreset(s.rng)
	profile, err := ai.NewBehaviorProfile(preset.Traits)
	if err != nil {
		return "", err
	}
	st := s.ensureSeat(number)
	st.human = false
	st.preset = preset.Name
	st.profile = profile
	st.engine = ai.NewEngineSeeded(s.settings.Seed + int64(number))
	s.logger.Debug("personality assigned", "seat", number, "preset", preset.Name, "random", true)
	return preset.Name, nil
}

// MarkHuman registers a seat as human controlled, creating it if needed and
// dropping any AI profile it had. Decisions for it must come from outside.
func (s *Session) MarkHuman(number int) error {
	if number < 0 {
		return fmt.Errorf("seat number must not be negative, got %d", number)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.ensureSeat(number)
	st.human = true
	st.preset = ""
	st.profile = ai.BehaviorProfile{}
	st.engine = nil
	return nil
}

// Profile returns the seat's behavior profile. Asking for the human seat's
// profile is a caller bug and fails loudly.
func (s *Session) Profile(number int) (ai.BehaviorProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.seats[number]
	if !ok {
		return ai.BehaviorProfile{}, fmt.Errorf("%w: %d", ErrUnknownSeat, number)
	}
	if st.human {
		return ai.BehaviorProfile{}, fmt.Errorf("%w: seat %d", ErrHumanSeat, number)
	}
	return st.profile, nil
}

// DecideFor resolves one action point for an AI seat. A luck-enhancing
// monster attached to the seat nudges the perceived strength before the
// engine sees it. Negative chips are rejected here: the engine's
// all-in-behind rule covers a zero stack, not corrupted state.
func (s *Session) DecideFor(number int, ctx ai.GameContext, handStrength float64, chips int) (ai.Decision, error) {
	if chips < 0 {
		return ai.Decision{}, fmt.Errorf("%w: seat %d holds %d", ErrNegativeChips, number, chips)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.seats[number]
	if !ok {
		return ai.Decision{}, fmt.Errorf("%w: %d", ErrUnknownSeat, number)
	}
	if st.human {
		return ai.Decision{}, fmt.Errorf("%w: seat %d", ErrHumanSeat, number)
	}

	strength := handStrength
	if st.attached != nil {
		strength = st.attached.Effect().ApplyLuck(strength)
	}
	dec, err := st.engine.Decide(st.profile, ctx, strength, chips)
	if err != nil {
		return ai.Decision{}, fmt.Errorf("seat %d (%s): %w", number, st.preset, err)
	}
	s.logger.Debug("decision",
		"seat", number, "preset", st.preset,
		"action", dec.Action, "amount", dec.Amount, "reasoning", dec.Reasoning)
	return dec, nil
}

// AttachMonster puts a monster in a seat's corner. Both AI and human seats
// can hold one; reattaching replaces the previous monster.
func (s *Session) AttachMonster(number int, m *monster.Monster) error {
	if m == nil {
		return errors.New("cannot attach a nil monster")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.seats[number]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownSeat, number)
	}
	st.attached = m
	s.logger.Debug("monster attached", "seat", number, "monster", m.Name(), "level", m.Stats().Level())
	return nil
}

// MonsterOf returns the seat's attached monster.
func (s *Session) MonsterOf(number int) (*monster.Monster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.seats[number]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeat, number)
	}
	if st.attached == nil {
		return nil, fmt.Errorf("%w: seat %d", ErrNoMonster, number)
	}
	return st.attached, nil
}

// SeatEffect returns the poker perk granted by the seat's monster. A seat
// with no monster gets the zero effect, which grants nothing.
func (s *Session) SeatEffect(number int) (monster.Effect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.seats[number]
	if !ok {
		return monster.Effect{}, fmt.Errorf("%w: %d", ErrUnknownSeat, number)
	}
	if st.attached == nil {
		return monster.Effect{}, nil
	}
	return st.attached.Effect(), nil
}

// BuyIn is the configured stake plus the seat's chip-bonus perk.
func (s *Session) BuyIn(number int) (int, error) {
	effect, err := s.SeatEffect(number)
	if err != nil {
		return 0, err
	}
	return s.settings.StartingChips + effect.BonusChips(), nil
}

// ApplyBattleResult grants a won fight's experience to the seat's attached
// monster and reports how many levels it gained. Draws and losses change
// nothing.
func (s *Session) ApplyBattleResult(number int, res *battle.Result) (levelsGained int, err error) {
	if res == nil {
		return 0, errors.New("nil battle result")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.seats[number]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownSeat, number)
	}
	if st.attached == nil {
		return 0, fmt.Errorf("%w: seat %d", ErrNoMonster, number)
	}
	if res.Outcome != battle.OutcomePlayerWin {
		return 0, nil
	}

	before := st.attached.Stats().Level()
	if err := st.attached.Stats().GainExperience(res.ExpAwarded); err != nil {
		return 0, fmt.Errorf("seat %d: %w", number, err)
	}
	gained := st.attached.Stats().Level() - before
	s.logger.Debug("experience applied",
		"seat", number, "monster", st.attached.Name(),
		"exp", res.ExpAwarded, "levels_gained", gained)
	return gained, nil
}

// Roster returns every seat in number order.
func (s *Session) Roster() []SeatInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SeatInfo, 0, len(s.seats))
	for _, st := range s.seats {
		info := SeatInfo{
			Number: st.number,
			Human:  st.human,
			Preset: st.preset,
		}
		if st.attached != nil {
			info.MonsterName = st.attached.Name()
			info.MonsterLevel = st.attached.Stats().Level()
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Clear empties the roster. The session keeps its seed, so rebuilding the
// same roster in the same order replays the same personalities.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seats = make(map[int]*seat)
	s.logger.Debug("roster cleared")
}

func (s *Session) ensureSeat(number int) *seat {
	st, ok := s.seats[number]
	if !ok {
		st = &seat{number: number}
		s.seats[number] = st
	}
	return st
}
