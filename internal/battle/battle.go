package battle

import (
	"errors"
	"fmt"
	"io"

	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/Gameaday/pokermon/internal/monster"
	"github.com/Gameaday/pokermon/internal/randutil"
)

// DefaultTurnCap bounds how long a fight can run before it is scored a
// draw. Two stalling policies would otherwise never terminate, so the cap
// is load-bearing.
const DefaultTurnCap = 50

// damageRollFloor is the low end of the per-hit variance roll.
const damageRollFloor = 0.85

// Outcome is the final scoring of a fight.
type Outcome int

const (
	// OutcomeDraw means the turn cap elapsed with both sides standing
	OutcomeDraw Outcome = iota
	// OutcomePlayerWin means the opponent fainted first
	OutcomePlayerWin
	// OutcomeOpponentWin means the player's monster fainted first
	OutcomeOpponentWin
)

// String returns the wire name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeDraw:
		return "draw"
	case OutcomePlayerWin:
		return "player-win"
	case OutcomeOpponentWin:
		return "opponent-win"
	default:
		return "unknown"
	}
}

// Result is the record of a finished fight. The monsters themselves are
// mutated in place; the result carries the story and the reward. The engine
// never applies ExpAwarded, that is the caller's call to make.
type Result struct {
	Outcome    Outcome `json:"outcome"`
	Turns      int     `json:"turns"`
	ExpAwarded int     `json:"exp_awarded"`
	Events     []Event `json:"events"`
}

// Winner returns the winning side; ok is false on a draw.
func (r *Result) Winner() (side Side, ok bool) {
	switch r.Outcome {
	case OutcomePlayerWin:
		return SidePlayer, true
	case OutcomeOpponentWin:
		return SideOpponent, true
	default:
		return SidePlayer, false
	}
}

func (r *Result) record(ev Event) {
	r.Events = append(r.Events, ev)
}

// Option tunes one fight.
type Option func(*config)

type config struct {
	turnCap        int
	handBonusPct   int
	playerPolicy   SelectionPolicy
	opponentPolicy SelectionPolicy
}

// WithHandBonus grants the player side a percent damage bonus for the whole
// fight. The percent comes from the poker bridge and is locked in at setup;
// later hands do not re-price a running battle.
func WithHandBonus(percent int) Option {
	return func(c *config) { c.handBonusPct = percent }
}

// WithTurnCap overrides the draw cutoff.
func WithTurnCap(turns int) Option {
	return func(c *config) { c.turnCap = turns }
}

// WithPlayerPolicy overrides move selection for the player side.
func WithPlayerPolicy(p SelectionPolicy) Option {
	return func(c *config) { c.playerPolicy = p }
}

// WithOpponentPolicy overrides move selection for the opponent side.
func WithOpponentPolicy(p SelectionPolicy) Option {
	return func(c *config) { c.opponentPolicy = p }
}

// Engine runs fights. It owns its generator and is not safe for concurrent
// use; give each goroutine its own engine, seeded per run when replays
// matter.
type Engine struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewEngine wraps an existing generator. A nil logger discards the battle
// narration.
func NewEngine(rng *rand.Rand, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{rng: rng, logger: logger}
}

// NewEngineSeeded builds an engine with its own deterministic generator.
func NewEngineSeeded(seed int64, logger *log.Logger) *Engine {
	return NewEngine(randutil.New(seed), logger)
}

// fighter binds a monster to its corner for the duration of one fight.
type fighter struct {
	side     Side
	monster  *monster.Monster
	policy   SelectionPolicy
	bonusPct int
}

// Fight runs one battle to completion and returns its record. Both
// monsters must be standing; the fight mutates their HP in place and leaves
// levels and experience untouched.
func (e *Engine) Fight(player, opponent *monster.Monster, opts ...Option) (*Result, error) {
	if player == nil || opponent == nil {
		return nil, errors.New("both corners need a monster")
	}
	if player == opponent {
		return nil, errors.New("a monster cannot fight itself")
	}
	if player.IsFainted() {
		return nil, fmt.Errorf("%s is fainted and cannot fight", player.Name())
	}
	if opponent.IsFainted() {
		return nil, fmt.Errorf("%s is fainted and cannot fight", opponent.Name())
	}

	cfg := config{turnCap: DefaultTurnCap}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.playerPolicy == nil {
		cfg.playerPolicy = BasicAttack
	}
	if cfg.opponentPolicy == nil {
		cfg.opponentPolicy = BasicAttack
	}
	if cfg.turnCap < 1 {
		return nil, fmt.Errorf("turn cap must be positive, got %d", cfg.turnCap)
	}
	if cfg.handBonusPct < 0 || cfg.handBonusPct > 100 {
		return nil, fmt.Errorf("hand bonus percent %d outside 0..100", cfg.handBonusPct)
	}

	p := &fighter{side: SidePlayer, monster: player, policy: cfg.playerPolicy, bonusPct: cfg.handBonusPct}
	o := &fighter{side: SideOpponent, monster: opponent, policy: cfg.opponentPolicy}

	startMsg := fmt.Sprintf("%s challenges %s", player, opponent)
	if cfg.handBonusPct > 0 {
		startMsg += fmt.Sprintf(", carrying a +%d%% hand bonus", cfg.handBonusPct)
	}

	result := &Result{}
	result.record(Event{
		Type:    EventBattleStart,
		Message: startMsg,
	})
	e.logger.Debug("battle start",
		"player", player.Name(), "opponent", opponent.Name(),
		"bonus_pct", cfg.handBonusPct, "turn_cap", cfg.turnCap)

	for turn := 1; turn <= cfg.turnCap; turn++ {
		first, second := e.order(p, o)
		if e.takeTurn(result, turn, first, second) {
			return e.finish(result, turn, first, second), nil
		}
		if e.takeTurn(result, turn, second, first) {
			return e.finish(result, turn, second, first), nil
		}
	}

	result.Turns = cfg.turnCap
	result.Outcome = OutcomeDraw
	result.record(Event{
		Type:    EventTurnCap,
		Turn:    cfg.turnCap,
		Message: fmt.Sprintf("neither side fell within %d turns", cfg.turnCap),
	})
	result.record(Event{
		Type:    EventBattleEnd,
		Turn:    cfg.turnCap,
		Message: "the battle is a draw",
	})
	e.logger.Debug("battle draw", "turns", cfg.turnCap)
	return result, nil
}

// order settles who moves first this turn. Speed decides; ties go to the
// player side.
func (e *Engine) order(p, o *fighter) (first, second *fighter) {
	if o.monster.Stats().Speed() > p.monster.Stats().Speed() {
		return o, p
	}
	return p, o
}

// takeTurn resolves one move and reports whether it felled the defender.
func (e *Engine) takeTurn(res *Result, turn int, atk, def *fighter) bool {
	move := atk.policy(turn, atk.monster, def.monster, e.rng)

	if move.Category == monster.CategoryStatus {
		res.record(Event{
			Type:    EventMoveUsed,
			Turn:    turn,
			Side:    atk.side.String(),
			Monster: atk.monster.Name(),
			Move:    move.Name,
			Message: fmt.Sprintf("%s used %s", atk.monster.Name(), move.Name),
		})
		e.logger.Debug("status move", "turn", turn, "side", atk.side, "move", move.Name)
		return false
	}

	dmg := e.damage(atk, def, move)
	def.monster.TakeDamage(dmg)
	res.record(Event{
		Type:    EventMoveUsed,
		Turn:    turn,
		Side:    atk.side.String(),
		Monster: atk.monster.Name(),
		Move:    move.Name,
		Damage:  dmg,
		HPAfter: def.monster.HP(),
		Message: fmt.Sprintf("%s used %s for %d damage", atk.monster.Name(), move.Name, dmg),
	})
	e.logger.Debug("move", "turn", turn, "side", atk.side, "move", move.Name,
		"damage", dmg, "target_hp", def.monster.HP())

	if def.monster.IsFainted() {
		res.record(Event{
			Type:    EventFaint,
			Turn:    turn,
			Side:    def.side.String(),
			Monster: def.monster.Name(),
			Message: fmt.Sprintf("%s fainted", def.monster.Name()),
		})
		return true
	}
	return false
}

// damage rolls one hit. Physical moves pit attack against defense, special
// moves pit special against special; level growth and the variance roll
// scale the margin, and every connecting hit deals at least one point.
func (e *Engine) damage(atk, def *fighter, move monster.Ability) int {
	var offense, guard int
	switch move.Category {
	case monster.CategorySpecial:
		offense, guard = atk.monster.Stats().Special(), def.monster.Stats().Special()
	default:
		offense, guard = atk.monster.Stats().Attack(), def.monster.Stats().Defense()
	}

	margin := float64(offense + move.Power - guard)
	growth := 1 + float64(2*atk.monster.Stats().Level()+10)/250
	roll := randutil.Uniform(e.rng, damageRollFloor, 1.0)

	dmg := int(margin * growth * roll)
	if atk.bonusPct > 0 {
		dmg += dmg * atk.bonusPct / 100
	}
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// finish closes out a decided fight.
func (e *Engine) finish(res *Result, turn int, winner, loser *fighter) *Result {
	res.Turns = turn
	if winner.side == SidePlayer {
		res.Outcome = OutcomePlayerWin
	} else {
		res.Outcome = OutcomeOpponentWin
	}
	res.ExpAwarded = ExpReward(loser.monster)
	res.record(Event{
		Type:    EventBattleEnd,
		Turn:    turn,
		Side:    winner.side.String(),
		Monster: winner.monster.Name(),
		Message: fmt.Sprintf("%s wins in %d turns", winner.monster.Name(), turn),
	})
	e.logger.Debug("battle end",
		"winner", winner.side, "turns", turn, "exp", res.ExpAwarded)
	return res
}

// ExpReward is the experience defeating this monster is worth: a rarity
// bounty plus a level premium.
func ExpReward(defeated *monster.Monster) int {
	return int(50*defeated.Rarity().Multiplier()) + 5*defeated.Stats().Level()
}
