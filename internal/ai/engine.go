package ai

import (
	"errors"
	"math"

	rand "math/rand/v2"

	"github.com/Gameaday/pokermon/internal/randutil"
)

// Action represents the betting action a decision resolves to.
type Action int

const (
	// ActionFold discards the hand and any claim on the pot
	ActionFold Action = iota
	// ActionCheck passes the action when there is no bet to match
	ActionCheck
	// ActionCall matches the current bet
	ActionCall
	// ActionRaiseSmall raises by 0.25-0.5x the bet being faced
	ActionRaiseSmall
	// ActionRaiseMedium raises by 0.5-1x the bet being faced
	ActionRaiseMedium
	// ActionRaiseLarge raises by 1-2x the bet being faced
	ActionRaiseLarge
	// ActionAllIn commits the whole stack
	ActionAllIn
)

// String returns the wire and display name of an action.
func (a Action) String() string {
	switch a {
	case ActionFold:
		return "fold"
	case ActionCheck:
		return "check"
	case ActionCall:
		return "call"
	case ActionRaiseSmall:
		return "raise-small"
	case ActionRaiseMedium:
		return "raise-medium"
	case ActionRaiseLarge:
		return "raise-large"
	case ActionAllIn:
		return "all-in"
	default:
		return "unknown"
	}
}

// IsRaise reports whether the action puts more chips in than a call.
func (a Action) IsRaise() bool {
	switch a {
	case ActionRaiseSmall, ActionRaiseMedium, ActionRaiseLarge, ActionAllIn:
		return true
	}
	return false
}

// Decision is the engine's answer at one action point: what to do and the
// total chips the action commits (not a delta on top of the call).
type Decision struct {
	Action    Action
	Amount    int
	Reasoning string
}

// Threshold tuning. Both base thresholds sit at the tight end of their
// band; trait and context terms only ever pull them down.
const (
	baseFoldThreshold  = 0.3
	minFoldThreshold   = 0.1
	maxFoldThreshold   = 0.7
	baseRaiseThreshold = 0.7
	minRaiseThreshold  = 0.3
	maxRaiseThreshold  = 0.9
)

// ErrNaNStrength is returned when a hand strength input is NaN.
var ErrNaNStrength = errors.New("hand strength must not be NaN")

// Engine turns a behavior profile plus table context into a betting
// decision. It owns its generator and is not safe for concurrent use; give
// each goroutine its own engine, seeded per run for reproducibility.
type Engine struct {
	rng *rand.Rand
}

// NewEngine wraps an existing generator, typically one per worker.
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// NewEngineSeeded builds an engine with its own deterministic generator.
func NewEngineSeeded(seed int64) *Engine {
	return &Engine{rng: randutil.New(seed)}
}

// Decide resolves one action point. handStrength is the [0, 1] made-hand
// scalar from the strength package and is clamped into range if the caller
// hands in something wider; chips is the actor's remaining stack. An actor
// whose stack is already gone commits exactly the current bet, the
// all-in-behind case, before any other evaluation happens.
func (e *Engine) Decide(profile BehaviorProfile, ctx GameContext, handStrength float64, chips int) (Decision, error) {
	if err := ctx.Validate(); err != nil {
		return Decision{}, err
	}
	if math.IsNaN(handStrength) {
		return Decision{}, ErrNaNStrength
	}
	if chips <= 0 {
		return Decision{Action: ActionCall, Amount: ctx.CurrentBet, Reasoning: "all-in behind"}, nil
	}
	strength := clamp01(handStrength)

	foldAt := foldThreshold(profile, ctx)
	raiseAt := raiseThreshold(profile, ctx)
	perceived := e.perceivedStrength(profile, strength)

	switch {
	case perceived < foldAt:
		if ctx.CurrentBet == 0 {
			return Decision{Action: ActionCheck, Reasoning: "weak, but the card is free"}, nil
		}
		return Decision{Action: ActionFold, Reasoning: "below fold threshold"}, nil
	case perceived >= raiseAt:
		return e.sizeRaise(profile, ctx, perceived, chips), nil
	default:
		if ctx.CurrentBet == 0 {
			return Decision{Action: ActionCheck, Reasoning: "no bet to match"}, nil
		}
		return Decision{Action: ActionCall, Amount: min(ctx.CurrentBet, chips), Reasoning: "between thresholds"}, nil
	}
}

// foldThreshold computes how weak a perceived hand must look before this
// personality lets it go. Brave, confident players need less to continue;
// good pot odds and late streets both argue against folding.
func foldThreshold(p BehaviorProfile, ctx GameContext) float64 {
	t := baseFoldThreshold
	t -= (p.Bravery() / 10) * 0.15
	t -= (p.Confidence() / 10) * 0.10
	t -= math.Min(ctx.PotOdds(), 5) * 0.02
	t -= float64(ctx.BettingRound-RoundPreflop) * 0.02
	if ctx.LastToAct {
		t -= 0.05
	}
	return clampRange(t, minFoldThreshold, maxFoldThreshold)
}

// raiseThreshold computes how strong a perceived hand must look before the
// personality raises instead of calling. Big stacks lean on the table, so
// a chip ratio above even lowers the bar further.
func raiseThreshold(p BehaviorProfile, ctx GameContext) float64 {
	t := baseRaiseThreshold
	t -= (p.Bravery() / 10) * 0.10
	t -= (p.Confidence() / 10) * 0.10
	t -= (p.Intelligence() / 10) * 0.05
	if ctx.ChipRatio > 1 {
		t -= math.Min(ctx.ChipRatio-1, 3) * 0.05
	}
	return clampRange(t, minRaiseThreshold, maxRaiseThreshold)
}

// perceivedStrength is what the personality believes it holds. Overconfident
// players inflate the estimate, intelligence pulls the estimate back toward
// the truth, and inflexible players misread the board a little either way.
func (e *Engine) perceivedStrength(p BehaviorProfile, strength float64) float64 {
	perceived := strength
	if c := p.Confidence(); c > 7 {
		perceived *= 1 + (c-7)*0.05
	}
	accuracy := 0.5 + p.Intelligence()/20
	perceived = strength + (perceived-strength)*(1-accuracy)
	if a := p.Adaptability(); a < 5 {
		wobble := (5 - a) / 100
		perceived += randutil.Uniform(e.rng, -wobble, wobble)
	}
	return clamp01(perceived)
}

// sizeRaise picks a raise band once the engine has decided to raise.
// Bravery and confidence set the appetite; the random component keeps the
// sizing from becoming a tell. An opening raise sizes off the pot because
// there is no bet to scale against.
func (e *Engine) sizeRaise(p BehaviorProfile, ctx GameContext, perceived float64, chips int) Decision {
	drive := (p.Bravery() + p.Confidence()) / 20
	score := drive*0.6 + e.rng.Float64()*0.4

	if score > 0.85 && perceived > 0.85 {
		return Decision{Action: ActionAllIn, Amount: chips, Reasoning: "maximum pressure"}
	}

	action, mult, why := ActionRaiseSmall, 0.25, "probe raise"
	switch {
	case score > 0.65:
		action, mult, why = ActionRaiseLarge, 1.0, "pressure raise"
	case score > 0.40:
		action, mult, why = ActionRaiseMedium, 0.5, "value raise"
	}

	base := ctx.CurrentBet
	if base == 0 {
		base = ctx.PotSize
	}
	raise := int(float64(base) * mult * (1 + e.rng.Float64()))
	if raise < 1 {
		raise = 1
	}
	amount := min(ctx.CurrentBet+raise, chips)
	return Decision{Action: action, Amount: amount, Reasoning: why}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func clampRange(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
