package ai

// BehaviorProfile fixes the poker-facing behavior scalars derived from a
// trait vector. Construction runs the math once; a profile never changes
// afterwards, so it is safe to share across goroutines.
type BehaviorProfile struct {
	traits TraitVector

	aggressiveness float64
	bluffTendency  float64
	foldTendency   float64
	deception      float64
}

// NewBehaviorProfile clamps and validates the vector, then derives the four
// behavior scalars. The weights are gameplay-tuned constants; changing any
// of them shifts every personality at once.
func NewBehaviorProfile(t TraitVector) (BehaviorProfile, error) {
	ct, err := NewTraits(t)
	if err != nil {
		return BehaviorProfile{}, err
	}
	return BehaviorProfile{
		traits:         ct,
		aggressiveness: clamp10(ct.Courage*0.4 + ct.Ambition*0.3 + ct.Confidence*0.3),
		bluffTendency:  clamp10(ct.Guile*0.5 + ct.Confidence*0.3 + ct.Courage*0.2),
		foldTendency:   clamp10(ct.Timidness*0.4 + ct.Caution*0.3 + (10-ct.Confidence)*0.3),
		deception:      clamp10(ct.Guile*0.6 + ct.Intelligence*0.2 + (10-ct.Empathy)*0.2),
	}, nil
}

// ProfileFor builds the behavior profile for a named roster preset.
func ProfileFor(presetName string) (BehaviorProfile, error) {
	p, err := PresetByName(presetName)
	if err != nil {
		return BehaviorProfile{}, err
	}
	return NewBehaviorProfile(p.Traits)
}

// Traits returns the clamped source vector.
func (b BehaviorProfile) Traits() TraitVector { return b.traits }

// Aggressiveness is how hard the personality pushes chips when it acts.
func (b BehaviorProfile) Aggressiveness() float64 { return b.aggressiveness }

// BluffTendency is how readily it bets hands that cannot win at showdown.
func (b BehaviorProfile) BluffTendency() float64 { return b.bluffTendency }

// FoldTendency is how readily it gives a hand up under pressure.
func (b BehaviorProfile) FoldTendency() float64 { return b.foldTendency }

// Deception is how far its table image drifts from its actual holdings.
func (b BehaviorProfile) Deception() float64 { return b.deception }

// Play-trait views consumed by the decision engine and rendered in roster
// displays. Bravery passes courage through unchanged; the blended ones
// average two source traits onto the same 0-10 scale.

// Bravery is the willingness to put chips at risk.
func (b BehaviorProfile) Bravery() float64 { return b.traits.Courage }

// Tenacity is how hard the personality hangs on once invested.
func (b BehaviorProfile) Tenacity() float64 {
	return (b.traits.Confidence + (10 - b.traits.Timidness)) / 2
}

// Tactfulness is how carefully it disguises the strength it shows.
func (b BehaviorProfile) Tactfulness() float64 {
	return (b.traits.Guile + b.traits.Caution) / 2
}

// Adaptability is how well it re-reads a changing board.
func (b BehaviorProfile) Adaptability() float64 {
	return (b.traits.Guile + b.traits.Intelligence) / 2
}

// Intelligence mirrors the source trait.
func (b BehaviorProfile) Intelligence() float64 { return b.traits.Intelligence }

// Confidence mirrors the source trait.
func (b BehaviorProfile) Confidence() float64 { return b.traits.Confidence }

// Empathy mirrors the source trait.
func (b BehaviorProfile) Empathy() float64 { return b.traits.Empathy }

// Patience mirrors the source trait.
func (b BehaviorProfile) Patience() float64 { return b.traits.Patience }

// Rating condenses the eight play traits into one comparable number.
func (b BehaviorProfile) Rating() float64 {
	return (b.Bravery() + b.Tenacity() + b.Intelligence() + b.Confidence() +
		b.Tactfulness() + b.Empathy() + b.Patience() + b.Adaptability()) / 8
}
