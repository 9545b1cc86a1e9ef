package monster

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// EffectType classifies the poker-table perk a monster grants its owner.
type EffectType int

const (
	// EffectChipBonus increases starting chips
	EffectChipBonus EffectType = iota
	// EffectCardAdvantage grants extra card draws
	EffectCardAdvantage
	// EffectBettingBoost raises the maximum bet
	EffectBettingBoost
	// EffectLuckEnhancement nudges hand strength upward
	EffectLuckEnhancement
	// EffectVisualTheme reskins the table, nothing mechanical
	EffectVisualTheme
)

// String returns the wire name of the effect type.
func (t EffectType) String() string {
	switch t {
	case EffectChipBonus:
		return "chip-bonus"
	case EffectCardAdvantage:
		return "card-advantage"
	case EffectBettingBoost:
		return "betting-boost"
	case EffectLuckEnhancement:
		return "luck-enhancement"
	case EffectVisualTheme:
		return "visual-theme"
	default:
		return "unknown"
	}
}

// Description is the player-facing explanation of the perk.
func (t EffectType) Description() string {
	switch t {
	case EffectChipBonus:
		return "Increases starting chips"
	case EffectCardAdvantage:
		return "Provides extra card draws"
	case EffectBettingBoost:
		return "Improves betting effectiveness"
	case EffectLuckEnhancement:
		return "Increases chance of good hands"
	case EffectVisualTheme:
		return "Changes game appearance and theme"
	default:
		return "No effect"
	}
}

// ParseEffectType maps a wire name back to its EffectType. Underscores work
// in place of hyphens so hand-written data files stay forgiving.
func ParseEffectType(s string) (EffectType, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "chip-bonus":
		return EffectChipBonus, nil
	case "card-advantage":
		return EffectCardAdvantage, nil
	case "betting-boost":
		return EffectBettingBoost, nil
	case "luck-enhancement":
		return EffectLuckEnhancement, nil
	case "visual-theme":
		return EffectVisualTheme, nil
	default:
		return EffectChipBonus, fmt.Errorf("unknown effect type %q", s)
	}
}

// UnmarshalYAML decodes an effect type from its wire name.
func (t *EffectType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseEffectType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Effect pairs a perk with its magnitude. What the magnitude means depends
// on the type: chips for a chip bonus, draw count for card advantage, a
// percent for the luck nudge, a theme id for visual themes.
type Effect struct {
	Type      EffectType `yaml:"type"`
	Magnitude int        `yaml:"magnitude"`
}

// BonusChips is the starting-chip adjustment this effect grants.
func (e Effect) BonusChips() int {
	if e.Type == EffectChipBonus {
		return e.Magnitude
	}
	return 0
}

// ExtraDraws is the number of additional draw cards this effect grants.
func (e Effect) ExtraDraws() int {
	if e.Type == EffectCardAdvantage {
		return e.Magnitude
	}
	return 0
}

// MaxBetBoost is the table-stakes increase this effect grants.
func (e Effect) MaxBetBoost() int {
	if e.Type == EffectBettingBoost {
		return e.Magnitude
	}
	return 0
}

// ApplyLuck nudges a [0, 1] hand strength up by the magnitude as a percent
// and re-clamps. Non-luck effects pass the value through untouched.
func (e Effect) ApplyLuck(strength float64) float64 {
	if e.Type != EffectLuckEnhancement {
		return strength
	}
	boosted := strength * (1 + float64(e.Magnitude)/100)
	return math.Max(0, math.Min(1, boosted))
}
