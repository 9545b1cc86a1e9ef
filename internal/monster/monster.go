package monster

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// MoveCategory tells the battle engine which stats an ability keys off.
type MoveCategory int

const (
	// CategoryPhysical pits attack against defense
	CategoryPhysical MoveCategory = iota
	// CategorySpecial pits special against special
	CategorySpecial
	// CategoryStatus deals no damage, only a logged effect
	CategoryStatus
)

// String returns the wire name of the category.
func (c MoveCategory) String() string {
	switch c {
	case CategoryPhysical:
		return "physical"
	case CategorySpecial:
		return "special"
	case CategoryStatus:
		return "status"
	default:
		return "unknown"
	}
}

// ParseMoveCategory maps a wire name back to its category.
func ParseMoveCategory(s string) (MoveCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "physical":
		return CategoryPhysical, nil
	case "special":
		return CategorySpecial, nil
	case "status":
		return CategoryStatus, nil
	default:
		return CategoryPhysical, fmt.Errorf("unknown move category %q", s)
	}
}

// UnmarshalYAML decodes a category from its wire name.
func (c *MoveCategory) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseMoveCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Ability is one move a monster can use in battle. Power adds onto the
// attacking stat; status moves carry no power and only log their effect.
type Ability struct {
	Name     string       `yaml:"name"`
	Category MoveCategory `yaml:"category"`
	Power    int          `yaml:"power"`
}

// struggle is the fallback move for a monster defined with no abilities,
// so every participant can always act.
var struggle = Ability{Name: "Struggle", Category: CategoryPhysical, Power: 10}

// Monster is a battle participant: a bestiary identity plus live state.
// The identity fields never change after construction; HP and the stat
// model do.
type Monster struct {
	name        string
	description string
	rarity      Rarity
	effect      Effect
	abilities   []Ability
	stats       *StatModel
	hp          int
}

// NewMonster builds a live monster at the given level, fully healed.
func NewMonster(name string, rarity Rarity, base BaseStats, nature Nature, level int, effect Effect, abilities []Ability) (*Monster, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("monster name must not be empty")
	}
	stats, err := NewStatModel(base, nature, level)
	if err != nil {
		return nil, fmt.Errorf("monster %s: %w", name, err)
	}
	if len(abilities) == 0 {
		abilities = []Ability{struggle}
	}
	owned := make([]Ability, len(abilities))
	copy(owned, abilities)
	return &Monster{
		name:      name,
		rarity:    rarity,
		effect:    effect,
		abilities: owned,
		stats:     stats,
		hp:        stats.HP(),
	}, nil
}

// Name returns the species name.
func (m *Monster) Name() string { return m.name }

// Description returns the bestiary flavor text, if any.
func (m *Monster) Description() string { return m.description }

// Rarity returns the species tier.
func (m *Monster) Rarity() Rarity { return m.rarity }

// Effect returns the poker perk this monster grants its owner.
func (m *Monster) Effect() Effect { return m.effect }

// Abilities returns a copy of the move list. The first entry is the basic
// attack the default battle policy uses.
func (m *Monster) Abilities() []Ability {
	out := make([]Ability, len(m.abilities))
	copy(out, m.abilities)
	return out
}

// Stats exposes the live stat model, for experience grants and effective
// stat queries.
func (m *Monster) Stats() *StatModel { return m.stats }

// HP is the current hit-point total.
func (m *Monster) HP() int { return m.hp }

// MaxHP is the effective hit-point pool at the current level.
func (m *Monster) MaxHP() int { return m.stats.HP() }

// IsFainted reports whether the monster is out of the battle.
func (m *Monster) IsFainted() bool { return m.hp <= 0 }

// TakeDamage removes hit points, never below zero. Negative amounts are
// ignored.
func (m *Monster) TakeDamage(n int) {
	if n < 0 {
		n = 0
	}
	m.hp -= n
	if m.hp < 0 {
		m.hp = 0
	}
}

// Heal restores the monster to its effective maximum.
func (m *Monster) Heal() { m.hp = m.stats.HP() }

// String renders the battle-card summary line.
func (m *Monster) String() string {
	return fmt.Sprintf("%s (%s, Lv.%d, %d/%d HP)", m.name, m.rarity, m.stats.Level(), m.hp, m.MaxHP())
}
