package monster

import "fmt"

// MaxLevel caps growth. Experience keeps accumulating past it but the level
// stays put.
const MaxLevel = 100

// BaseStats are the species-level foundations growth scales from.
type BaseStats struct {
	HP      int `yaml:"hp"`
	Attack  int `yaml:"attack"`
	Defense int `yaml:"defense"`
	Speed   int `yaml:"speed"`
	Special int `yaml:"special"`
}

func (b BaseStats) validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"hp", b.HP},
		{"attack", b.Attack},
		{"defense", b.Defense},
		{"speed", b.Speed},
		{"special", b.Special},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("base %s must be positive, got %d", c.name, c.value)
		}
	}
	return nil
}

// StatModel tracks one creature's growth: base stats, nature, level and
// lifetime experience. Effective stats are pure functions of those inputs;
// leveling changes the outputs, never the bases.
type StatModel struct {
	base   BaseStats
	nature Nature
	level  int
	exp    int
}

// NewStatModel builds a model at the given level with lifetime experience
// consistent with it, as if the creature had levelled there naturally.
func NewStatModel(base BaseStats, nature Nature, level int) (*StatModel, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	if level < 1 || level > MaxLevel {
		return nil, fmt.Errorf("level %d outside 1..%d", level, MaxLevel)
	}
	return &StatModel{
		base:   base,
		nature: nature,
		level:  level,
		exp:    totalExpForLevel(level),
	}, nil
}

// ExpCost is the experience required to advance from the given level to the
// next one. The curve is quadratic, so late levels take real grinding.
func ExpCost(level int) int {
	return level * level * 10
}

// totalExpForLevel is the lifetime experience needed to hold a level.
func totalExpForLevel(level int) int {
	total := 0
	for k := 1; k < level; k++ {
		total += ExpCost(k)
	}
	return total
}

// Base returns the species foundations.
func (m *StatModel) Base() BaseStats { return m.base }

// Nature returns the bias applied to this creature's stats.
func (m *StatModel) Nature() Nature { return m.nature }

// Level returns the current level.
func (m *StatModel) Level() int { return m.level }

// Experience returns lifetime experience. It only ever grows.
func (m *StatModel) Experience() int { return m.exp }

// ExpToNextLevel reports how much more experience the next level needs, or
// zero once the cap is reached.
func (m *StatModel) ExpToNextLevel() int {
	if m.level >= MaxLevel {
		return 0
	}
	return totalExpForLevel(m.level+1) - m.exp
}

// GainExperience adds to the lifetime total and applies every level-up the
// new total covers; one large grant can cross several levels at once.
// Negative grants are a caller bug.
func (m *StatModel) GainExperience(n int) error {
	if n < 0 {
		return fmt.Errorf("experience grant must not be negative, got %d", n)
	}
	m.exp += n
	for m.level < MaxLevel && m.exp >= totalExpForLevel(m.level+1) {
		m.level++
	}
	return nil
}

// effective applies growth and the nature bias to one base stat. Growth is
// linear, 2% of base per level past the first; the nature bias is a tenth
// of base either way, both truncated to integers.
func (m *StatModel) effective(base int, natureMult float64) int {
	growth := base * (m.level - 1) / 50
	natureBonus := int(float64(base) * (natureMult - 1.0))
	return base + growth + natureBonus
}

// HP is the effective hit-point pool at the current level.
func (m *StatModel) HP() int { return m.effective(m.base.HP, m.nature.HP) }

// Attack is the effective physical attack stat.
func (m *StatModel) Attack() int { return m.effective(m.base.Attack, m.nature.Attack) }

// Defense is the effective physical defense stat.
func (m *StatModel) Defense() int { return m.effective(m.base.Defense, m.nature.Defense) }

// Speed is the effective speed stat; it settles turn order.
func (m *StatModel) Speed() int { return m.effective(m.base.Speed, m.nature.Speed) }

// Special is the effective special stat, used by special moves on both the
// attacking and defending end.
func (m *StatModel) Special() int { return m.effective(m.base.Special, m.nature.Special) }
