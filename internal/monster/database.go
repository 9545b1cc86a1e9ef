package monster

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	rand "math/rand/v2"

	"gopkg.in/yaml.v3"
)

//go:embed data/monsters.yaml
var bestiaryYAML []byte

// ErrUnknownMonster is returned when a bestiary lookup names no entry.
var ErrUnknownMonster = errors.New("unknown monster")

// encounterWeights drive RandomWeighted, indexed by rarity. Commons carry
// most of the mass so legendaries stay an event.
var encounterWeights = map[Rarity]int{
	RarityCommon:    40,
	RarityUncommon:  30,
	RarityRare:      18,
	RarityEpic:      9,
	RarityLegendary: 3,
}

// Definition is one bestiary entry: everything needed to spawn a live
// monster of the species at any level.
type Definition struct {
	Name        string
	Description string
	Rarity      Rarity
	Nature      Nature
	Base        BaseStats
	Effect      Effect
	Abilities   []Ability
}

// Spawn builds a live monster of this species at the given level, fully
// healed, with lifetime experience consistent with the level.
func (d Definition) Spawn(level int) (*Monster, error) {
	m, err := NewMonster(d.Name, d.Rarity, d.Base, d.Nature, level, d.Effect, d.Abilities)
	if err != nil {
		return nil, err
	}
	m.description = d.Description
	return m, nil
}

// SpawnWithNature is Spawn with the bestiary nature overridden, for rolled
// wild encounters.
func (d Definition) SpawnWithNature(level int, nature Nature) (*Monster, error) {
	d.Nature = nature
	return d.Spawn(level)
}

// Database is the loaded bestiary. Load it once and share it; every lookup
// is read-only.
type Database struct {
	defs   []Definition
	byName map[string]int
}

type bestiaryFile struct {
	Monsters []definitionYAML `yaml:"monsters"`
}

type definitionYAML struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Rarity      Rarity    `yaml:"rarity"`
	Nature      string    `yaml:"nature"`
	Stats       BaseStats `yaml:"stats"`
	Effect      Effect    `yaml:"effect"`
	Abilities   []Ability `yaml:"abilities"`
}

func (row definitionYAML) toDefinition() (Definition, error) {
	if strings.TrimSpace(row.Name) == "" {
		return Definition{}, errors.New("bestiary entry with empty name")
	}
	if err := row.Stats.validate(); err != nil {
		return Definition{}, fmt.Errorf("monster %s: %w", row.Name, err)
	}
	nature, err := NatureByName(row.Nature)
	if err != nil {
		return Definition{}, fmt.Errorf("monster %s: %w", row.Name, err)
	}
	if len(row.Abilities) == 0 {
		return Definition{}, fmt.Errorf("monster %s: needs at least one ability", row.Name)
	}
	for _, a := range row.Abilities {
		if strings.TrimSpace(a.Name) == "" {
			return Definition{}, fmt.Errorf("monster %s: ability with empty name", row.Name)
		}
		if a.Power < 0 {
			return Definition{}, fmt.Errorf("monster %s: ability %s has negative power", row.Name, a.Name)
		}
	}
	return Definition{
		Name:        row.Name,
		Description: row.Description,
		Rarity:      row.Rarity,
		Nature:      nature,
		Base:        row.Stats,
		Effect:      row.Effect,
		Abilities:   row.Abilities,
	}, nil
}

// Load parses the embedded bestiary. Malformed data, duplicate names and
// unknown tier, nature or effect names all fail here rather than at spawn
// time.
func Load() (*Database, error) {
	return loadBestiary(bestiaryYAML)
}

func loadBestiary(raw []byte) (*Database, error) {
	var file bestiaryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse bestiary: %w", err)
	}
	if len(file.Monsters) == 0 {
		return nil, errors.New("bestiary holds no monsters")
	}

	defs := make([]Definition, 0, len(file.Monsters))
	for _, row := range file.Monsters {
		def, err := row.toDefinition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	byName := make(map[string]int, len(defs))
	for i, def := range defs {
		key := normalizeMonsterName(def.Name)
		if _, dup := byName[key]; dup {
			return nil, fmt.Errorf("bestiary: duplicate monster %q", def.Name)
		}
		byName[key] = i
	}
	return &Database{defs: defs, byName: byName}, nil
}

// Count is the number of species in the bestiary.
func (db *Database) Count() int { return len(db.defs) }

// All returns every definition in file order. The slice is a copy.
func (db *Database) All() []Definition {
	out := make([]Definition, len(db.defs))
	copy(out, db.defs)
	return out
}

// ByName looks an entry up case-insensitively.
func (db *Database) ByName(name string) (Definition, error) {
	i, ok := db.byName[normalizeMonsterName(name)]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownMonster, name)
	}
	return db.defs[i], nil
}

// ByRarity returns the tier's definitions in file order.
func (db *Database) ByRarity(r Rarity) []Definition {
	var out []Definition
	for _, d := range db.defs {
		if d.Rarity == r {
			out = append(out, d)
		}
	}
	return out
}

// RandomByRarity picks uniformly inside one tier.
func (db *Database) RandomByRarity(rng *rand.Rand, r Rarity) (Definition, error) {
	tier := db.ByRarity(r)
	if len(tier) == 0 {
		return Definition{}, fmt.Errorf("no %s monsters in the bestiary", r)
	}
	return tier[rng.IntN(len(tier))], nil
}

// RandomWeighted rolls a wild encounter: first the tier by encounter
// weight, then uniformly inside it. Falls back across tiers if a weighted
// tier happens to be empty.
func (db *Database) RandomWeighted(rng *rand.Rand) Definition {
	total := 0
	for r := RarityCommon; r <= RarityLegendary; r++ {
		if len(db.ByRarity(r)) > 0 {
			total += encounterWeights[r]
		}
	}
	roll := rng.IntN(total)
	for r := RarityCommon; r <= RarityLegendary; r++ {
		tier := db.ByRarity(r)
		if len(tier) == 0 {
			continue
		}
		roll -= encounterWeights[r]
		if roll < 0 {
			return tier[rng.IntN(len(tier))]
		}
	}
	// Unreachable while the bestiary is non-empty.
	return db.defs[0]
}

// Spawn looks a species up and builds a live monster at the given level.
func (db *Database) Spawn(name string, level int) (*Monster, error) {
	def, err := db.ByName(name)
	if err != nil {
		return nil, err
	}
	return def.Spawn(level)
}

func normalizeMonsterName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
