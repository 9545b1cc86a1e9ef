package session

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/Gameaday/pokermon/internal/ai"
	"github.com/Gameaday/pokermon/internal/monster"
)

// DefaultMonsterLevel is the spawn level for seats that name a monster
// without a level.
const DefaultMonsterLevel = 5

// Config is the complete on-disk session configuration.
type Config struct {
	Session Settings     `hcl:"session,block"`
	Seats   []SeatConfig `hcl:"seat,block"`
}

// SeatConfig declares one roster slot. The label is the seat number; preset
// "random" draws from the full roster at build time.
type SeatConfig struct {
	Number       string `hcl:"number,label"`
	Preset       string `hcl:"preset,optional"`
	Human        bool   `hcl:"human,optional"`
	Monster      string `hcl:"monster,optional"`
	MonsterLevel int    `hcl:"monster_level,optional"`
}

// DefaultConfig returns the table used when no config file exists: a
// four-seat game, seat 1 human, the rest drawn at random.
func DefaultConfig() *Config {
	cfg := &Config{
		Session: Settings{StartingChips: DefaultStartingChips},
		Seats:   []SeatConfig{{Number: "1", Human: true}},
	}
	for i := 2; i <= 4; i++ {
		cfg.Seats = append(cfg.Seats, SeatConfig{Number: strconv.Itoa(i), Preset: "random"})
	}
	return cfg
}

// LoadConfig loads session configuration from an HCL file. A missing file
// is not an error; it yields the default table.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Session.StartingChips == 0 {
		c.Session.StartingChips = DefaultStartingChips
	}
	for i := range c.Seats {
		if !c.Seats[i].Human && c.Seats[i].Preset == "" {
			c.Seats[i].Preset = "random"
		}
		if c.Seats[i].Monster != "" && c.Seats[i].MonsterLevel == 0 {
			c.Seats[i].MonsterLevel = DefaultMonsterLevel
		}
	}
}

// Validate checks the configuration for contradictions before a session is
// built from it.
func (c *Config) Validate() error {
	if c.Session.StartingChips < 0 {
		return fmt.Errorf("starting chips must not be negative, got %d", c.Session.StartingChips)
	}
	if c.Session.BattleTurnCap < 0 {
		return fmt.Errorf("battle turn cap must not be negative, got %d", c.Session.BattleTurnCap)
	}
	if len(c.Seats) == 0 {
		return fmt.Errorf("at least one seat must be configured")
	}

	seen := make(map[int]bool, len(c.Seats))
	for _, sc := range c.Seats {
		number, err := strconv.Atoi(strings.TrimSpace(sc.Number))
		if err != nil {
			return fmt.Errorf("seat label %q is not a number", sc.Number)
		}
		if number < 1 {
			return fmt.Errorf("seat %d: numbers start at 1", number)
		}
		if seen[number] {
			return fmt.Errorf("seat %d configured twice", number)
		}
		seen[number] = true

		if sc.Human && sc.Preset != "" {
			return fmt.Errorf("seat %d: a human seat cannot carry a preset", number)
		}
		if !sc.Human && !strings.EqualFold(sc.Preset, "random") {
			if _, err := ai.PresetByName(sc.Preset); err != nil {
				return fmt.Errorf("seat %d: %w", number, err)
			}
		}

		if sc.Monster == "" && sc.MonsterLevel != 0 {
			return fmt.Errorf("seat %d: monster_level without a monster", number)
		}
		if sc.Monster != "" && (sc.MonsterLevel < 1 || sc.MonsterLevel > monster.MaxLevel) {
			return fmt.Errorf("seat %d: monster level %d outside 1..%d", number, sc.MonsterLevel, monster.MaxLevel)
		}
	}
	return nil
}

// Build constructs a live session from the configuration. The bestiary is
// only needed when a seat names a monster.
func (c *Config) Build(db *monster.Database, logger *log.Logger) (*Session, error) {
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	s := New(c.Session, logger)
	for _, sc := range c.Seats {
		number, _ := strconv.Atoi(strings.TrimSpace(sc.Number))
		switch {
		case sc.Human:
			if err := s.MarkHuman(number); err != nil {
				return nil, err
			}
		case strings.EqualFold(sc.Preset, "random"):
			if _, err := s.AssignRandom(number); err != nil {
				return nil, err
			}
		default:
			if err := s.AssignPersonality(number, sc.Preset); err != nil {
				return nil, err
			}
		}

		if sc.Monster != "" {
			if db == nil {
				return nil, fmt.Errorf("seat %d: monster %q needs a loaded bestiary", number, sc.Monster)
			}
			m, err := db.Spawn(sc.Monster, sc.MonsterLevel)
			if err != nil {
				return nil, fmt.Errorf("seat %d: %w", number, err)
			}
			if err := s.AttachMonster(number, m); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}
