package monster

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rarity is a monster's tier. It scales rewards and drives weighted
// encounters; tier order matters, so the constants stay sorted.
type Rarity int

const (
	// RarityCommon is the everyday encounter tier
	RarityCommon Rarity = iota
	// RarityUncommon shows up a few times a session
	RarityUncommon
	// RarityRare is a notable pull
	RarityRare
	// RarityEpic anchors a collection
	RarityEpic
	// RarityLegendary is the top of the bestiary
	RarityLegendary
)

// Multiplier is the tier's reward scale factor.
func (r Rarity) Multiplier() float64 {
	switch r {
	case RarityCommon:
		return 1.0
	case RarityUncommon:
		return 1.5
	case RarityRare:
		return 2.0
	case RarityEpic:
		return 3.0
	case RarityLegendary:
		return 5.0
	default:
		return 1.0
	}
}

// String returns the display name of the tier.
func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return "Unknown"
	}
}

// ParseRarity maps a tier name back to its Rarity, case-insensitively.
func ParseRarity(s string) (Rarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "common":
		return RarityCommon, nil
	case "uncommon":
		return RarityUncommon, nil
	case "rare":
		return RarityRare, nil
	case "epic":
		return RarityEpic, nil
	case "legendary":
		return RarityLegendary, nil
	default:
		return RarityCommon, fmt.Errorf("unknown rarity %q", s)
	}
}

// UnmarshalYAML decodes a rarity from its tier name.
func (r *Rarity) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseRarity(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
