package monster

import (
	"fmt"
	"strings"

	rand "math/rand/v2"
)

// Nature biases a monster's effective stats: one stat runs 10% hot, another
// 10% cold, and Hardy is the neutral reference. The multipliers apply to the
// base stat, not the grown value, so a nature matters the same at every
// level.
type Nature struct {
	Name    string
	HP      float64
	Attack  float64
	Defense float64
	Speed   float64
	Special float64
}

// natures is the fixed table: one neutral entry plus every one-up-one-down
// pairing the stat spread supports.
var natures = []Nature{
	{"Hardy", 1.0, 1.0, 1.0, 1.0, 1.0},
	{"Brave", 1.0, 1.1, 1.0, 0.9, 1.0},
	{"Adamant", 1.0, 1.1, 1.0, 1.0, 0.9},
	{"Naughty", 1.0, 1.1, 0.9, 1.0, 1.0},
	{"Bold", 1.0, 0.9, 1.1, 1.0, 1.0},
	{"Relaxed", 1.0, 1.0, 1.1, 0.9, 1.0},
	{"Impish", 1.0, 1.0, 1.1, 1.0, 0.9},
	{"Timid", 1.0, 0.9, 1.0, 1.1, 1.0},
	{"Hasty", 1.0, 1.0, 0.9, 1.1, 1.0},
	{"Jolly", 1.0, 1.0, 1.0, 1.1, 0.9},
	{"Modest", 1.0, 0.9, 1.0, 1.0, 1.1},
	{"Mild", 1.0, 1.0, 0.9, 1.0, 1.1},
	{"Quiet", 1.0, 1.0, 1.0, 0.9, 1.1},
	{"Hearty", 1.1, 0.9, 1.0, 1.0, 1.0},
	{"Sturdy", 1.1, 1.0, 1.0, 0.9, 1.0},
	{"Placid", 1.1, 1.0, 1.0, 1.0, 0.9},
}

// Natures returns the full table in declaration order.
func Natures() []Nature {
	out := make([]Nature, len(natures))
	copy(out, natures)
	return out
}

// NatureByName resolves a nature case-insensitively. The empty string maps
// to Hardy so data files can leave the field out.
func NatureByName(name string) (Nature, error) {
	if strings.TrimSpace(name) == "" {
		return natures[0], nil
	}
	for _, n := range natures {
		if strings.EqualFold(n.Name, name) {
			return n, nil
		}
	}
	return Nature{}, fmt.Errorf("unknown nature %q", name)
}

// RandomNature picks a table entry with the supplied generator.
func RandomNature(r *rand.Rand) Nature {
	return natures[r.IntN(len(natures))]
}
