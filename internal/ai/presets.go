package ai

import (
	"errors"
	"fmt"
	"strings"

	rand "math/rand/v2"
)

// ErrUnknownPreset is returned when a preset lookup names no roster entry.
var ErrUnknownPreset = errors.New("unknown personality preset")

// Preset pairs a display name with the fixed trait vector it carries.
type Preset struct {
	Name   string
	Traits TraitVector
}

// presets is the full roster in declaration order. Trait values mostly stay
// inside the 2-8 band so that no personality plays perfectly or hopelessly;
// field order is courage, gullibility, guile, confidence, caution, empathy,
// timidness, patience, ambition, intelligence.
var presets = []Preset{
	{"Foolhardy", TraitVector{9.0, 3.0, 8.0, 7.0, 2.0, 7.0, 1.0, 3.0, 8.5, 4.0}},
	{"Gullible", TraitVector{4.0, 8.5, 3.0, 4.0, 7.0, 6.0, 6.0, 5.0, 3.0, 5.0}},
	{"Brash", TraitVector{8.5, 4.0, 7.5, 8.0, 3.0, 5.0, 2.0, 4.0, 8.0, 6.0}},
	{"Pensive", TraitVector{4.0, 3.0, 4.0, 3.5, 8.5, 8.0, 8.0, 7.5, 4.0, 8.5}},
	{"Meek", TraitVector{2.5, 6.0, 2.5, 2.0, 6.0, 7.0, 8.5, 6.0, 2.0, 5.0}},
	{"Anxious", TraitVector{3.0, 5.0, 3.0, 2.5, 7.0, 6.5, 8.0, 5.5, 3.5, 6.0}},
	{"Happy", TraitVector{6.5, 5.0, 6.5, 6.0, 5.0, 7.5, 3.0, 6.0, 6.5, 6.0}},
	{"Doubtful", TraitVector{3.5, 4.0, 3.5, 3.0, 7.5, 6.0, 7.0, 6.5, 3.0, 7.0}},
	{"Trusting", TraitVector{5.5, 7.5, 5.5, 5.0, 4.0, 8.0, 4.0, 7.0, 5.0, 6.0}},
	{"Blissful", TraitVector{7.5, 6.0, 7.5, 7.0, 2.0, 8.5, 2.0, 5.0, 7.0, 4.0}},
	{"Unaware", TraitVector{5.5, 8.0, 6.0, 5.5, 2.5, 6.0, 4.0, 3.0, 5.0, 3.5}},
	{"Insincere", TraitVector{6.0, 2.0, 8.5, 7.5, 6.0, 4.0, 5.0, 4.0, 6.5, 7.5}},
	{"Shy", TraitVector{2.0, 4.0, 2.0, 2.5, 6.5, 6.0, 8.5, 5.5, 2.5, 5.0}},
	{"Brainy", TraitVector{4.5, 2.5, 5.0, 4.5, 9.0, 7.0, 6.0, 8.0, 4.0, 9.5}},
	{"Muscle-headed", TraitVector{8.5, 6.0, 4.0, 8.0, 2.5, 3.0, 1.5, 3.0, 8.0, 3.0}},
	{"Fighter", TraitVector{8.0, 3.0, 6.5, 7.5, 5.0, 5.0, 3.0, 5.5, 7.5, 6.0}},
	{"Lively", TraitVector{7.5, 5.5, 7.0, 7.0, 4.0, 7.0, 2.5, 7.5, 7.0, 6.5}},
	{"Indecisive", TraitVector{4.0, 5.0, 4.5, 4.0, 6.0, 5.0, 6.5, 4.0, 4.0, 6.0}},
	{"Defensive", TraitVector{3.0, 3.5, 3.0, 3.5, 7.0, 5.0, 7.5, 6.0, 3.0, 6.5}},
	{"Self-assured", TraitVector{7.5, 3.0, 7.0, 8.0, 6.0, 6.0, 2.5, 6.5, 7.0, 7.0}},
	{"Confident", TraitVector{8.0, 3.5, 6.5, 8.5, 6.5, 6.5, 2.0, 7.0, 7.5, 7.5}},
	{"Smarmy", TraitVector{6.0, 2.5, 8.0, 7.0, 7.0, 4.5, 4.0, 5.0, 6.0, 7.0}},
	{"Condescending", TraitVector{5.5, 2.0, 7.5, 8.0, 7.5, 4.0, 3.5, 4.5, 5.5, 8.0}},
	{"Humble", TraitVector{4.5, 5.0, 3.0, 4.0, 6.5, 7.5, 6.0, 7.0, 4.0, 6.5}},
}

// Presets returns the roster in stable declaration order. The slice is a
// copy; callers can reorder it freely.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetByName looks a preset up by display name, case-insensitively.
// Spaces and underscores are treated as the hyphen in hyphenated names, so
// "muscle_headed" and "Muscle Headed" both resolve.
func PresetByName(name string) (Preset, error) {
	want := normalizePresetName(name)
	for _, p := range presets {
		if normalizePresetName(p.Name) == want {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// RandomPreset picks a roster entry with the supplied generator, so seeded
// callers get a reproducible personality.
func RandomPreset(r *rand.Rand) Preset {
	return presets[r.IntN(len(presets))]
}

func normalizePresetName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "_", "-")
	return strings.ReplaceAll(s, " ", "-")
}
