package ai

import (
	"errors"
	"testing"

	"github.com/Gameaday/pokermon/internal/randutil"
)

func TestPresetRoster(t *testing.T) {
	roster := Presets()
	if len(roster) != 24 {
		t.Fatalf("roster should hold 24 presets, got %d", len(roster))
	}
	if roster[0].Name != "Foolhardy" {
		t.Errorf("first preset should be Foolhardy, got %s", roster[0].Name)
	}
	if roster[len(roster)-1].Name != "Humble" {
		t.Errorf("last preset should be Humble, got %s", roster[len(roster)-1].Name)
	}

	seen := make(map[string]bool, len(roster))
	for _, p := range roster {
		if seen[p.Name] {
			t.Errorf("duplicate preset name %q", p.Name)
		}
		seen[p.Name] = true
	}
}

func TestPresetsReturnsCopy(t *testing.T) {
	roster := Presets()
	roster[0].Name = "Mangled"
	if Presets()[0].Name != "Foolhardy" {
		t.Error("mutating the returned slice should not touch the roster")
	}
}

func TestPresetByName(t *testing.T) {
	tests := []struct {
		lookup string
		want   string
	}{
		{"Foolhardy", "Foolhardy"},
		{"foolhardy", "Foolhardy"},
		{"BRAINY", "Brainy"},
		{"Muscle-headed", "Muscle-headed"},
		{"muscle_headed", "Muscle-headed"},
		{"Self Assured", "Self-assured"},
		{"  humble  ", "Humble"},
	}
	for _, tt := range tests {
		p, err := PresetByName(tt.lookup)
		if err != nil {
			t.Errorf("PresetByName(%q) returned error: %v", tt.lookup, err)
			continue
		}
		if p.Name != tt.want {
			t.Errorf("PresetByName(%q) = %s, want %s", tt.lookup, p.Name, tt.want)
		}
	}
}

func TestPresetByNameUnknown(t *testing.T) {
	_, err := PresetByName("Stoic")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("unknown preset should return ErrUnknownPreset, got %v", err)
	}
}

func TestPresetTraitsWithinRange(t *testing.T) {
	for _, p := range Presets() {
		for _, s := range p.Traits.Scalars() {
			if s.Value < 0 || s.Value > 10 {
				t.Errorf("%s.%s = %v outside 0-10", p.Name, s.Name, s.Value)
			}
		}
	}
}

func TestRandomPresetDeterministic(t *testing.T) {
	a := RandomPreset(randutil.New(99))
	b := RandomPreset(randutil.New(99))
	if a.Name != b.Name {
		t.Errorf("same seed should pick the same preset, got %s and %s", a.Name, b.Name)
	}
}
