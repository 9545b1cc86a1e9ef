package ai

import (
	"math"
	"testing"
)

func TestNewTraitsClampsIntoRange(t *testing.T) {
	traits, err := NewTraits(TraitVector{
		Courage:      14,
		Gullibility:  -3,
		Guile:        10.5,
		Confidence:   5,
		Caution:      -0.1,
		Empathy:      0,
		Timidness:    10,
		Patience:     3.5,
		Ambition:     math.Inf(1),
		Intelligence: math.Inf(-1),
	})
	if err != nil {
		t.Fatalf("NewTraits returned error: %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"courage", traits.Courage, 10},
		{"gullibility", traits.Gullibility, 0},
		{"guile", traits.Guile, 10},
		{"confidence", traits.Confidence, 5},
		{"caution", traits.Caution, 0},
		{"empathy", traits.Empathy, 0},
		{"timidness", traits.Timidness, 10},
		{"patience", traits.Patience, 3.5},
		{"ambition", traits.Ambition, 10},
		{"intelligence", traits.Intelligence, 0},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s should clamp to %v, got %v", c.name, c.want, c.got)
		}
	}
}

func TestNewTraitsRejectsNaN(t *testing.T) {
	_, err := NewTraits(TraitVector{Courage: math.NaN()})
	if err == nil {
		t.Fatal("NaN courage should be rejected")
	}

	_, err = NewTraits(TraitVector{Intelligence: math.NaN()})
	if err == nil {
		t.Fatal("NaN intelligence should be rejected")
	}
}

func TestScalarsMatchesFieldOrder(t *testing.T) {
	v := TraitVector{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	scalars := v.Scalars()
	if len(scalars) != 10 {
		t.Fatalf("expected 10 scalars, got %d", len(scalars))
	}
	if scalars[0].Name != "courage" || scalars[0].Value != 1 {
		t.Errorf("first scalar should be courage=1, got %s=%v", scalars[0].Name, scalars[0].Value)
	}
	if scalars[9].Name != "intelligence" || scalars[9].Value != 10 {
		t.Errorf("last scalar should be intelligence=10, got %s=%v", scalars[9].Name, scalars[9].Value)
	}
}
