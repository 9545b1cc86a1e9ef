package ai

import (
	"fmt"
	"math"
)

// TraitVector holds the ten personality scalars every derived behavior in
// this package is computed from. Scalars live on a 0-10 scale; construction
// clamps them into range and the vector is treated as an immutable value
// from then on.
type TraitVector struct {
	Courage      float64
	Gullibility  float64
	Guile        float64
	Confidence   float64
	Caution      float64
	Empathy      float64
	Timidness    float64
	Patience     float64
	Ambition     float64
	Intelligence float64
}

// Scalar is one named trait value, used when a vector is rendered or
// enumerated field by field.
type Scalar struct {
	Name  string
	Value float64
}

// NewTraits clamps every scalar of t into [0, 10] and returns the result.
// NaN anywhere is a caller bug and is rejected rather than clamped.
func NewTraits(t TraitVector) (TraitVector, error) {
	for _, s := range t.Scalars() {
		if math.IsNaN(s.Value) {
			return TraitVector{}, fmt.Errorf("trait %s: NaN is not a valid value", s.Name)
		}
	}
	return t.clamped(), nil
}

// Scalars returns the vector as ordered name/value pairs, in the same order
// the fields are declared.
func (t TraitVector) Scalars() []Scalar {
	return []Scalar{
		{"courage", t.Courage},
		{"gullibility", t.Gullibility},
		{"guile", t.Guile},
		{"confidence", t.Confidence},
		{"caution", t.Caution},
		{"empathy", t.Empathy},
		{"timidness", t.Timidness},
		{"patience", t.Patience},
		{"ambition", t.Ambition},
		{"intelligence", t.Intelligence},
	}
}

func (t TraitVector) clamped() TraitVector {
	t.Courage = clamp10(t.Courage)
	t.Gullibility = clamp10(t.Gullibility)
	t.Guile = clamp10(t.Guile)
	t.Confidence = clamp10(t.Confidence)
	t.Caution = clamp10(t.Caution)
	t.Empathy = clamp10(t.Empathy)
	t.Timidness = clamp10(t.Timidness)
	t.Patience = clamp10(t.Patience)
	t.Ambition = clamp10(t.Ambition)
	t.Intelligence = clamp10(t.Intelligence)
	return t
}

func clamp10(v float64) float64 {
	return math.Max(0, math.Min(10, v))
}
