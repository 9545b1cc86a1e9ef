package statistics

import (
	"fmt"
	"math"
	"sort"
)

// Sample accumulates float64 observations and answers summary queries.
// The zero value is ready to use.
type Sample struct {
	Count  int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation
}

// Add incorporates a new observation into the sample
func (s *Sample) Add(v float64) {
	s.Count++
	s.Sum += v
	s.Sum2 += v * v
	s.Values = append(s.Values, v)
}

// Mean returns the arithmetic mean of all observations
func (s *Sample) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Variance returns the sample variance of all observations
func (s *Sample) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Count)*mean*mean) / float64(s.Count-1)
}

// StdDev returns the sample standard deviation of all observations
func (s *Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Sample) StdError() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Count))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Sample) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	se := s.StdError()
	margin := 1.96 * se // 95% confidence
	return mean - margin, mean + margin
}

// Median returns the median observation
func (s *Sample) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0),
// linearly interpolated between neighboring observations
func (s *Sample) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Min returns the smallest observation
func (s *Sample) Min() float64 {
	return s.Percentile(0)
}

// Max returns the largest observation
func (s *Sample) Max() float64 {
	return s.Percentile(1)
}

// IsConsistent checks that the running sum matches the stored observations
func (s *Sample) IsConsistent() bool {
	total := 0.0
	for _, v := range s.Values {
		total += v
	}
	return math.Abs(total-s.Sum) <= 1e-6
}

// Validate performs comprehensive validation of the sample data
func (s *Sample) Validate() error {
	if s.Count <= 0 {
		return fmt.Errorf("invalid observation count: %d", s.Count)
	}

	if len(s.Values) != s.Count {
		return fmt.Errorf("values array length (%d) does not match observation count (%d)",
			len(s.Values), s.Count)
	}

	if !s.IsConsistent() {
		return fmt.Errorf("sum mismatch: running sum %.6f disagrees with stored values", s.Sum)
	}

	return nil
}
