package conmat

import "math"

// Stats accumulates min/max and absolute min/max over a stream of values.
// NaN observations are skipped: NaN means "no relationship", not a number to
// rank. An accumulator that has observed nothing holds the identities
// Min=+Inf, Max=-Inf, AbsMin=+Inf, AbsMax=-Inf — callers that need "were any
// values seen" check for those sentinels; they are documented behavior, never
// a crash.
type Stats struct {
	Min    float64
	Max    float64
	AbsMin float64
	AbsMax float64
}

// NewStats returns an empty accumulator holding the identity sentinels.
// Complexity: O(1).
func NewStats() Stats {
	return Stats{
		Min:    math.Inf(1),
		Max:    math.Inf(-1),
		AbsMin: math.Inf(1),
		AbsMax: math.Inf(-1),
	}
}

// Observe folds v into the accumulator. NaN is ignored. Complexity: O(1).
func (s *Stats) Observe(v float64) {
	if math.IsNaN(v) {
		return
	}
	if v < s.Min {
		s.Min = v
	}
	if v > s.Max {
		s.Max = v
	}
	a := math.Abs(v)
	if a < s.AbsMin {
		s.AbsMin = a
	}
	if a > s.AbsMax {
		s.AbsMax = a
	}
}

// Empty reports whether no value has been observed yet (the accumulator still
// holds its identity sentinels). Complexity: O(1).
func (s Stats) Empty() bool {
	return math.IsInf(s.Min, 1) && math.IsInf(s.Max, -1)
}

// statsOf runs one accumulation pass over a value slice. Complexity: O(n).
func statsOf(values []float64) Stats {
	s := NewStats()
	for _, v := range values {
		s.Observe(v)
	}

	return s
}
