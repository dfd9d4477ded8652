package workout

import "time"

// ProgressMetric selects the per-date aggregate for progress charts.
// Only successful (EASY or HARD) sets are considered.
type ProgressMetric string

const (
	ProgressMaxWeight   ProgressMetric = "weight"
	ProgressMaxDistance ProgressMetric = "distance"
	ProgressMinDuration ProgressMetric = "duration"
)

func (m ProgressMetric) IsValid() bool {
	switch m {
	case ProgressMaxWeight, ProgressMaxDistance, ProgressMinDuration:
		return true
	default:
		return false
	}
}

// DefaultFor picks the metric that makes sense for the exercise.
func (m ProgressMetric) DefaultFor(exercise Exercise) ProgressMetric {
	if m.IsValid() {
		return m
	}
	switch {
	case exercise.IsWeight():
		return ProgressMaxWeight
	case exercise.HasFixed(FixedDistance):
		return ProgressMinDuration
	default:
		return ProgressMaxDistance
	}
}

type ProgressPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}
