package suggest

import (
	"math"
	"time"

	"github.com/2beens/gymlog/internal/gymlog/workout"
)

const (
	Step = 2.5
	// StaleAfterDays is the last day a previous session still counts as recent.
	StaleAfterDays = 10
)

type Recency int

const (
	Recent Recency = iota
	Stale
)

func (r Recency) String() string {
	if r == Stale {
		return "stale"
	}
	return "recent"
}

// Outcome of a previous session, ordered by severity.
type Outcome int

const (
	AllEasy Outcome = iota
	Hard
	Partial
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Hard:
		return "hard"
	case Partial:
		return "partial"
	case Failed:
		return "failed"
	default:
		return "easy"
	}
}

// Weight suggests the working weight for the next session from the sets of
// the previous one. ok is false when there is nothing to suggest from.
func Weight(lastSets []workout.Set, lastSessionDate, today time.Time) (_ float64, ok bool) {
	base := 0.0
	outcome := AllEasy
	for _, s := range lastSets {
		if !s.Status.Attempted() {
			continue
		}
		if s.WeightKg != nil && (!ok || *s.WeightKg > base) {
			base = *s.WeightKg
			ok = true
		}
		if o := outcomeOf(s.Status); o > outcome {
			outcome = o
		}
	}
	if !ok {
		return 0, false
	}

	return Apply(base, Multiplier(RecencyOf(lastSessionDate, today), outcome)), true
}

// Apply scales base by multiplier, rounds to the step and guarantees at
// least one step of change whenever the multiplier is not neutral.
func Apply(base, multiplier float64) float64 {
	roundedBase := Round2_5(base)
	suggested := Round2_5(base * multiplier)

	switch {
	case multiplier > 1 && suggested <= roundedBase:
		suggested = roundedBase + Step
	case multiplier < 1 && suggested >= roundedBase:
		suggested = math.Max(0, roundedBase-Step)
	}
	return math.Max(0, suggested)
}

// Round2_5 rounds kg to the nearest 2.5 kg, halves away from zero.
func Round2_5(kg float64) float64 {
	return math.Round(kg/Step) * Step
}

// RecencyOf compares calendar days, so the time of day never matters.
func RecencyOf(lastSessionDate, today time.Time) Recency {
	if daysBetween(lastSessionDate, today) > StaleAfterDays {
		return Stale
	}
	return Recent
}

func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.In(from.Location()).Date()
	fromDay := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	toDay := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}

func OutcomeOf(statuses []workout.SetStatus) Outcome {
	outcome := AllEasy
	for _, s := range statuses {
		if o := outcomeOf(s); o > outcome {
			outcome = o
		}
	}
	return outcome
}

func outcomeOf(status workout.SetStatus) Outcome {
	switch status {
	case workout.StatusFailed:
		return Failed
	case workout.StatusPartial:
		return Partial
	case workout.StatusHard:
		return Hard
	default:
		return AllEasy
	}
}

func Multiplier(recency Recency, outcome Outcome) float64 {
	if recency == Recent {
		switch outcome {
		case Failed:
			return 0.95
		case Hard, Partial:
			return 1.0
		default:
			return 1.05
		}
	}

	switch outcome {
	case Failed, Partial:
		return 0.80
	case Hard:
		return 0.90
	default:
		return 1.0
	}
}
