package workout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxDurationMinutes bounds the minutes part of an "m:ss" entry.
const MaxDurationMinutes = 24 * 60

// SetInput carries raw user entries for one set. A nil field leaves the
// value untouched, an empty string clears it.
type SetInput struct {
	Weight   *string    `json:"weight,omitempty"`
	Reps     *string    `json:"reps,omitempty"`
	Distance *string    `json:"distance,omitempty"`
	Duration *string    `json:"duration,omitempty"` // m:ss
	Status   *SetStatus `json:"status,omitempty"`
}

func (in SetInput) Empty() bool {
	return in.Weight == nil && in.Reps == nil && in.Distance == nil && in.Duration == nil && in.Status == nil
}

// CheckFor rejects entries the exercise does not record: distance and
// duration on weight exercises, weight and reps on cardio, and the fixed
// dimension of a fixed-dimension cardio exercise.
func (in SetInput) CheckFor(exercise Exercise) error {
	if exercise.IsWeight() {
		if in.Distance != nil || in.Duration != nil {
			return fmt.Errorf("%w: %s records weight and reps only", ErrInvalidInput, exercise.DisplayName())
		}
		return nil
	}

	if in.Weight != nil || in.Reps != nil {
		return fmt.Errorf("%w: %s records distance and time only", ErrInvalidInput, exercise.DisplayName())
	}
	if exercise.HasFixed(FixedDistance) && in.Distance != nil {
		return fmt.Errorf("%w: distance of %s is fixed", ErrInvalidInput, exercise.DisplayName())
	}
	if exercise.HasFixed(FixedTime) && in.Duration != nil {
		return fmt.Errorf("%w: duration of %s is fixed", ErrInvalidInput, exercise.DisplayName())
	}
	return nil
}

// Apply returns set with the input applied. On any invalid entry the
// original set is returned together with an ErrInvalidInput error.
func (in SetInput) Apply(set Set) (Set, error) {
	updated := set

	if in.Weight != nil {
		w, err := ParseWeight(*in.Weight)
		if err != nil {
			return set, err
		}
		updated.WeightKg = w
	}
	if in.Reps != nil {
		r, err := ParseReps(*in.Reps)
		if err != nil {
			return set, err
		}
		updated.RepsCompleted = r
	}
	if in.Distance != nil {
		d, err := ParseDistance(*in.Distance)
		if err != nil {
			return set, err
		}
		updated.DistanceM = d
	}
	if in.Duration != nil {
		d, err := ParseMMSS(*in.Duration)
		if err != nil {
			return set, err
		}
		updated.DurationSec = d
	}
	if in.Status != nil {
		if !in.Status.IsValid() {
			return set, fmt.Errorf("%w: unknown set status [%s]", ErrInvalidInput, *in.Status)
		}
		updated.Status = *in.Status
	}

	return updated, nil
}

// ParseWeight parses a weight in kilograms. Both "." and "," are accepted
// as decimal separator.
func ParseWeight(input string) (*float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, nil
	}
	kg, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", "."), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: weight [%s] is not a number", ErrInvalidInput, input)
	}
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return nil, fmt.Errorf("%w: weight [%s] is not a number", ErrInvalidInput, input)
	}
	if kg < 0 {
		return nil, fmt.Errorf("%w: weight [%s] is negative", ErrInvalidInput, input)
	}
	return &kg, nil
}

func ParseReps(input string) (*int, error) {
	return parseNonNegativeInt("reps", input)
}

// ParseDistance parses a distance in meters.
func ParseDistance(input string) (*int, error) {
	return parseNonNegativeInt("distance", input)
}

func parseNonNegativeInt(what, input string) (*int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s [%s] is not a whole number", ErrInvalidInput, what, input)
	}
	if v < 0 {
		return nil, fmt.Errorf("%w: %s [%s] is negative", ErrInvalidInput, what, input)
	}
	return &v, nil
}

// ParseMMSS parses "m:ss" into seconds. Seconds must be below 60 and
// minutes at most MaxDurationMinutes.
func ParseMMSS(input string) (*int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, nil
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: duration [%s] is not in m:ss format", ErrInvalidInput, input)
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: duration minutes [%s]", ErrInvalidInput, parts[0])
	}
	seconds, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: duration seconds [%s]", ErrInvalidInput, parts[1])
	}
	if minutes < 0 || minutes > MaxDurationMinutes || seconds < 0 || seconds >= 60 {
		return nil, fmt.Errorf("%w: duration [%s] out of range", ErrInvalidInput, input)
	}

	total := minutes*60 + seconds
	return &total, nil
}

// FormatMMSS renders seconds as "m:ss", or "-" when unset.
func FormatMMSS(totalSeconds *int) string {
	if totalSeconds == nil {
		return "-"
	}
	return fmt.Sprintf("%d:%02d", *totalSeconds/60, *totalSeconds%60)
}
