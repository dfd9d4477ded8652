package workout

import (
	"fmt"
	"strings"
)

// ExerciseKind can be one of:
//   - WEIGHT
//   - CARDIO
type ExerciseKind string

const (
	KindWeight ExerciseKind = "WEIGHT"
	KindCardio ExerciseKind = "CARDIO"
)

func (k ExerciseKind) String() string {
	return string(k)
}

func (k ExerciseKind) IsValid() bool {
	switch k {
	case KindWeight, KindCardio:
		return true
	default:
		return false
	}
}

// FixedDimension marks which cardio dimension is defined on the exercise itself.
type FixedDimension string

const (
	FixedDistance FixedDimension = "DISTANCE"
	FixedTime     FixedDimension = "TIME"
)

func (d FixedDimension) IsValid() bool {
	return d == FixedDistance || d == FixedTime
}

type Exercise struct {
	ID   int64        `json:"id"`
	Name string       `json:"name"`
	Kind ExerciseKind `json:"kind"`
	// FixedDimension is only meaningful for cardio; nil means the legacy
	// shape where both distance and duration are recorded per set.
	FixedDimension    *FixedDimension `json:"fixedDimension,omitempty"`
	FixedValue        *int            `json:"fixedValue,omitempty"` // seconds or meters
	Level             *int            `json:"level,omitempty"`
	DistanceDisplayKm bool            `json:"distanceDisplayKm"`
}

func (e Exercise) IsWeight() bool {
	return e.Kind == KindWeight
}

// HasFixed reports whether the exercise is cardio with the given fixed dimension.
func (e Exercise) HasFixed(d FixedDimension) bool {
	return e.Kind == KindCardio && e.FixedDimension != nil && *e.FixedDimension == d
}

func (e Exercise) IsLegacyCardio() bool {
	return e.Kind == KindCardio && e.FixedDimension == nil
}

// DisplayName renders fixed-dimension cardio as e.g. "Rowing - 5k - L3",
// "Run - 400m" or "Bike - 20min". Everything else is shown by name.
func (e Exercise) DisplayName() string {
	if e.FixedDimension == nil || e.FixedValue == nil {
		return e.Name
	}

	var valuePart string
	switch *e.FixedDimension {
	case FixedDistance:
		if e.DistanceDisplayKm {
			valuePart = fmt.Sprintf("%dk", *e.FixedValue/1000)
		} else {
			valuePart = fmt.Sprintf("%dm", *e.FixedValue)
		}
	case FixedTime:
		valuePart = fmt.Sprintf("%dmin", *e.FixedValue/60)
	default:
		return e.Name
	}

	var sb strings.Builder
	sb.WriteString(e.Name)
	sb.WriteString(" - ")
	sb.WriteString(valuePart)
	if e.Level != nil {
		sb.WriteString(fmt.Sprintf(" - L%d", *e.Level))
	}
	return sb.String()
}

// Validate checks an exercise definition coming from the setup API.
func (e Exercise) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: exercise name is empty", ErrInvalidInput)
	}
	if !e.Kind.IsValid() {
		return fmt.Errorf("%w: unknown exercise kind [%s]", ErrInvalidInput, e.Kind)
	}
	if e.FixedDimension == nil {
		return nil
	}
	if e.Kind != KindCardio {
		return fmt.Errorf("%w: fixed dimension is only allowed for cardio", ErrInvalidInput)
	}
	if !e.FixedDimension.IsValid() {
		return fmt.Errorf("%w: unknown fixed dimension [%s]", ErrInvalidInput, *e.FixedDimension)
	}
	if e.FixedValue == nil || *e.FixedValue <= 0 {
		return fmt.Errorf("%w: fixed dimension requires a positive fixed value", ErrInvalidInput)
	}
	return nil
}
