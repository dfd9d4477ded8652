package workout

import (
	"fmt"
	"strings"
)

// Plan is a reusable blueprint for a session. Editing a plan never touches
// sessions that were already started from it.
type Plan struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Exercises []PlanExercise `json:"exercises,omitempty"`
}

type PlanExercise struct {
	ID                int64    `json:"id"`
	PlanID            int64    `json:"planId"`
	ExerciseID        int64    `json:"exerciseId"`
	TargetSets        int      `json:"targetSets"`
	TargetReps        *int     `json:"targetReps,omitempty"`
	TargetWeightKg    *float64 `json:"targetWeightKg,omitempty"`
	TargetDistanceM   *int     `json:"targetDistanceM,omitempty"`
	TargetDurationSec *int     `json:"targetDurationSec,omitempty"`
	SortOrder         int      `json:"sortOrder"`
}

func (p Plan) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: plan name is empty", ErrInvalidInput)
	}
	// sets are grouped by exercise id, so an exercise can appear only once
	seen := make(map[int64]bool, len(p.Exercises))
	for i, pe := range p.Exercises {
		if pe.ExerciseID <= 0 {
			return fmt.Errorf("%w: plan exercise %d has no exercise", ErrInvalidInput, i)
		}
		if seen[pe.ExerciseID] {
			return fmt.Errorf("%w: exercise %d is in the plan twice", ErrInvalidInput, pe.ExerciseID)
		}
		seen[pe.ExerciseID] = true
		if pe.TargetSets < 0 {
			return fmt.Errorf("%w: plan exercise %d has negative target sets", ErrInvalidInput, i)
		}
	}
	return nil
}
