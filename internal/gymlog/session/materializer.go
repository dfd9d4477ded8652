package session

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/gymlog/suggest"
	"github.com/2beens/gymlog/internal/gymlog/workout"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

// Materializer creates the initial sets of one plan exercise in a fresh session.
type Materializer struct {
	repo Repository
	now  func() time.Time
}

func NewMaterializer(repo Repository, now func() time.Time) *Materializer {
	if now == nil {
		now = time.Now
	}
	return &Materializer{
		repo: repo,
		now:  now,
	}
}

func (m *Materializer) Materialize(
	ctx context.Context,
	sessionID int64,
	planExercise workout.PlanExercise,
	exercise workout.Exercise,
) (_ []workout.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.materialize")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("session.id", sessionID),
		attribute.Int64("exercise.id", exercise.ID),
		attribute.Int("target.sets", planExercise.TargetSets),
	)

	template, err := m.template(ctx, planExercise, exercise)
	if err != nil {
		return nil, err
	}

	if planExercise.TargetSets <= 0 {
		return []workout.Set{}, nil
	}

	sets := make([]workout.Set, 0, planExercise.TargetSets)
	for setNumber := 1; setNumber <= planExercise.TargetSets; setNumber++ {
		set := cloneSet(template)
		set.SessionID = sessionID
		set.ExerciseID = exercise.ID
		set.SetNumber = setNumber
		set.Status = workout.StatusPending
		sets = append(sets, set)
	}

	ids, err := m.repo.InsertSets(ctx, sets)
	if err != nil {
		return nil, wrapRepoErr("insert sets", err)
	}
	if len(ids) != len(sets) {
		return nil, fmt.Errorf("%w: inserted %d sets, got %d ids", workout.ErrPersistence, len(sets), len(ids))
	}
	for i := range sets {
		sets[i].ID = ids[i]
	}

	return sets, nil
}

// template holds the values every new set of the exercise starts with.
func (m *Materializer) template(ctx context.Context, pe workout.PlanExercise, exercise workout.Exercise) (workout.Set, error) {
	if exercise.IsWeight() {
		weight, err := m.suggestedWeight(ctx, pe, exercise.ID)
		if err != nil {
			return workout.Set{}, err
		}
		return workout.Set{
			WeightKg:      weight,
			RepsCompleted: pe.TargetReps,
		}, nil
	}

	lastSet, err := m.repo.GetLastCompletedSet(ctx, exercise.ID)
	if err != nil {
		return workout.Set{}, wrapRepoErr("get last completed set", err)
	}
	if lastSet == nil {
		lastSet = &workout.Set{}
	}

	switch {
	case exercise.HasFixed(workout.FixedDistance):
		return workout.Set{DurationSec: lastSet.DurationSec}, nil
	case exercise.HasFixed(workout.FixedTime):
		return workout.Set{DistanceM: lastSet.DistanceM}, nil
	default:
		return workout.Set{
			DistanceM:   firstNonNil(lastSet.DistanceM, pe.TargetDistanceM),
			DurationSec: firstNonNil(lastSet.DurationSec, pe.TargetDurationSec),
		}, nil
	}
}

func (m *Materializer) suggestedWeight(ctx context.Context, pe workout.PlanExercise, exerciseID int64) (*float64, error) {
	lastSession, err := m.repo.GetLastSessionForExercise(ctx, exerciseID)
	if err != nil {
		return nil, wrapRepoErr("get last session for exercise", err)
	}
	if lastSession == nil {
		return pe.TargetWeightKg, nil
	}

	lastSets, err := m.repo.GetSetsForExercise(ctx, lastSession.ID, exerciseID)
	if err != nil {
		return nil, wrapRepoErr("get sets of last session", err)
	}

	kg, ok := suggest.Weight(lastSets, lastSession.Date, m.now())
	if !ok {
		log.Tracef("no weight suggestion for exercise %d, using plan target", exerciseID)
		return pe.TargetWeightKg, nil
	}
	log.Debugf("suggested %.1f kg for exercise %d (last session %d)", kg, exerciseID, lastSession.ID)
	return &kg, nil
}

func firstNonNil[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// cloneSet deep copies the optional fields so sets never share values.
func cloneSet(s workout.Set) workout.Set {
	s.WeightKg = cloneFloat(s.WeightKg)
	s.RepsCompleted = cloneInt(s.RepsCompleted)
	s.DistanceM = cloneInt(s.DistanceM)
	s.DurationSec = cloneInt(s.DurationSec)
	return s
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
