package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"

	"github.com/2beens/gymlog/internal/gymlog/workout"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

// ActiveWorkout is a loaded session together with its live state.
type ActiveWorkout struct {
	Session workout.Session
	State   *State
}

// Lifecycle owns session transitions and set mutations:
// NONE -> IN_PROGRESS -> COMPLETED, and delete from either.
type Lifecycle struct {
	repo           Repository
	materializer   *Materializer
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewLifecycle(repo Repository, metricsManager *metrics.Manager, now func() time.Time) *Lifecycle {
	if now == nil {
		now = time.Now
	}
	return &Lifecycle{
		repo:           repo,
		materializer:   NewMaterializer(repo, now),
		metricsManager: metricsManager,
		now:            now,
	}
}

type planEntry struct {
	planExercise workout.PlanExercise
	exercise     workout.Exercise
}

// Start creates an IN_PROGRESS session from the plan and materializes the
// sets of every plan exercise in plan order. Nothing is written when the
// plan can't be loaded or another session is still in progress.
func (l *Lifecycle) Start(ctx context.Context, planID int64) (_ *ActiveWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("plan.id", planID))

	inProgress, err := l.repo.GetInProgressSession(ctx)
	if err != nil {
		return nil, wrapRepoErr("get in progress session", err)
	}
	if inProgress != nil {
		return nil, fmt.Errorf("session %d: %w", inProgress.ID, workout.ErrSessionInProgress)
	}

	plan, err := l.repo.GetPlan(ctx, planID)
	if err != nil {
		return nil, wrapRepoErr("get plan", err)
	}

	planExercises, err := l.repo.GetPlanExercises(ctx, plan.ID)
	if err != nil {
		return nil, wrapRepoErr("get plan exercises", err)
	}

	entries := make([]planEntry, 0, len(planExercises))
	for _, pe := range planExercises {
		exercise, err := l.repo.GetExercise(ctx, pe.ExerciseID)
		if errors.Is(err, workout.ErrNotFound) {
			log.Warnf("plan %d references missing exercise %d, skipping", plan.ID, pe.ExerciseID)
			continue
		}
		if err != nil {
			return nil, wrapRepoErr("get exercise", err)
		}
		entries = append(entries, planEntry{planExercise: pe, exercise: *exercise})
	}

	now := l.now()
	session := workout.Session{
		PlanID:    &plan.ID,
		Date:      workout.DateOf(now),
		Status:    workout.SessionInProgress,
		StartedAt: now,
	}
	session.ID, err = l.repo.InsertSession(ctx, session)
	if err != nil {
		return nil, wrapRepoErr("insert session", err)
	}
	span.SetAttributes(attribute.Int64("session.id", session.ID))

	state := NewState()
	for _, entry := range entries {
		sets, err := l.materializer.Materialize(ctx, session.ID, entry.planExercise, entry.exercise)
		if err != nil {
			return nil, l.abortStart(ctx, session.ID, err)
		}
		state.AddExercise(entry.exercise, sets)
	}

	if l.metricsManager != nil {
		l.metricsManager.CounterSessionsStarted.Inc()
	}
	log.Infof("session %d started from plan %d [%s] with %d exercises", session.ID, plan.ID, plan.Name, len(entries))

	return &ActiveWorkout{
		Session: session,
		State:   state,
	}, nil
}

// abortStart removes a half materialized session.
func (l *Lifecycle) abortStart(ctx context.Context, sessionID int64, cause error) error {
	if err := l.repo.DeleteSession(ctx, sessionID); err != nil {
		log.Errorf("failed to clean up session %d after failed start: %s", sessionID, err)
		return multierr.Combine(cause, wrapRepoErr("clean up session", err))
	}
	return cause
}

// Resume rebuilds the live state strictly from persisted sets. A missing
// session is not an error: it returns nil, nil.
func (l *Lifecycle) Resume(ctx context.Context, sessionID int64) (_ *ActiveWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.resume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("session.id", sessionID))

	session, err := l.repo.GetSession(ctx, sessionID)
	if errors.Is(err, workout.ErrNotFound) {
		log.Debugf("session %d not found, nothing to resume", sessionID)
		return nil, nil
	}
	if err != nil {
		return nil, wrapRepoErr("get session", err)
	}

	sets, err := l.repo.GetSetsForSession(ctx, session.ID)
	if err != nil {
		return nil, wrapRepoErr("get sets for session", err)
	}

	state := NewState()
	order, grouped := workout.GroupSetsByExercise(sets)
	for _, exerciseID := range order {
		exercise, err := l.repo.GetExercise(ctx, exerciseID)
		if errors.Is(err, workout.ErrNotFound) {
			log.Warnf("session %d has sets of missing exercise %d, skipping", session.ID, exerciseID)
			continue
		}
		if err != nil {
			return nil, wrapRepoErr("get exercise", err)
		}

		exerciseSets := grouped[exerciseID]
		sort.SliceStable(exerciseSets, func(i, j int) bool {
			return exerciseSets[i].SetNumber < exerciseSets[j].SetNumber
		})
		state.AddExercise(*exercise, exerciseSets)
	}

	return &ActiveWorkout{
		Session: *session,
		State:   state,
	}, nil
}

// ResumeInProgress resumes the IN_PROGRESS session, if there is one.
func (l *Lifecycle) ResumeInProgress(ctx context.Context) (*ActiveWorkout, error) {
	session, err := l.repo.GetInProgressSession(ctx)
	if err != nil {
		return nil, wrapRepoErr("get in progress session", err)
	}
	if session == nil {
		return nil, nil
	}
	return l.Resume(ctx, session.ID)
}

// Finish marks the session COMPLETED and then calls onDone. With no session
// loaded (id 0) only onDone is called.
func (l *Lifecycle) Finish(ctx context.Context, sessionID int64, onDone func()) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("session.id", sessionID))

	if sessionID == 0 {
		if onDone != nil {
			onDone()
		}
		return nil
	}

	session, err := l.repo.GetSession(ctx, sessionID)
	if err != nil {
		return wrapRepoErr("get session", err)
	}

	completedAt := l.now()
	session.Status = workout.SessionCompleted
	session.CompletedAt = &completedAt
	if err := l.repo.UpdateSession(ctx, *session); err != nil {
		return wrapRepoErr("update session", err)
	}

	if l.metricsManager != nil {
		l.metricsManager.CounterSessionsFinished.Inc()
	}
	log.Infof("session %d finished", sessionID)

	if onDone != nil {
		onDone()
	}
	return nil
}

// UpdateSet persists the set as is. Its set number, session and exercise
// must match the stored row.
func (l *Lifecycle) UpdateSet(ctx context.Context, set workout.Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.update_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("set.id", set.ID),
		attribute.String("set.status", set.Status.String()),
	)

	if !set.Status.IsValid() {
		return fmt.Errorf("%w: unknown set status [%s]", workout.ErrInvalidInput, set.Status)
	}

	stored, err := l.repo.GetSet(ctx, set.ID)
	if err != nil {
		return wrapRepoErr("get set", err)
	}
	if !stored.SameIdentity(set) {
		return fmt.Errorf(
			"%w: set %d can't move from session %d / exercise %d / #%d to session %d / exercise %d / #%d",
			workout.ErrInvalidInput, set.ID,
			stored.SessionID, stored.ExerciseID, stored.SetNumber,
			set.SessionID, set.ExerciseID, set.SetNumber,
		)
	}

	if err := l.repo.UpdateSet(ctx, set); err != nil {
		return wrapRepoErr("update set", err)
	}

	if l.metricsManager != nil && stored.Status != set.Status {
		l.metricsManager.CounterSetsRecorded.WithLabelValues(set.Status.String()).Inc()
	}
	return nil
}

// AddSet appends a PENDING set to the exercise, copying the values of its
// last set, and returns it persisted.
func (l *Lifecycle) AddSet(ctx context.Context, sessionID, exerciseID int64) (_ *workout.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.add_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("session.id", sessionID),
		attribute.Int64("exercise.id", exerciseID),
	)

	if _, err := l.repo.GetSession(ctx, sessionID); err != nil {
		return nil, wrapRepoErr("get session", err)
	}

	exercise, err := l.repo.GetExercise(ctx, exerciseID)
	if err != nil {
		return nil, wrapRepoErr("get exercise", err)
	}

	existing, err := l.repo.GetSetsForExercise(ctx, sessionID, exerciseID)
	if err != nil {
		return nil, wrapRepoErr("get sets for exercise", err)
	}

	newSet := workout.Set{
		SessionID:  sessionID,
		ExerciseID: exerciseID,
		SetNumber:  1,
		Status:     workout.StatusPending,
	}
	if len(existing) > 0 {
		last := existing[0]
		for _, s := range existing {
			if s.SetNumber > last.SetNumber {
				last = s
			}
		}
		newSet.SetNumber = last.SetNumber + 1
		copyCarriedValues(&newSet, last, *exercise)
	}

	newSet.ID, err = l.repo.InsertSet(ctx, newSet)
	if err != nil {
		return nil, wrapRepoErr("insert set", err)
	}
	span.SetAttributes(attribute.Int("set.number", newSet.SetNumber))

	return &newSet, nil
}

// copyCarriedValues copies the values a new set starts with: only the
// variable dimension for fixed cardio, everything otherwise.
func copyCarriedValues(dst *workout.Set, last workout.Set, exercise workout.Exercise) {
	switch {
	case exercise.HasFixed(workout.FixedDistance):
		dst.DurationSec = cloneInt(last.DurationSec)
	case exercise.HasFixed(workout.FixedTime):
		dst.DistanceM = cloneInt(last.DistanceM)
	default:
		dst.WeightKg = cloneFloat(last.WeightKg)
		dst.RepsCompleted = cloneInt(last.RepsCompleted)
		dst.DistanceM = cloneInt(last.DistanceM)
		dst.DurationSec = cloneInt(last.DurationSec)
	}
}

// Delete removes the session and, through the cascade, its sets.
func (l *Lifecycle) Delete(ctx context.Context, sessionID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("session.id", sessionID))

	if err := l.repo.DeleteSession(ctx, sessionID); err != nil {
		return wrapRepoErr("delete session", err)
	}

	if l.metricsManager != nil {
		l.metricsManager.CounterSessionsDeleted.Inc()
	}
	log.Infof("session %d deleted", sessionID)
	return nil
}
