package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/2beens/gymlog/internal/gymlog/resttimer"
	"github.com/2beens/gymlog/internal/gymlog/session"
	"github.com/2beens/gymlog/internal/gymlog/workout"
)

var ErrNoActiveWorkout = errors.New("no active workout")

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=tracker_test

type restTimer interface {
	Start(sessionID int64, seconds int)
	Extend(seconds int) resttimer.Snapshot
	Dismiss()
	Snapshot() resttimer.Snapshot
}

type ExerciseView struct {
	Exercise    workout.Exercise `json:"exercise"`
	DisplayName string           `json:"displayName"`
	Sets        []workout.Set    `json:"sets"`
}

// Snapshot is a consistent copy of the active workout.
type Snapshot struct {
	Session   workout.Session    `json:"session"`
	Version   uint64             `json:"version"`
	Exercises []ExerciseView     `json:"exercises"`
	Timer     resttimer.Snapshot `json:"timer"`
}

// Tracker holds the single active workout. Mutations are serialised, the
// in-memory state is updated first and then persisted. A failed write is
// returned to the caller while the in-memory update stays.
type Tracker struct {
	lifecycle   *session.Lifecycle
	timer       restTimer
	restSeconds int

	mu     sync.Mutex
	active *session.ActiveWorkout
}

func New(lifecycle *session.Lifecycle, timer restTimer, restSeconds int) *Tracker {
	if restSeconds <= 0 {
		restSeconds = resttimer.DefaultRestSeconds
	}
	return &Tracker{
		lifecycle:   lifecycle,
		timer:       timer,
		restSeconds: restSeconds,
	}
}

// Begin starts a new session from the plan and makes it the active one.
func (t *Tracker) Begin(ctx context.Context, planID int64) (Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	active, err := t.lifecycle.Start(ctx, planID)
	if err != nil {
		return Snapshot{}, err
	}

	t.timer.Dismiss()
	t.active = active
	return t.snapshot(), nil
}

// Resume loads the session from storage. With sessionID 0 the session
// still in progress, if any, is resumed. Completed sessions are read-only
// and cannot become the active workout.
func (t *Tracker) Resume(ctx context.Context, sessionID int64) (Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var (
		active *session.ActiveWorkout
		err    error
	)
	if sessionID == 0 {
		active, err = t.lifecycle.ResumeInProgress(ctx)
	} else {
		active, err = t.lifecycle.Resume(ctx, sessionID)
	}
	if err != nil {
		return Snapshot{}, err
	}
	if active == nil {
		if sessionID == 0 {
			return Snapshot{}, ErrNoActiveWorkout
		}
		return Snapshot{}, fmt.Errorf("session %d: %w", sessionID, workout.ErrSessionNotFound)
	}
	if !active.Session.InProgress() {
		return Snapshot{}, fmt.Errorf("session %d: %w", sessionID, workout.ErrSessionCompleted)
	}

	if t.active == nil || t.active.Session.ID != active.Session.ID {
		t.timer.Dismiss()
	}
	t.active = active
	return t.snapshot(), nil
}

func (t *Tracker) Current() (Snapshot, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active == nil {
		return Snapshot{}, false
	}
	return t.snapshot(), true
}

// Changes is signalled after every change to the active workout sets.
// It returns nil when there is no active workout.
func (t *Tracker) Changes() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active == nil {
		return nil
	}
	return t.active.State.Changes()
}

// RecordSet applies the input to the set at index. Every input carrying an
// attempted status confirms the set and restarts the rest timer, also when
// the set already had that status.
func (t *Tracker) RecordSet(ctx context.Context, exerciseID int64, index int, input workout.SetInput) (workout.Set, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active == nil {
		return workout.Set{}, ErrNoActiveWorkout
	}

	exercise, ok := t.active.State.Exercise(exerciseID)
	if !ok {
		return workout.Set{}, fmt.Errorf("exercise %d: %w", exerciseID, workout.ErrExerciseNotFound)
	}
	current, ok := t.active.State.Set(exerciseID, index)
	if !ok {
		return workout.Set{}, fmt.Errorf("exercise %d set #%d: %w", exerciseID, index, workout.ErrSetNotFound)
	}

	if err := input.CheckFor(exercise); err != nil {
		return current, err
	}
	updated, err := input.Apply(current)
	if err != nil {
		return current, err
	}
	if err := t.active.State.UpdateSet(exerciseID, index, updated); err != nil {
		return current, err
	}

	if input.Status != nil && updated.Status.Attempted() {
		t.timer.Start(t.active.Session.ID, t.restSeconds)
	}

	if err := t.lifecycle.UpdateSet(ctx, updated); err != nil {
		log.Errorf("record set %d: %s", updated.ID, err)
		return updated, err
	}
	return updated, nil
}

// SetWeightForAll sets the same weight on every set of the exercise.
func (t *Tracker) SetWeightForAll(ctx context.Context, exerciseID int64, weight string) ([]workout.Set, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active == nil {
		return nil, ErrNoActiveWorkout
	}

	exercise, ok := t.active.State.Exercise(exerciseID)
	if !ok {
		return nil, fmt.Errorf("exercise %d: %w", exerciseID, workout.ErrExerciseNotFound)
	}
	if !exercise.IsWeight() {
		return nil, fmt.Errorf("%w: exercise %d has no weight", workout.ErrInvalidInput, exerciseID)
	}

	kg, err := workout.ParseWeight(weight)
	if err != nil {
		return nil, err
	}

	sets, _ := t.active.State.ExerciseSets(exerciseID)
	var persistErr error
	for i := range sets {
		if kg != nil {
			w := *kg
			sets[i].WeightKg = &w
		} else {
			sets[i].WeightKg = nil
		}
		if err := t.active.State.UpdateSet(exerciseID, i, sets[i]); err != nil {
			return nil, err
		}
		persistErr = multierr.Append(persistErr, t.lifecycle.UpdateSet(ctx, sets[i]))
	}

	return sets, persistErr
}

// AddSet appends a set to the exercise of the active workout.
func (t *Tracker) AddSet(ctx context.Context, exerciseID int64) (workout.Set, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active == nil {
		return workout.Set{}, ErrNoActiveWorkout
	}
	if _, ok := t.active.State.Exercise(exerciseID); !ok {
		return workout.Set{}, fmt.Errorf("exercise %d: %w", exerciseID, workout.ErrExerciseNotFound)
	}

	added, err := t.lifecycle.AddSet(ctx, t.active.Session.ID, exerciseID)
	if err != nil {
		return workout.Set{}, err
	}
	if err := t.active.State.AddSet(exerciseID, *added); err != nil {
		return workout.Set{}, err
	}
	return *added, nil
}

// Finish completes the active workout, dismisses the rest timer and
// clears the active workout. Without an active workout only the timer is
// dismissed.
func (t *Tracker) Finish(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var sessionID int64
	if t.active != nil {
		sessionID = t.active.Session.ID
	}

	return t.lifecycle.Finish(ctx, sessionID, func() {
		t.timer.Dismiss()
		t.active = nil
	})
}

// Delete removes the active workout and dismisses the rest timer.
func (t *Tracker) Delete(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active == nil {
		return ErrNoActiveWorkout
	}

	t.timer.Dismiss()
	if err := t.lifecycle.Delete(ctx, t.active.Session.ID); err != nil {
		return err
	}
	t.active = nil
	return nil
}

func (t *Tracker) ExtendRest(seconds int) resttimer.Snapshot {
	if seconds <= 0 {
		seconds = resttimer.DefaultExtendSeconds
	}
	return t.timer.Extend(seconds)
}

func (t *Tracker) DismissRest() {
	t.timer.Dismiss()
}

func (t *Tracker) RestTimer() resttimer.Snapshot {
	return t.timer.Snapshot()
}

// snapshot must be called with mu held.
func (t *Tracker) snapshot() Snapshot {
	state := t.active.State.Snapshot()
	exercises := make([]ExerciseView, 0, len(state.Exercises))
	for _, es := range state.Exercises {
		exercises = append(exercises, ExerciseView{
			Exercise:    es.Exercise,
			DisplayName: es.Exercise.DisplayName(),
			Sets:        es.Sets,
		})
	}

	return Snapshot{
		Session:   t.active.Session,
		Version:   state.Version,
		Exercises: exercises,
		Timer:     t.timer.Snapshot(),
	}
}
