package session

import (
	"fmt"
	"sync"

	"github.com/2beens/gymlog/internal/gymlog/workout"
)

// State is the live, in-memory view of the active session: exercises in
// session order and the ordered sets of each. Every mutation bumps Version
// and signals Changes.
type State struct {
	mu        sync.RWMutex
	exercises []workout.Exercise
	sets      map[int64][]workout.Set
	version   uint64
	changes   chan struct{}
}

type ExerciseSets struct {
	Exercise workout.Exercise `json:"exercise"`
	Sets     []workout.Set    `json:"sets"`
}

type StateSnapshot struct {
	Version   uint64         `json:"version"`
	Exercises []ExerciseSets `json:"exercises"`
}

func NewState() *State {
	return &State{
		sets:    make(map[int64][]workout.Set),
		changes: make(chan struct{}, 1),
	}
}

// AddExercise appends the exercise with its sets. Adding an exercise that
// is already present appends the sets to its existing list.
func (s *State) AddExercise(exercise workout.Exercise, sets []workout.Set) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sets[exercise.ID]; !ok {
		s.exercises = append(s.exercises, exercise)
		s.sets[exercise.ID] = make([]workout.Set, 0, len(sets))
	}
	for _, set := range sets {
		s.sets[exercise.ID] = append(s.sets[exercise.ID], cloneSet(set))
	}
	s.bump()
}

func (s *State) UpdateSet(exerciseID int64, index int, set workout.Set) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sets, ok := s.sets[exerciseID]
	if !ok {
		return fmt.Errorf("exercise %d: %w", exerciseID, workout.ErrExerciseNotFound)
	}
	if index < 0 || index >= len(sets) {
		return fmt.Errorf("set index %d of exercise %d: %w", index, exerciseID, workout.ErrSetNotFound)
	}

	sets[index] = cloneSet(set)
	s.bump()
	return nil
}

func (s *State) AddSet(exerciseID int64, set workout.Set) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sets[exerciseID]; !ok {
		return fmt.Errorf("exercise %d: %w", exerciseID, workout.ErrExerciseNotFound)
	}

	s.sets[exerciseID] = append(s.sets[exerciseID], cloneSet(set))
	s.bump()
	return nil
}

// ExerciseSets returns a copy of the exercise's sets.
func (s *State) ExerciseSets(exerciseID int64) ([]workout.Set, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sets, ok := s.sets[exerciseID]
	if !ok {
		return nil, false
	}
	return copySets(sets), true
}

func (s *State) Set(exerciseID int64, index int) (workout.Set, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sets := s.sets[exerciseID]
	if index < 0 || index >= len(sets) {
		return workout.Set{}, false
	}
	return cloneSet(sets[index]), true
}

func (s *State) Exercise(exerciseID int64) (workout.Exercise, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.exercises {
		if e.ID == exerciseID {
			return e, true
		}
	}
	return workout.Exercise{}, false
}

func (s *State) Exercises() []workout.Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]workout.Exercise, len(s.exercises))
	copy(res, s.exercises)
	return res
}

func (s *State) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Changes is signalled after mutations. Signals coalesce: a reader that
// falls behind sees one pending signal and should re-read the state.
func (s *State) Changes() <-chan struct{} {
	return s.changes
}

func (s *State) Snapshot() StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := StateSnapshot{
		Version:   s.version,
		Exercises: make([]ExerciseSets, 0, len(s.exercises)),
	}
	for _, e := range s.exercises {
		snapshot.Exercises = append(snapshot.Exercises, ExerciseSets{
			Exercise: e,
			Sets:     copySets(s.sets[e.ID]),
		})
	}
	return snapshot
}

// bump must be called with the write lock held.
func (s *State) bump() {
	s.version++
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

func copySets(sets []workout.Set) []workout.Set {
	res := make([]workout.Set, 0, len(sets))
	for _, set := range sets {
		res = append(res, cloneSet(set))
	}
	return res
}
