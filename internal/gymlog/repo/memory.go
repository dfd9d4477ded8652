package repo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/2beens/gymlog/internal/gymlog/workout"
)

// MemoryRepo keeps everything in process memory, with the same cascade
// rules as the Postgres schema. Used by tests and local experiments.
type MemoryRepo struct {
	mu            sync.Mutex
	lastID        int64
	exercises     map[int64]workout.Exercise
	plans         map[int64]workout.Plan
	planExercises map[int64]workout.PlanExercise
	sessions      map[int64]workout.Session
	sets          map[int64]workout.Set
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		exercises:     make(map[int64]workout.Exercise),
		plans:         make(map[int64]workout.Plan),
		planExercises: make(map[int64]workout.PlanExercise),
		sessions:      make(map[int64]workout.Session),
		sets:          make(map[int64]workout.Set),
	}
}

func (r *MemoryRepo) nextID() int64 {
	r.lastID++
	return r.lastID
}

func (r *MemoryRepo) AddExercise(_ context.Context, exercise workout.Exercise) (*workout.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exercise.ID = r.nextID()
	r.exercises[exercise.ID] = exercise
	return &exercise, nil
}

func (r *MemoryRepo) GetExercise(_ context.Context, id int64) (*workout.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.exercises[id]
	if !ok {
		return nil, workout.ErrExerciseNotFound
	}
	return &e, nil
}

func (r *MemoryRepo) ListExercises(_ context.Context) ([]workout.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]workout.Exercise, 0, len(r.exercises))
	for _, e := range r.exercises {
		res = append(res, e)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Name == res[j].Name {
			return res[i].ID < res[j].ID
		}
		return res[i].Name < res[j].Name
	})
	return res, nil
}

func (r *MemoryRepo) UpdateExercise(_ context.Context, exercise workout.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.exercises[exercise.ID]; !ok {
		return workout.ErrExerciseNotFound
	}
	r.exercises[exercise.ID] = exercise
	return nil
}

// DeleteExercise cascades to plan entries and sets.
func (r *MemoryRepo) DeleteExercise(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.exercises[id]; !ok {
		return workout.ErrExerciseNotFound
	}
	delete(r.exercises, id)
	for peID, pe := range r.planExercises {
		if pe.ExerciseID == id {
			delete(r.planExercises, peID)
		}
	}
	for setID, s := range r.sets {
		if s.ExerciseID == id {
			delete(r.sets, setID)
		}
	}
	return nil
}

func (r *MemoryRepo) AddPlan(_ context.Context, plan workout.Plan) (*workout.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, pe := range plan.Exercises {
		if _, ok := r.exercises[pe.ExerciseID]; !ok {
			return nil, workout.ErrExerciseNotFound
		}
	}

	plan.ID = r.nextID()
	exercises := make([]workout.PlanExercise, 0, len(plan.Exercises))
	for _, pe := range plan.Exercises {
		pe.ID = r.nextID()
		pe.PlanID = plan.ID
		r.planExercises[pe.ID] = pe
		exercises = append(exercises, pe)
	}
	plan.Exercises = nil
	r.plans[plan.ID] = plan

	plan.Exercises = exercises
	return &plan, nil
}

// UpdatePlan renames the plan and replaces its exercises.
func (r *MemoryRepo) UpdatePlan(_ context.Context, plan workout.Plan) (*workout.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plans[plan.ID]; !ok {
		return nil, workout.ErrPlanNotFound
	}
	for _, pe := range plan.Exercises {
		if _, ok := r.exercises[pe.ExerciseID]; !ok {
			return nil, workout.ErrExerciseNotFound
		}
	}

	for peID, pe := range r.planExercises {
		if pe.PlanID == plan.ID {
			delete(r.planExercises, peID)
		}
	}
	exercises := make([]workout.PlanExercise, 0, len(plan.Exercises))
	for _, pe := range plan.Exercises {
		pe.ID = r.nextID()
		pe.PlanID = plan.ID
		r.planExercises[pe.ID] = pe
		exercises = append(exercises, pe)
	}
	plan.Exercises = nil
	r.plans[plan.ID] = plan

	plan.Exercises = exercises
	return &plan, nil
}

func (r *MemoryRepo) ListPlans(_ context.Context) ([]workout.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]workout.Plan, 0, len(r.plans))
	for _, p := range r.plans {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Name == res[j].Name {
			return res[i].ID < res[j].ID
		}
		return res[i].Name < res[j].Name
	})
	return res, nil
}

func (r *MemoryRepo) GetPlan(_ context.Context, id int64) (*workout.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.plans[id]
	if !ok {
		return nil, workout.ErrPlanNotFound
	}
	return &p, nil
}

// DeletePlan cascades to plan entries and detaches sessions started from it.
func (r *MemoryRepo) DeletePlan(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plans[id]; !ok {
		return workout.ErrPlanNotFound
	}
	delete(r.plans, id)
	for peID, pe := range r.planExercises {
		if pe.PlanID == id {
			delete(r.planExercises, peID)
		}
	}
	for sid, s := range r.sessions {
		if s.PlanID != nil && *s.PlanID == id {
			s.PlanID = nil
			r.sessions[sid] = s
		}
	}
	return nil
}

func (r *MemoryRepo) GetPlanExercises(_ context.Context, planID int64) ([]workout.PlanExercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res []workout.PlanExercise
	for _, pe := range r.planExercises {
		if pe.PlanID == planID {
			res = append(res, pe)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].SortOrder == res[j].SortOrder {
			return res[i].ID < res[j].ID
		}
		return res[i].SortOrder < res[j].SortOrder
	})
	return res, nil
}

func (r *MemoryRepo) InsertSession(_ context.Context, session workout.Session) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session.ID = r.nextID()
	r.sessions[session.ID] = session
	return session.ID, nil
}

func (r *MemoryRepo) GetSession(_ context.Context, id int64) (*workout.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, workout.ErrSessionNotFound
	}
	return &s, nil
}

func (r *MemoryRepo) GetInProgressSession(_ context.Context) (*workout.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found *workout.Session
	for _, s := range r.sessions {
		if s.Status != workout.SessionInProgress {
			continue
		}
		if found == nil || s.StartedAt.After(found.StartedAt) {
			found = &s
		}
	}
	return found, nil
}

func (r *MemoryRepo) UpdateSession(_ context.Context, session workout.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; !ok {
		return workout.ErrSessionNotFound
	}
	r.sessions[session.ID] = session
	return nil
}

// DeleteSession cascades to the session's sets.
func (r *MemoryRepo) DeleteSession(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return workout.ErrSessionNotFound
	}
	delete(r.sessions, id)
	for setID, s := range r.sets {
		if s.SessionID == id {
			delete(r.sets, setID)
		}
	}
	return nil
}

func (r *MemoryRepo) InsertSet(_ context.Context, set workout.Set) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSetRefs(set); err != nil {
		return 0, err
	}
	set.ID = r.nextID()
	r.sets[set.ID] = set
	return set.ID, nil
}

// InsertSets is all or nothing.
func (r *MemoryRepo) InsertSets(_ context.Context, sets []workout.Set) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range sets {
		if err := r.checkSetRefs(s); err != nil {
			return nil, err
		}
	}
	ids := make([]int64, 0, len(sets))
	for _, s := range sets {
		s.ID = r.nextID()
		r.sets[s.ID] = s
		ids = append(ids, s.ID)
	}
	return ids, nil
}

func (r *MemoryRepo) checkSetRefs(set workout.Set) error {
	if _, ok := r.sessions[set.SessionID]; !ok {
		return workout.ErrSessionNotFound
	}
	if _, ok := r.exercises[set.ExerciseID]; !ok {
		return workout.ErrExerciseNotFound
	}
	return nil
}

func (r *MemoryRepo) UpdateSet(_ context.Context, set workout.Set) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sets[set.ID]; !ok {
		return workout.ErrSetNotFound
	}
	r.sets[set.ID] = set
	return nil
}

func (r *MemoryRepo) GetSet(_ context.Context, id int64) (*workout.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sets[id]
	if !ok {
		return nil, workout.ErrSetNotFound
	}
	return &s, nil
}

func (r *MemoryRepo) GetSetsForSession(_ context.Context, sessionID int64) ([]workout.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.filterSets(func(s workout.Set) bool {
		return s.SessionID == sessionID
	}, byID), nil
}

func (r *MemoryRepo) GetSetsForExercise(_ context.Context, sessionID, exerciseID int64) ([]workout.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.filterSets(func(s workout.Set) bool {
		return s.SessionID == sessionID && s.ExerciseID == exerciseID
	}, bySetNumber), nil
}

// GetLastCompletedSet returns the attempted set of the exercise from its
// latest session (by date), the last inserted one within that session.
func (r *MemoryRepo) GetLastCompletedSet(_ context.Context, exerciseID int64) (*workout.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found *workout.Set
	var foundDate time.Time
	for _, s := range r.sets {
		if s.ExerciseID != exerciseID || !s.Status.Attempted() {
			continue
		}
		session, ok := r.sessions[s.SessionID]
		if !ok {
			continue
		}
		if found == nil ||
			session.Date.After(foundDate) ||
			(session.Date.Equal(foundDate) && s.ID > found.ID) {
			found = &s
			foundDate = session.Date
		}
	}
	return found, nil
}

// GetLastSessionForExercise returns the latest session (by date, then id)
// holding at least one attempted set of the exercise.
func (r *MemoryRepo) GetLastSessionForExercise(_ context.Context, exerciseID int64) (*workout.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found *workout.Session
	for _, s := range r.sets {
		if s.ExerciseID != exerciseID || !s.Status.Attempted() {
			continue
		}
		session, ok := r.sessions[s.SessionID]
		if !ok {
			continue
		}
		if found == nil ||
			session.Date.After(found.Date) ||
			(session.Date.Equal(found.Date) && session.ID > found.ID) {
			found = &session
		}
	}
	return found, nil
}

// GetProgress aggregates the successful sets of the exercise per session date.
func (r *MemoryRepo) GetProgress(_ context.Context, exerciseID int64, metric workout.ProgressMetric) ([]workout.ProgressPoint, error) {
	if !metric.IsValid() {
		return nil, fmt.Errorf("%w: unknown progress metric [%s]", workout.ErrInvalidInput, metric)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	perDate := make(map[string]workout.ProgressPoint)
	for _, s := range r.sets {
		if s.ExerciseID != exerciseID || !s.Status.Successful() {
			continue
		}
		session, ok := r.sessions[s.SessionID]
		if !ok {
			continue
		}

		var value float64
		switch {
		case metric == workout.ProgressMaxWeight && s.WeightKg != nil:
			value = *s.WeightKg
		case metric == workout.ProgressMaxDistance && s.DistanceM != nil:
			value = float64(*s.DistanceM)
		case metric == workout.ProgressMinDuration && s.DurationSec != nil:
			value = float64(*s.DurationSec)
		default:
			continue
		}

		key := session.Date.Format(time.DateOnly)
		current, seen := perDate[key]
		if !seen ||
			(metric == workout.ProgressMinDuration && value < current.Value) ||
			(metric != workout.ProgressMinDuration && value > current.Value) {
			perDate[key] = workout.ProgressPoint{Date: session.Date, Value: value}
		}
	}

	points := make([]workout.ProgressPoint, 0, len(perDate))
	for _, point := range perDate {
		points = append(points, point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points, nil
}

func (r *MemoryRepo) GetSessionsForDate(_ context.Context, date time.Time) ([]workout.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := date.Format(time.DateOnly)
	sessions := []workout.Session{}
	for _, s := range r.sessions {
		if s.Date.Format(time.DateOnly) == key {
			sessions = append(sessions, s)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].StartedAt.Equal(sessions[j].StartedAt) {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].StartedAt.Before(sessions[j].StartedAt)
	})
	return sessions, nil
}

// GetWorkoutDates returns the distinct dates of completed sessions in [from, to].
func (r *MemoryRepo) GetWorkoutDates(_ context.Context, from, to time.Time) ([]time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fromKey, toKey := from.Format(time.DateOnly), to.Format(time.DateOnly)
	seen := make(map[string]bool)
	dates := []time.Time{}
	for _, s := range r.sessions {
		key := s.Date.Format(time.DateOnly)
		if s.Status != workout.SessionCompleted || key < fromKey || key > toKey || seen[key] {
			continue
		}
		seen[key] = true
		dates = append(dates, s.Date)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates, nil
}

func (r *MemoryRepo) filterSets(keep func(workout.Set) bool, less func(a, b workout.Set) bool) []workout.Set {
	res := []workout.Set{}
	for _, s := range r.sets {
		if keep(s) {
			res = append(res, s)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return less(res[i], res[j])
	})
	return res
}

func byID(a, b workout.Set) bool {
	return a.ID < b.ID
}

func bySetNumber(a, b workout.Set) bool {
	if a.SetNumber == b.SetNumber {
		return a.ID < b.ID
	}
	return a.SetNumber < b.SetNumber
}
