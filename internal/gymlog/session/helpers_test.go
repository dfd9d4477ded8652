package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/2beens/gymlog/internal/gymlog/repo"
	"github.com/2beens/gymlog/internal/gymlog/workout"
)

var testNow = time.Date(2024, time.May, 20, 18, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testNow
}

func addExercise(t *testing.T, r *repo.MemoryRepo, e workout.Exercise) workout.Exercise {
	t.Helper()
	added, err := r.AddExercise(context.Background(), e)
	require.NoError(t, err)
	return *added
}

func weightExercise(t *testing.T, r *repo.MemoryRepo, name string) workout.Exercise {
	t.Helper()
	return addExercise(t, r, workout.Exercise{Name: name, Kind: workout.KindWeight})
}

func cardioExercise(t *testing.T, r *repo.MemoryRepo, name string, fixed *workout.FixedDimension, value int) workout.Exercise {
	t.Helper()
	e := workout.Exercise{Name: name, Kind: workout.KindCardio}
	if fixed != nil {
		e.FixedDimension = fixed
		e.FixedValue = workout.Ptr(value)
	}
	return addExercise(t, r, e)
}

// pastSession stores a completed session with the given sets, daysAgo days before testNow.
func pastSession(t *testing.T, r *repo.MemoryRepo, daysAgo int, sets ...workout.Set) workout.Session {
	t.Helper()
	ctx := context.Background()

	started := testNow.AddDate(0, 0, -daysAgo)
	completed := started.Add(time.Hour)
	session := workout.Session{
		Date:        workout.DateOf(started),
		Status:      workout.SessionCompleted,
		StartedAt:   started,
		CompletedAt: &completed,
	}
	id, err := r.InsertSession(ctx, session)
	require.NoError(t, err)
	session.ID = id

	for i, s := range sets {
		s.SessionID = id
		if s.SetNumber == 0 {
			s.SetNumber = i + 1
		}
		_, err := r.InsertSet(ctx, s)
		require.NoError(t, err)
	}
	return session
}
