package session

import (
	"context"

	"github.com/2beens/gymlog/internal/gymlog/workout"
)

//go:generate mockgen -source=$GOFILE -destination=repository_mocks_test.go -package=session_test

// Repository is the storage the engine runs on. Get* lookups of a single
// entity return a workout.ErrNotFound flavoured error when the row is absent.
// The "last" lookups and GetInProgressSession return nil, nil instead.
type Repository interface {
	GetPlan(ctx context.Context, id int64) (*workout.Plan, error)
	GetPlanExercises(ctx context.Context, planID int64) ([]workout.PlanExercise, error)
	GetExercise(ctx context.Context, id int64) (*workout.Exercise, error)

	InsertSession(ctx context.Context, session workout.Session) (int64, error)
	GetSession(ctx context.Context, id int64) (*workout.Session, error)
	GetInProgressSession(ctx context.Context) (*workout.Session, error)
	UpdateSession(ctx context.Context, session workout.Session) error
	DeleteSession(ctx context.Context, id int64) error

	InsertSet(ctx context.Context, set workout.Set) (int64, error)
	InsertSets(ctx context.Context, sets []workout.Set) ([]int64, error)
	UpdateSet(ctx context.Context, set workout.Set) error
	GetSet(ctx context.Context, id int64) (*workout.Set, error)
	// GetSetsForSession orders by insertion (id).
	GetSetsForSession(ctx context.Context, sessionID int64) ([]workout.Set, error)
	// GetSetsForExercise orders by set number.
	GetSetsForExercise(ctx context.Context, sessionID, exerciseID int64) ([]workout.Set, error)

	GetLastCompletedSet(ctx context.Context, exerciseID int64) (*workout.Set, error)
	GetLastSessionForExercise(ctx context.Context, exerciseID int64) (*workout.Session, error)
}
