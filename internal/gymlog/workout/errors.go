package workout

import "errors"

// Error taxonomy shared by the engine and its collaborators.
// Callers match with errors.Is; concrete errors wrap one of these.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrPersistence  = errors.New("persistence failure")

	ErrPlanNotFound     = notFound("plan")
	ErrExerciseNotFound = notFound("exercise")
	ErrSessionNotFound  = notFound("session")
	ErrSetNotFound      = notFound("set")

	ErrSessionInProgress = errors.New("another session is already in progress")
	ErrSessionCompleted  = errors.New("session is already completed")
)

type notFoundError struct {
	entity string
}

func notFound(entity string) error {
	return &notFoundError{entity: entity}
}

func (e *notFoundError) Error() string {
	return e.entity + " not found"
}

func (e *notFoundError) Unwrap() error {
	return ErrNotFound
}
