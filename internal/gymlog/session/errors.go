package session

import (
	"errors"
	"fmt"

	"github.com/2beens/gymlog/internal/gymlog/workout"
)

// wrapRepoErr keeps NotFound and InvalidInput as they are and marks
// everything else as a persistence failure.
func wrapRepoErr(op string, err error) error {
	if errors.Is(err, workout.ErrNotFound) || errors.Is(err, workout.ErrInvalidInput) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, workout.ErrPersistence, err)
}
