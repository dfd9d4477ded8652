package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2beens/gymlog/internal/gymlog/workout"
	"github.com/2beens/gymlog/pkg"
)

// Repo is the Postgres storage of the workout log. Schema and cascade
// rules live in internal/db/migrations.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// mapErr translates driver errors into the workout error taxonomy.
func mapErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return notFound
	case pkg.IsForeignKeyViolationError(err):
		return fmt.Errorf("%w: %w", workout.ErrNotFound, err)
	case pkg.IsCheckViolationError(err):
		return fmt.Errorf("%w: %w", workout.ErrInvalidInput, err)
	default:
		return err
	}
}

// inTx runs fn in a transaction, committed when fn succeeds.
func (r *Repo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	return fn(tx)
}
