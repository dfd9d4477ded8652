package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/gymlog/workout"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

const setColumns = `s.id, s.session_id, s.exercise_id, s.set_number, s.weight_kg, s.reps_completed, s.distance_m, s.duration_sec, s.status`

const insertSetQuery = `
	INSERT INTO sets
		(session_id, exercise_id, set_number, weight_kg, reps_completed, distance_m, duration_sec, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id
`

func scanSet(row pgx.Row) (workout.Set, error) {
	var (
		s      workout.Set
		status string
	)
	err := row.Scan(
		&s.ID,
		&s.SessionID,
		&s.ExerciseID,
		&s.SetNumber,
		&s.WeightKg,
		&s.RepsCompleted,
		&s.DistanceM,
		&s.DurationSec,
		&status,
	)
	if err != nil {
		return workout.Set{}, err
	}
	s.Status = workout.SetStatus(status)
	return s, nil
}

func insertSetArgs(set workout.Set) []any {
	return []any{
		set.SessionID,
		set.ExerciseID,
		set.SetNumber,
		set.WeightKg,
		set.RepsCompleted,
		set.DistanceM,
		set.DurationSec,
		set.Status.String(),
	}
}

func collectSets(rows pgx.Rows) ([]workout.Set, error) {
	defer rows.Close()

	sets := []workout.Set{}
	for rows.Next() {
		set, err := scanSet(rows)
		if err != nil {
			return nil, fmt.Errorf("sets [rows scan]: %w", err)
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sets [rows error]: %w", err)
	}
	return sets, nil
}

func (r *Repo) InsertSet(ctx context.Context, set workout.Set) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.sets.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("session.id", set.SessionID),
		attribute.Int64("exercise.id", set.ExerciseID),
	)

	var id int64
	if err := r.db.QueryRow(ctx, insertSetQuery, insertSetArgs(set)...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert set: %w", mapErr(err, workout.ErrSetNotFound))
	}
	return id, nil
}

// InsertSets stores all sets or none of them.
func (r *Repo) InsertSets(ctx context.Context, sets []workout.Set) (_ []int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.sets.insert_many")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("sets.count", len(sets)))

	ids := make([]int64, 0, len(sets))
	err = r.inTx(ctx, func(tx pgx.Tx) error {
		for _, set := range sets {
			var id int64
			if err := tx.QueryRow(ctx, insertSetQuery, insertSetArgs(set)...).Scan(&id); err != nil {
				return fmt.Errorf("insert set #%d: %w", set.SetNumber, err)
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, mapErr(err, workout.ErrSetNotFound)
	}
	return ids, nil
}

func (r *Repo) UpdateSet(ctx context.Context, set workout.Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.sets.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("set.id", set.ID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE sets
			SET weight_kg = $1, reps_completed = $2, distance_m = $3, duration_sec = $4, status = $5
			WHERE id = $6 AND session_id = $7 AND exercise_id = $8 AND set_number = $9
		`,
		set.WeightKg,
		set.RepsCompleted,
		set.DistanceM,
		set.DurationSec,
		set.Status.String(),
		set.ID,
		set.SessionID,
		set.ExerciseID,
		set.SetNumber,
	)
	if err != nil {
		return fmt.Errorf("update set: %w", mapErr(err, workout.ErrSetNotFound))
	}
	if tag.RowsAffected() == 0 {
		return workout.ErrSetNotFound
	}
	return nil
}

func (r *Repo) GetSet(ctx context.Context, id int64) (_ *workout.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.sets.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("set.id", id))

	set, err := scanSet(r.db.QueryRow(ctx, `SELECT `+setColumns+` FROM sets s WHERE s.id = $1`, id))
	if err != nil {
		return nil, mapErr(err, workout.ErrSetNotFound)
	}
	return &set, nil
}

// GetSetsForSession returns the session's sets in insertion order.
func (r *Repo) GetSetsForSession(ctx context.Context, sessionID int64) (_ []workout.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.sets.for_session")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("session.id", sessionID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+setColumns+` FROM sets s WHERE s.session_id = $1 ORDER BY s.id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("sets for session [query]: %w", err)
	}
	return collectSets(rows)
}

func (r *Repo) GetSetsForExercise(ctx context.Context, sessionID, exerciseID int64) (_ []workout.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.sets.for_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("session.id", sessionID),
		attribute.Int64("exercise.id", exerciseID),
	)

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+setColumns+`
			FROM sets s
			WHERE s.session_id = $1 AND s.exercise_id = $2
			ORDER BY s.set_number ASC, s.id ASC
		`,
		sessionID,
		exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("sets for exercise [query]: %w", err)
	}
	return collectSets(rows)
}

// GetLastCompletedSet returns the attempted set of the exercise from its
// latest session, or nil.
func (r *Repo) GetLastCompletedSet(ctx context.Context, exerciseID int64) (_ *workout.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.sets.last_completed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("exercise.id", exerciseID))

	set, err := scanSet(r.db.QueryRow(
		ctx,
		`
			SELECT `+setColumns+`
			FROM sets s
			INNER JOIN sessions ws ON s.session_id = ws.id
			WHERE s.exercise_id = $1 AND s.status <> 'PENDING'
			ORDER BY ws.date DESC, s.id DESC
			LIMIT 1
		`,
		exerciseID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last completed set: %w", err)
	}
	return &set, nil
}
