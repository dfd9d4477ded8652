package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/gymlog/workout"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

const exerciseColumns = `id, name, kind, fixed_dimension, fixed_value, level, distance_display_km`

func scanExercise(row pgx.Row) (workout.Exercise, error) {
	var (
		e     workout.Exercise
		kind  string
		fixed *string
	)
	err := row.Scan(
		&e.ID,
		&e.Name,
		&kind,
		&fixed,
		&e.FixedValue,
		&e.Level,
		&e.DistanceDisplayKm,
	)
	if err != nil {
		return workout.Exercise{}, err
	}

	e.Kind = workout.ExerciseKind(kind)
	if fixed != nil {
		d := workout.FixedDimension(*fixed)
		e.FixedDimension = &d
	}
	return e, nil
}

func fixedDimensionParam(e workout.Exercise) *string {
	if e.FixedDimension == nil {
		return nil
	}
	d := string(*e.FixedDimension)
	return &d
}

func (r *Repo) AddExercise(ctx context.Context, exercise workout.Exercise) (_ *workout.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO exercises
				(name, kind, fixed_dimension, fixed_value, level, distance_display_km)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`,
		exercise.Name,
		exercise.Kind.String(),
		fixedDimensionParam(exercise),
		exercise.FixedValue,
		exercise.Level,
		exercise.DistanceDisplayKm,
	).Scan(&exercise.ID)
	if err != nil {
		return nil, fmt.Errorf("add exercise: %w", mapErr(err, workout.ErrExerciseNotFound))
	}

	return &exercise, nil
}

func (r *Repo) UpdateExercise(ctx context.Context, exercise workout.Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("exercise.id", exercise.ID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE exercises
			SET name = $1, kind = $2, fixed_dimension = $3, fixed_value = $4, level = $5, distance_display_km = $6
			WHERE id = $7
		`,
		exercise.Name,
		exercise.Kind.String(),
		fixedDimensionParam(exercise),
		exercise.FixedValue,
		exercise.Level,
		exercise.DistanceDisplayKm,
		exercise.ID,
	)
	if err != nil {
		return fmt.Errorf("update exercise: %w", mapErr(err, workout.ErrExerciseNotFound))
	}
	if tag.RowsAffected() == 0 {
		return workout.ErrExerciseNotFound
	}
	return nil
}

// DeleteExercise removes the exercise together with its plan entries and sets.
func (r *Repo) DeleteExercise(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("exercise.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercises WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workout.ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) GetExercise(ctx context.Context, id int64) (_ *workout.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("exercise.id", id))

	exercise, err := scanExercise(r.db.QueryRow(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercises WHERE id = $1`,
		id,
	))
	if err != nil {
		return nil, mapErr(err, workout.ErrExerciseNotFound)
	}
	return &exercise, nil
}

func (r *Repo) ListExercises(ctx context.Context) (_ []workout.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercises ORDER BY name ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}
	defer rows.Close()

	exercises := []workout.Exercise{}
	for rows.Next() {
		exercise, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises [rows error]: %w", err)
	}

	return exercises, nil
}
