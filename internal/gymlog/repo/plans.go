package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/gymlog/workout"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

const planExerciseColumns = `id, plan_id, exercise_id, target_sets, target_reps, target_weight_kg, target_distance_m, target_duration_sec, sort_order`

// AddPlan stores the plan and its exercises in one transaction.
func (r *Repo) AddPlan(ctx context.Context, plan workout.Plan) (_ *workout.Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.plans.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.exercises", len(plan.Exercises)))

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(
			ctx,
			`INSERT INTO plans (name) VALUES ($1) RETURNING id`,
			plan.Name,
		).Scan(&plan.ID); err != nil {
			return fmt.Errorf("insert plan: %w", err)
		}
		return insertPlanExercises(ctx, tx, &plan)
	})
	if err != nil {
		return nil, mapErr(err, workout.ErrExerciseNotFound)
	}

	return &plan, nil
}

// UpdatePlan renames the plan and replaces its exercises in one
// transaction. Sessions already started from the plan keep their sets.
func (r *Repo) UpdatePlan(ctx context.Context, plan workout.Plan) (_ *workout.Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.plans.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("plan.id", plan.ID),
		attribute.Int("plan.exercises", len(plan.Exercises)),
	)

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE plans SET name = $1 WHERE id = $2`, plan.Name, plan.ID)
		if err != nil {
			return fmt.Errorf("update plan: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return workout.ErrPlanNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM plan_exercises WHERE plan_id = $1`, plan.ID); err != nil {
			return fmt.Errorf("delete plan exercises: %w", err)
		}
		return insertPlanExercises(ctx, tx, &plan)
	})
	if err != nil {
		return nil, mapErr(err, workout.ErrExerciseNotFound)
	}

	return &plan, nil
}

func insertPlanExercises(ctx context.Context, tx pgx.Tx, plan *workout.Plan) error {
	for i := range plan.Exercises {
		pe := &plan.Exercises[i]
		pe.PlanID = plan.ID
		if err := tx.QueryRow(
			ctx,
			`
				INSERT INTO plan_exercises
					(plan_id, exercise_id, target_sets, target_reps, target_weight_kg, target_distance_m, target_duration_sec, sort_order)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				RETURNING id
			`,
			pe.PlanID,
			pe.ExerciseID,
			pe.TargetSets,
			pe.TargetReps,
			pe.TargetWeightKg,
			pe.TargetDistanceM,
			pe.TargetDurationSec,
			pe.SortOrder,
		).Scan(&pe.ID); err != nil {
			return fmt.Errorf("insert plan exercise %d: %w", pe.ExerciseID, err)
		}
	}
	return nil
}

// GetPlan returns the plan header, without its exercises.
func (r *Repo) GetPlan(ctx context.Context, id int64) (_ *workout.Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.plans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("plan.id", id))

	plan := workout.Plan{}
	err = r.db.QueryRow(ctx, `SELECT id, name FROM plans WHERE id = $1`, id).
		Scan(&plan.ID, &plan.Name)
	if err != nil {
		return nil, mapErr(err, workout.ErrPlanNotFound)
	}
	return &plan, nil
}

func (r *Repo) ListPlans(ctx context.Context) (_ []workout.Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.plans.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, name FROM plans ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("plans [query]: %w", err)
	}
	defer rows.Close()

	plans := []workout.Plan{}
	for rows.Next() {
		var plan workout.Plan
		if err := rows.Scan(&plan.ID, &plan.Name); err != nil {
			return nil, fmt.Errorf("plans [rows scan]: %w", err)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("plans [rows error]: %w", err)
	}

	return plans, nil
}

// DeletePlan removes the plan with its entries. Sessions started from it
// keep their sets and lose the plan reference.
func (r *Repo) DeletePlan(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.plans.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("plan.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workout.ErrPlanNotFound
	}
	return nil
}

func (r *Repo) GetPlanExercises(ctx context.Context, planID int64) (_ []workout.PlanExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.plans.get_exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("plan.id", planID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+planExerciseColumns+`
			FROM plan_exercises
			WHERE plan_id = $1
			ORDER BY sort_order ASC, id ASC
		`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("plan exercises [query]: %w", err)
	}
	defer rows.Close()

	var planExercises []workout.PlanExercise
	for rows.Next() {
		var pe workout.PlanExercise
		err := rows.Scan(
			&pe.ID,
			&pe.PlanID,
			&pe.ExerciseID,
			&pe.TargetSets,
			&pe.TargetReps,
			&pe.TargetWeightKg,
			&pe.TargetDistanceM,
			&pe.TargetDurationSec,
			&pe.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("plan exercises [rows scan]: %w", err)
		}
		planExercises = append(planExercises, pe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("plan exercises [rows error]: %w", err)
	}

	return planExercises, nil
}
