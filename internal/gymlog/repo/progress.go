package repo

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/gymlog/workout"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

// progressAggregates maps each metric to its per-date aggregate and the
// column it reads.
var progressAggregates = map[workout.ProgressMetric]struct {
	aggregate string
	column    string
}{
	workout.ProgressMaxWeight:   {aggregate: "MAX", column: "weight_kg"},
	workout.ProgressMaxDistance: {aggregate: "MAX", column: "distance_m"},
	workout.ProgressMinDuration: {aggregate: "MIN", column: "duration_sec"},
}

// GetProgress aggregates the successful (EASY or HARD) sets of the exercise
// per session date, oldest first.
func (r *Repo) GetProgress(ctx context.Context, exerciseID int64, metric workout.ProgressMetric) (_ []workout.ProgressPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("exercise.id", exerciseID),
		attribute.String("metric", string(metric)),
	)

	agg, ok := progressAggregates[metric]
	if !ok {
		return nil, fmt.Errorf("%w: unknown progress metric [%s]", workout.ErrInvalidInput, metric)
	}

	query := fmt.Sprintf(
		`
			SELECT ws.date, %[1]s(s.%[2]s)::float8
			FROM sets s
			INNER JOIN sessions ws ON s.session_id = ws.id
			WHERE s.exercise_id = $1 AND s.status IN ('EASY', 'HARD') AND s.%[2]s IS NOT NULL
			GROUP BY ws.date
			ORDER BY ws.date ASC
		`,
		agg.aggregate,
		agg.column,
	)

	rows, err := r.db.Query(ctx, query, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("progress [query]: %w", err)
	}
	defer rows.Close()

	points := []workout.ProgressPoint{}
	for rows.Next() {
		var point workout.ProgressPoint
		if err := rows.Scan(&point.Date, &point.Value); err != nil {
			return nil, fmt.Errorf("progress [rows scan]: %w", err)
		}
		points = append(points, point)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("progress [rows error]: %w", err)
	}

	return points, nil
}
