package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/gymlog/workout"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

const sessionColumns = `ws.id, ws.plan_id, ws.date, ws.status, ws.started_at, ws.completed_at`

func scanSession(row pgx.Row) (workout.Session, error) {
	var (
		s      workout.Session
		status string
	)
	err := row.Scan(
		&s.ID,
		&s.PlanID,
		&s.Date,
		&status,
		&s.StartedAt,
		&s.CompletedAt,
	)
	if err != nil {
		return workout.Session{}, err
	}
	s.Status = workout.SessionStatus(status)
	return s, nil
}

func (r *Repo) InsertSession(ctx context.Context, session workout.Session) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.sessions.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int64
	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO sessions (plan_id, date, status, started_at, completed_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`,
		session.PlanID,
		session.Date,
		session.Status.String(),
		session.StartedAt,
		session.CompletedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert session: %w", mapErr(err, workout.ErrPlanNotFound))
	}
	return id, nil
}

func (r *Repo) GetSession(ctx context.Context, id int64) (_ *workout.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("session.id", id))

	session, err := scanSession(r.db.QueryRow(
		ctx,
		`SELECT `+sessionColumns+` FROM sessions ws WHERE ws.id = $1`,
		id,
	))
	if err != nil {
		return nil, mapErr(err, workout.ErrSessionNotFound)
	}
	return &session, nil
}

// GetInProgressSession returns the latest started IN_PROGRESS session, or
// nil when there is none.
func (r *Repo) GetInProgressSession(ctx context.Context) (_ *workout.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.sessions.get_in_progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := scanSession(r.db.QueryRow(
		ctx,
		`
			SELECT `+sessionColumns+`
			FROM sessions ws
			WHERE ws.status = 'IN_PROGRESS'
			ORDER BY ws.started_at DESC, ws.id DESC
			LIMIT 1
		`,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get in progress session: %w", err)
	}
	return &session, nil
}

func (r *Repo) UpdateSession(ctx context.Context, session workout.Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.sessions.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("session.id", session.ID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE sessions
			SET plan_id = $1, date = $2, status = $3, started_at = $4, completed_at = $5
			WHERE id = $6
		`,
		session.PlanID,
		session.Date,
		session.Status.String(),
		session.StartedAt,
		session.CompletedAt,
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", mapErr(err, workout.ErrSessionNotFound))
	}
	if tag.RowsAffected() == 0 {
		return workout.ErrSessionNotFound
	}
	return nil
}

// DeleteSession removes the session, its sets go with it.
func (r *Repo) DeleteSession(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.sessions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("session.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workout.ErrSessionNotFound
	}
	return nil
}

// GetLastSessionForExercise returns the latest session (by date) holding an
// attempted set of the exercise, or nil.
func (r *Repo) GetLastSessionForExercise(ctx context.Context, exerciseID int64) (_ *workout.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.sessions.last_for_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("exercise.id", exerciseID))

	session, err := scanSession(r.db.QueryRow(
		ctx,
		`
			SELECT `+sessionColumns+`
			FROM sessions ws
			WHERE EXISTS (
				SELECT 1 FROM sets s
				WHERE s.session_id = ws.id AND s.exercise_id = $1 AND s.status <> 'PENDING'
			)
			ORDER BY ws.date DESC, ws.id DESC
			LIMIT 1
		`,
		exerciseID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last session for exercise: %w", err)
	}
	return &session, nil
}

// GetSessionsForDate returns the sessions of the day in start order,
// whatever their status.
func (r *Repo) GetSessionsForDate(ctx context.Context, date time.Time) (_ []workout.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.sessions.for_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+sessionColumns+`
			FROM sessions ws
			WHERE ws.date = $1
			ORDER BY ws.started_at ASC, ws.id ASC
		`,
		workout.DateOf(date),
	)
	if err != nil {
		return nil, fmt.Errorf("sessions for date [query]: %w", err)
	}
	defer rows.Close()

	sessions := []workout.Session{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("sessions for date [rows scan]: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sessions for date [rows error]: %w", err)
	}

	return sessions, nil
}

// GetWorkoutDates returns the distinct dates of completed sessions in [from, to].
func (r *Repo) GetWorkoutDates(ctx context.Context, from, to time.Time) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.sessions.workout_dates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("from", from.Format(time.DateOnly)),
		attribute.String("to", to.Format(time.DateOnly)),
	)

	rows, err := r.db.Query(
		ctx,
		`
			SELECT DISTINCT date
			FROM sessions
			WHERE date BETWEEN $1 AND $2 AND status = 'COMPLETED'
			ORDER BY date ASC
		`,
		workout.DateOf(from),
		workout.DateOf(to),
	)
	if err != nil {
		return nil, fmt.Errorf("workout dates [query]: %w", err)
	}
	defer rows.Close()

	dates := []time.Time{}
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("workout dates [rows scan]: %w", err)
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout dates [rows error]: %w", err)
	}

	return dates, nil
}
