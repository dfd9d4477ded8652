package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/gymlog/tracker"
	"github.com/2beens/gymlog/internal/gymlog/workout"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

// SessionDetail is the read-only view of a recorded session.
type SessionDetail struct {
	Session   workout.Session        `json:"session"`
	PlanName  string                 `json:"planName,omitempty"`
	Exercises []tracker.ExerciseView `json:"exercises"`
}

type CalendarDayResponse struct {
	Date     string          `json:"date"`
	Sessions []SessionDetail `json:"sessions"`
}

// HandleGetSession shows one session with its sets grouped by exercise.
func (handler *CatalogHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.sessions.get")
	defer span.End()

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "error, invalid session id", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int64("session.id", id))

	session, err := handler.repo.GetSession(ctx, id)
	if err != nil {
		writeError(w, "get session", err)
		return
	}

	detail, err := handler.sessionDetail(ctx, *session)
	if err != nil {
		writeError(w, "get session", err)
		return
	}
	pkg.WriteJSON(w, detail, http.StatusOK)
}

// HandleCalendarDay lists the sessions of one day, in start order.
func (handler *CatalogHandler) HandleCalendarDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.calendar.day")
	defer span.End()

	dateParam := mux.Vars(r)["date"]
	date, err := time.Parse(time.DateOnly, dateParam)
	if err != nil {
		http.Error(w, fmt.Sprintf("error, invalid date [%s]", dateParam), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("date", dateParam))

	sessions, err := handler.repo.GetSessionsForDate(ctx, date)
	if err != nil {
		writeError(w, "get sessions for date", err)
		return
	}

	res := CalendarDayResponse{
		Date:     date.Format(time.DateOnly),
		Sessions: make([]SessionDetail, 0, len(sessions)),
	}
	for _, session := range sessions {
		detail, err := handler.sessionDetail(ctx, session)
		if err != nil {
			writeError(w, "get sessions for date", err)
			return
		}
		res.Sessions = append(res.Sessions, detail)
	}
	pkg.WriteJSON(w, res, http.StatusOK)
}

func (handler *CatalogHandler) sessionDetail(ctx context.Context, session workout.Session) (SessionDetail, error) {
	detail := SessionDetail{
		Session:   session,
		Exercises: []tracker.ExerciseView{},
	}

	if session.PlanID != nil {
		plan, err := handler.repo.GetPlan(ctx, *session.PlanID)
		switch {
		case err == nil:
			detail.PlanName = plan.Name
		case !errors.Is(err, workout.ErrNotFound):
			return SessionDetail{}, fmt.Errorf("plan of session %d: %w", session.ID, err)
		}
	}

	sets, err := handler.repo.GetSetsForSession(ctx, session.ID)
	if err != nil {
		return SessionDetail{}, fmt.Errorf("sets of session %d: %w", session.ID, err)
	}

	order, grouped := workout.GroupSetsByExercise(sets)
	for _, exerciseID := range order {
		exercise, err := handler.repo.GetExercise(ctx, exerciseID)
		if err != nil {
			return SessionDetail{}, fmt.Errorf("exercise %d of session %d: %w", exerciseID, session.ID, err)
		}
		exerciseSets := grouped[exerciseID]
		sort.SliceStable(exerciseSets, func(i, j int) bool {
			return exerciseSets[i].SetNumber < exerciseSets[j].SetNumber
		})
		detail.Exercises = append(detail.Exercises, tracker.ExerciseView{
			Exercise:    *exercise,
			DisplayName: exercise.DisplayName(),
			Sets:        exerciseSets,
		})
	}

	return detail, nil
}
