package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/gymlog/workout"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=api_test

type catalogRepo interface {
	ListExercises(ctx context.Context) ([]workout.Exercise, error)
	AddExercise(ctx context.Context, exercise workout.Exercise) (*workout.Exercise, error)
	GetExercise(ctx context.Context, id int64) (*workout.Exercise, error)
	UpdateExercise(ctx context.Context, exercise workout.Exercise) error
	DeleteExercise(ctx context.Context, id int64) error
	ListPlans(ctx context.Context) ([]workout.Plan, error)
	AddPlan(ctx context.Context, plan workout.Plan) (*workout.Plan, error)
	UpdatePlan(ctx context.Context, plan workout.Plan) (*workout.Plan, error)
	GetPlan(ctx context.Context, id int64) (*workout.Plan, error)
	GetPlanExercises(ctx context.Context, planID int64) ([]workout.PlanExercise, error)
	DeletePlan(ctx context.Context, id int64) error
	GetProgress(ctx context.Context, exerciseID int64, metric workout.ProgressMetric) ([]workout.ProgressPoint, error)
	GetWorkoutDates(ctx context.Context, from, to time.Time) ([]time.Time, error)
	GetSession(ctx context.Context, id int64) (*workout.Session, error)
	GetSessionsForDate(ctx context.Context, date time.Time) ([]workout.Session, error)
	GetSetsForSession(ctx context.Context, sessionID int64) ([]workout.Set, error)
}

type DeletedResponse struct {
	DeletedID int64 `json:"deletedId"`
}

type ProgressResponse struct {
	ExerciseID int64                   `json:"exerciseId"`
	Metric     workout.ProgressMetric  `json:"metric"`
	Points     []workout.ProgressPoint `json:"points"`
}

type CalendarResponse struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Dates []string `json:"dates"`
}

// CatalogHandler serves exercises, plans and the workout history views.
type CatalogHandler struct {
	repo catalogRepo
	now  func() time.Time
}

func NewCatalogHandler(repo catalogRepo) *CatalogHandler {
	return &CatalogHandler{
		repo: repo,
		now:  time.Now,
	}
}

func (handler *CatalogHandler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.exercises.list")
	defer span.End()

	exercises, err := handler.repo.ListExercises(ctx)
	if err != nil {
		writeError(w, "list exercises", err)
		return
	}
	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *CatalogHandler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.exercises.add")
	defer span.End()

	var exercise workout.Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("add exercise, unmarshal json: %s", err)
		http.Error(w, "error, invalid exercise json", http.StatusBadRequest)
		return
	}
	exercise.ID = 0
	if err := exercise.Validate(); err != nil {
		writeError(w, "add exercise", err)
		return
	}

	added, err := handler.repo.AddExercise(ctx, exercise)
	if err != nil {
		writeError(w, "add exercise", err)
		return
	}

	log.Debugf("exercise added: %d [%s]", added.ID, added.DisplayName())
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *CatalogHandler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.exercises.update")
	defer span.End()

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int64("exercise.id", id))

	var exercise workout.Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("update exercise, unmarshal json: %s", err)
		http.Error(w, "error, invalid exercise json", http.StatusBadRequest)
		return
	}
	exercise.ID = id
	if err := exercise.Validate(); err != nil {
		writeError(w, "update exercise", err)
		return
	}

	if err := handler.repo.UpdateExercise(ctx, exercise); err != nil {
		writeError(w, "update exercise", err)
		return
	}
	pkg.WriteJSON(w, exercise, http.StatusOK)
}

// HandleDeleteExercise removes the exercise with its plan entries and all
// its recorded sets.
func (handler *CatalogHandler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.exercises.delete")
	defer span.End()

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteExercise(ctx, id); err != nil {
		writeError(w, "delete exercise", err)
		return
	}
	pkg.WriteJSON(w, DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (handler *CatalogHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.exercises.progress")
	defer span.End()

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.GetExercise(ctx, id)
	if err != nil {
		writeError(w, "get exercise", err)
		return
	}

	metricParam := r.URL.Query().Get("metric")
	metric := workout.ProgressMetric(metricParam)
	if metricParam != "" && !metric.IsValid() {
		http.Error(w, "error, unknown metric", http.StatusBadRequest)
		return
	}
	metric = metric.DefaultFor(*exercise)

	points, err := handler.repo.GetProgress(ctx, id, metric)
	if err != nil {
		writeError(w, "get progress", err)
		return
	}

	pkg.WriteJSON(w, ProgressResponse{
		ExerciseID: id,
		Metric:     metric,
		Points:     points,
	}, http.StatusOK)
}

func (handler *CatalogHandler) HandleListPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.plans.list")
	defer span.End()

	plans, err := handler.repo.ListPlans(ctx)
	if err != nil {
		writeError(w, "list plans", err)
		return
	}
	pkg.WriteJSON(w, plans, http.StatusOK)
}

func (handler *CatalogHandler) HandleAddPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.plans.add")
	defer span.End()

	var plan workout.Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		log.Tracef("add plan, unmarshal json: %s", err)
		http.Error(w, "error, invalid plan json", http.StatusBadRequest)
		return
	}
	plan.ID = 0
	normalizePlanExercises(&plan)
	if err := plan.Validate(); err != nil {
		writeError(w, "add plan", err)
		return
	}

	added, err := handler.repo.AddPlan(ctx, plan)
	if err != nil {
		writeError(w, "add plan", err)
		return
	}

	log.Debugf("plan added: %d [%s] with %d exercises", added.ID, added.Name, len(added.Exercises))
	pkg.WriteJSON(w, added, http.StatusCreated)
}

// HandleUpdatePlan renames the plan and replaces its exercises. Sessions
// started from the plan before keep what they recorded.
func (handler *CatalogHandler) HandleUpdatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.plans.update")
	defer span.End()

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "error, invalid plan id", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int64("plan.id", id))

	var plan workout.Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		log.Tracef("update plan, unmarshal json: %s", err)
		http.Error(w, "error, invalid plan json", http.StatusBadRequest)
		return
	}
	plan.ID = id
	normalizePlanExercises(&plan)
	if err := plan.Validate(); err != nil {
		writeError(w, "update plan", err)
		return
	}

	updated, err := handler.repo.UpdatePlan(ctx, plan)
	if err != nil {
		writeError(w, "update plan", err)
		return
	}

	log.Debugf("plan updated: %d [%s] with %d exercises", updated.ID, updated.Name, len(updated.Exercises))
	pkg.WriteJSON(w, updated, http.StatusOK)
}

// normalizePlanExercises drops client ids and numbers unsorted entries by
// their position.
func normalizePlanExercises(plan *workout.Plan) {
	for i := range plan.Exercises {
		plan.Exercises[i].ID = 0
		plan.Exercises[i].PlanID = plan.ID
		if plan.Exercises[i].SortOrder == 0 {
			plan.Exercises[i].SortOrder = i
		}
	}
}

func (handler *CatalogHandler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.plans.get")
	defer span.End()

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "error, invalid plan id", http.StatusBadRequest)
		return
	}

	plan, err := handler.repo.GetPlan(ctx, id)
	if err != nil {
		writeError(w, "get plan", err)
		return
	}
	plan.Exercises, err = handler.repo.GetPlanExercises(ctx, id)
	if err != nil {
		writeError(w, "get plan exercises", err)
		return
	}
	pkg.WriteJSON(w, plan, http.StatusOK)
}

// HandleDeletePlan keeps sessions started from the plan.
func (handler *CatalogHandler) HandleDeletePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.plans.delete")
	defer span.End()

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "error, invalid plan id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeletePlan(ctx, id); err != nil {
		writeError(w, "delete plan", err)
		return
	}
	pkg.WriteJSON(w, DeletedResponse{DeletedID: id}, http.StatusOK)
}

// HandleCalendar lists the dates with a completed workout. Without from/to
// it covers the current month.
func (handler *CatalogHandler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.calendar")
	defer span.End()

	now := handler.now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, -1)

	var err error
	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		if from, err = time.Parse(time.DateOnly, fromParam); err != nil {
			http.Error(w, "error, invalid from date", http.StatusBadRequest)
			return
		}
	}
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		if to, err = time.Parse(time.DateOnly, toParam); err != nil {
			http.Error(w, "error, invalid to date", http.StatusBadRequest)
			return
		}
	}
	if to.Before(from) {
		http.Error(w, fmt.Sprintf("error, to [%s] is before from [%s]", to.Format(time.DateOnly), from.Format(time.DateOnly)), http.StatusBadRequest)
		return
	}

	dates, err := handler.repo.GetWorkoutDates(ctx, from, to)
	if err != nil {
		writeError(w, "get workout dates", err)
		return
	}

	res := CalendarResponse{
		From:  from.Format(time.DateOnly),
		To:    to.Format(time.DateOnly),
		Dates: make([]string, 0, len(dates)),
	}
	for _, d := range dates {
		res.Dates = append(res.Dates, d.Format(time.DateOnly))
	}
	pkg.WriteJSON(w, res, http.StatusOK)
}
