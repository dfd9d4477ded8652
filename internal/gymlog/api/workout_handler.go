package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/gymlog/resttimer"
	"github.com/2beens/gymlog/internal/gymlog/tracker"
	"github.com/2beens/gymlog/internal/gymlog/workout"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workout_mocks_test.go -package=api_test

type workoutTracker interface {
	Begin(ctx context.Context, planID int64) (tracker.Snapshot, error)
	Resume(ctx context.Context, sessionID int64) (tracker.Snapshot, error)
	Current() (tracker.Snapshot, bool)
	Changes() <-chan struct{}
	RecordSet(ctx context.Context, exerciseID int64, index int, input workout.SetInput) (workout.Set, error)
	SetWeightForAll(ctx context.Context, exerciseID int64, weight string) ([]workout.Set, error)
	AddSet(ctx context.Context, exerciseID int64) (workout.Set, error)
	Finish(ctx context.Context) error
	Delete(ctx context.Context) error
	ExtendRest(seconds int) resttimer.Snapshot
	DismissRest()
	RestTimer() resttimer.Snapshot
}

const defaultWatchTimeout = 25 * time.Second

type StartRequest struct {
	PlanID int64 `json:"planId"`
}

type ResumeRequest struct {
	SessionID int64 `json:"sessionId"`
}

type WeightRequest struct {
	Weight string `json:"weight"`
}

type ExtendRequest struct {
	Seconds int `json:"seconds"`
}

// WorkoutHandler exposes the active workout tracker.
type WorkoutHandler struct {
	tracker      workoutTracker
	watchTimeout time.Duration
}

func NewWorkoutHandler(tracker workoutTracker, watchTimeout time.Duration) *WorkoutHandler {
	if watchTimeout <= 0 {
		watchTimeout = defaultWatchTimeout
	}
	return &WorkoutHandler{
		tracker:      tracker,
		watchTimeout: watchTimeout,
	}
}

func (handler *WorkoutHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.workout.start")
	defer span.End()

	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlanID <= 0 {
		http.Error(w, "error, invalid start request", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int64("plan.id", req.PlanID))

	snap, err := handler.tracker.Begin(ctx, req.PlanID)
	if err != nil {
		writeError(w, "start workout", err)
		return
	}

	log.Debugf("workout started: session %d from plan %d", snap.Session.ID, req.PlanID)
	pkg.WriteJSON(w, snap, http.StatusCreated)
}

// HandleResume accepts an empty body, in which case the session still in
// progress is resumed.
func (handler *WorkoutHandler) HandleResume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.workout.resume")
	defer span.End()

	var req ResumeRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID < 0 {
			http.Error(w, "error, invalid resume request", http.StatusBadRequest)
			return
		}
	}

	snap, err := handler.tracker.Resume(ctx, req.SessionID)
	if err != nil {
		writeError(w, "resume workout", err)
		return
	}
	pkg.WriteJSON(w, snap, http.StatusOK)
}

func (handler *WorkoutHandler) HandleCurrent(w http.ResponseWriter, _ *http.Request) {
	snap, ok := handler.tracker.Current()
	if !ok {
		writeError(w, "get workout", tracker.ErrNoActiveWorkout)
		return
	}
	pkg.WriteJSON(w, snap, http.StatusOK)
}

// HandleWatch blocks until the active workout moves past the given
// version or the watch timeout elapses, then returns the current snapshot.
func (handler *WorkoutHandler) HandleWatch(w http.ResponseWriter, r *http.Request) {
	since, err := strconv.ParseUint(r.URL.Query().Get("since"), 10, 64)
	if err != nil {
		http.Error(w, "error, invalid since version", http.StatusBadRequest)
		return
	}

	changes := handler.tracker.Changes()
	snap, ok := handler.tracker.Current()
	if !ok || changes == nil {
		writeError(w, "watch workout", tracker.ErrNoActiveWorkout)
		return
	}

	if snap.Version == since {
		timer := time.NewTimer(handler.watchTimeout)
		defer timer.Stop()
		select {
		case <-changes:
		case <-timer.C:
		case <-r.Context().Done():
			return
		}
		if snap, ok = handler.tracker.Current(); !ok {
			writeError(w, "watch workout", tracker.ErrNoActiveWorkout)
			return
		}
	}
	pkg.WriteJSON(w, snap, http.StatusOK)
}

func (handler *WorkoutHandler) HandleRecordSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.workout.set.record")
	defer span.End()

	exerciseID, ok := pathID(r, "eid")
	if !ok {
		http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
		return
	}
	index, err := strconv.Atoi(mux.Vars(r)["idx"])
	if err != nil || index < 0 {
		http.Error(w, "error, invalid set index", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int64("exercise.id", exerciseID), attribute.Int("set.index", index))

	var input workout.SetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Tracef("record set, unmarshal json: %s", err)
		http.Error(w, "error, invalid set json", http.StatusBadRequest)
		return
	}

	set, err := handler.tracker.RecordSet(ctx, exerciseID, index, input)
	if err != nil {
		writeError(w, "record set", err)
		return
	}
	pkg.WriteJSON(w, set, http.StatusOK)
}

func (handler *WorkoutHandler) HandleSetWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.workout.weight")
	defer span.End()

	exerciseID, ok := pathID(r, "eid")
	if !ok {
		http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
		return
	}

	var req WeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "error, invalid weight request", http.StatusBadRequest)
		return
	}

	sets, err := handler.tracker.SetWeightForAll(ctx, exerciseID, req.Weight)
	if err != nil {
		writeError(w, "set weight for all sets", err)
		return
	}
	pkg.WriteJSON(w, sets, http.StatusOK)
}

func (handler *WorkoutHandler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.workout.set.add")
	defer span.End()

	exerciseID, ok := pathID(r, "eid")
	if !ok {
		http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
		return
	}

	set, err := handler.tracker.AddSet(ctx, exerciseID)
	if err != nil {
		writeError(w, "add set", err)
		return
	}
	pkg.WriteJSON(w, set, http.StatusCreated)
}

func (handler *WorkoutHandler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.workout.finish")
	defer span.End()

	if err := handler.tracker.Finish(ctx); err != nil {
		writeError(w, "finish workout", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *WorkoutHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.workout.delete")
	defer span.End()

	if err := handler.tracker.Delete(ctx); err != nil {
		writeError(w, "delete workout", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *WorkoutHandler) HandleTimer(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, handler.tracker.RestTimer(), http.StatusOK)
}

// HandleExtendTimer accepts an empty body for the default extension.
func (handler *WorkoutHandler) HandleExtendTimer(w http.ResponseWriter, r *http.Request) {
	var req ExtendRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "error, invalid extend request", http.StatusBadRequest)
			return
		}
	}
	pkg.WriteJSON(w, handler.tracker.ExtendRest(req.Seconds), http.StatusOK)
}

func (handler *WorkoutHandler) HandleDismissTimer(w http.ResponseWriter, _ *http.Request) {
	handler.tracker.DismissRest()
	w.WriteHeader(http.StatusNoContent)
}
