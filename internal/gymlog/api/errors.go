package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/internal/gymlog/tracker"
	"github.com/2beens/gymlog/internal/gymlog/workout"
)

// statusFor maps engine errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, tracker.ErrNoActiveWorkout):
		return http.StatusNotFound
	case errors.Is(err, workout.ErrSessionInProgress), errors.Is(err, workout.ErrSessionCompleted):
		return http.StatusConflict
	case errors.Is(err, workout.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, workout.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, action string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Errorf("%s: %s", action, err)
		http.Error(w, "error, "+action+" failed", status)
		return
	}
	log.Debugf("%s: %s", action, err)
	http.Error(w, err.Error(), status)
}

func pathID(r *http.Request, name string) (int64, bool) {
	idStr := mux.Vars(r)[name]
	if idStr == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
