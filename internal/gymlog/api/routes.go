package api

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the gymlog endpoints on a /gymlog subrouter and
// returns it so callers can attach middleware.
func RegisterRoutes(r *mux.Router, catalog *CatalogHandler, workout *WorkoutHandler) *mux.Router {
	g := r.PathPrefix("/gymlog").Subrouter()

	g.HandleFunc("/exercises", catalog.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	g.HandleFunc("/exercises", catalog.HandleAddExercise).Methods("POST", "OPTIONS").Name("new-exercise")
	g.HandleFunc("/exercises/{id}", catalog.HandleUpdateExercise).Methods("PUT", "OPTIONS").Name("update-exercise")
	g.HandleFunc("/exercises/{id}", catalog.HandleDeleteExercise).Methods("DELETE", "OPTIONS").Name("remove-exercise")
	g.HandleFunc("/exercises/{id}/progress", catalog.HandleProgress).Methods("GET", "OPTIONS").Name("exercise-progress")

	g.HandleFunc("/plans", catalog.HandleListPlans).Methods("GET", "OPTIONS").Name("list-plans")
	g.HandleFunc("/plans", catalog.HandleAddPlan).Methods("POST", "OPTIONS").Name("new-plan")
	g.HandleFunc("/plans/{id}", catalog.HandleGetPlan).Methods("GET", "OPTIONS").Name("get-plan")
	g.HandleFunc("/plans/{id}", catalog.HandleUpdatePlan).Methods("PUT", "OPTIONS").Name("update-plan")
	g.HandleFunc("/plans/{id}", catalog.HandleDeletePlan).Methods("DELETE", "OPTIONS").Name("remove-plan")

	g.HandleFunc("/calendar", catalog.HandleCalendar).Methods("GET", "OPTIONS").Name("calendar")
	g.HandleFunc("/calendar/{date}", catalog.HandleCalendarDay).Methods("GET", "OPTIONS").Name("calendar-day")
	g.HandleFunc("/sessions/{id}", catalog.HandleGetSession).Methods("GET", "OPTIONS").Name("get-session")

	g.HandleFunc("/workout", workout.HandleCurrent).Methods("GET", "OPTIONS").Name("current-workout")
	g.HandleFunc("/workout", workout.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-workout")
	g.HandleFunc("/workout/watch", workout.HandleWatch).Methods("GET", "OPTIONS").Name("watch-workout")
	g.HandleFunc("/workout/start", workout.HandleStart).Methods("POST", "OPTIONS").Name("start-workout")
	g.HandleFunc("/workout/resume", workout.HandleResume).Methods("POST", "OPTIONS").Name("resume-workout")
	g.HandleFunc("/workout/finish", workout.HandleFinish).Methods("POST", "OPTIONS").Name("finish-workout")
	g.HandleFunc("/workout/exercises/{eid}/sets/{idx}", workout.HandleRecordSet).Methods("PUT", "OPTIONS").Name("record-set")
	g.HandleFunc("/workout/exercises/{eid}/sets", workout.HandleAddSet).Methods("POST", "OPTIONS").Name("add-set")
	g.HandleFunc("/workout/exercises/{eid}/weight", workout.HandleSetWeight).Methods("PUT", "OPTIONS").Name("set-weight")
	g.HandleFunc("/workout/timer", workout.HandleTimer).Methods("GET", "OPTIONS").Name("rest-timer")
	g.HandleFunc("/workout/timer/extend", workout.HandleExtendTimer).Methods("POST", "OPTIONS").Name("extend-rest")
	g.HandleFunc("/workout/timer/dismiss", workout.HandleDismissTimer).Methods("POST", "OPTIONS").Name("dismiss-rest")

	return g
}
