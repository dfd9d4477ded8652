//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymlog/internal/gymlog/api"
	"github.com/2beens/gymlog/internal/gymlog/notify"
	"github.com/2beens/gymlog/internal/gymlog/resttimer"
	"github.com/2beens/gymlog/internal/gymlog/tracker"
	"github.com/2beens/gymlog/internal/gymlog/workout"
)

func (s *IntegrationTestSuite) TestUnauthorized() {
	req, err := http.NewRequest("GET", serverEndpoint+"/gymlog/workout", nil)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "GymLog/test")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestWorkoutLifecycle() {
	ctx := context.Background()
	s.cleanDB(ctx)
	t := s.T()

	var squat workout.Exercise
	require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/gymlog/exercises",
		workout.Exercise{Name: "Squat", Kind: workout.KindWeight}, &squat))

	distance := workout.FixedDistance
	var row workout.Exercise
	require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/gymlog/exercises", workout.Exercise{
		Name:              "Rowing",
		Kind:              workout.KindCardio,
		FixedDimension:    &distance,
		FixedValue:        workout.Ptr(5000),
		Level:             workout.Ptr(3),
		DistanceDisplayKm: true,
	}, &row))

	var plan workout.Plan
	require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/gymlog/plans", workout.Plan{
		Name: "Legs",
		Exercises: []workout.PlanExercise{
			{ExerciseID: squat.ID, TargetSets: 3, TargetReps: workout.Ptr(5), TargetWeightKg: workout.Ptr(100.0)},
			{ExerciseID: row.ID, TargetSets: 1},
		},
	}, &plan))

	var snap tracker.Snapshot
	require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/gymlog/workout/start", api.StartRequest{PlanID: plan.ID}, &snap))
	require.Len(t, snap.Exercises, 2)
	assert.Equal(t, "Rowing - 5k - L3", snap.Exercises[1].DisplayName)
	require.Len(t, snap.Exercises[0].Sets, 3)
	assert.Equal(t, 100.0, *snap.Exercises[0].Sets[0].WeightKg)

	assert.Equal(t, http.StatusConflict, s.do(ctx, "POST", "/gymlog/workout/start", api.StartRequest{PlanID: plan.ID}, nil))

	easy := workout.StatusEasy
	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, s.do(ctx, "PUT",
			fmt.Sprintf("/gymlog/workout/exercises/%d/sets/%d", squat.ID, i),
			workout.SetInput{Status: &easy}, nil))
	}

	// the countdown is mirrored for the phone
	var timer resttimer.Snapshot
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/gymlog/workout/timer", nil, &timer))
	assert.Equal(t, resttimer.StateRunning, timer.State)
	require.Eventually(t, func() bool {
		raw, err := s.redisClient.Get(ctx, notify.CountdownKey).Result()
		if err != nil {
			return false
		}
		var alarm resttimer.RestAlarm
		return json.Unmarshal([]byte(raw), &alarm) == nil && alarm.SessionID == snap.Session.ID
	}, 2*time.Second, 50*time.Millisecond)

	// rejected entries leave the workout as it was
	assert.Equal(t, http.StatusBadRequest, s.do(ctx, "PUT",
		fmt.Sprintf("/gymlog/workout/exercises/%d/sets/0", squat.ID),
		workout.SetInput{Weight: workout.Ptr("NaN")}, nil))
	assert.Equal(t, http.StatusBadRequest, s.do(ctx, "PUT",
		fmt.Sprintf("/gymlog/workout/exercises/%d/sets/0", row.ID),
		workout.SetInput{Distance: workout.Ptr("9999")}, nil))
	var current tracker.Snapshot
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/gymlog/workout", nil, &current))
	assert.Equal(t, 100.0, *current.Exercises[0].Sets[0].WeightKg)
	assert.Nil(t, current.Exercises[1].Sets[0].DistanceM)

	var added workout.Set
	require.Equal(t, http.StatusCreated, s.do(ctx, "POST", fmt.Sprintf("/gymlog/workout/exercises/%d/sets", squat.ID), nil, &added))
	assert.Equal(t, 4, added.SetNumber)
	assert.Equal(t, 100.0, *added.WeightKg)

	require.Equal(t, http.StatusNoContent, s.do(ctx, "POST", "/gymlog/workout/finish", nil, nil))
	assert.Equal(t, http.StatusNotFound, s.do(ctx, "GET", "/gymlog/workout", nil, nil))
	require.Eventually(t, func() bool {
		return s.redisClient.Exists(ctx, notify.CountdownKey).Val() == 0
	}, 2*time.Second, 50*time.Millisecond)

	var detail api.SessionDetail
	sessionPath := fmt.Sprintf("/gymlog/sessions/%d", snap.Session.ID)
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", sessionPath, nil, &detail))
	assert.Equal(t, "Legs", detail.PlanName)
	require.Len(t, detail.Exercises, 2)
	assert.Len(t, detail.Exercises[0].Sets, 4)
	assert.Equal(t, http.StatusConflict, s.do(ctx, "POST", "/gymlog/workout/resume", api.ResumeRequest{SessionID: snap.Session.ID}, nil))

	// editing the plan leaves the recorded session alone
	require.Equal(t, http.StatusOK, s.do(ctx, "PUT", fmt.Sprintf("/gymlog/plans/%d", plan.ID), workout.Plan{
		Name:      "Legs",
		Exercises: []workout.PlanExercise{{ExerciseID: squat.ID, TargetSets: 3, TargetReps: workout.Ptr(5), TargetWeightKg: workout.Ptr(100.0)}},
	}, nil))
	var after api.SessionDetail
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", sessionPath, nil, &after))
	assert.Equal(t, detail.Exercises, after.Exercises)

	var day api.CalendarDayResponse
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/gymlog/calendar/"+snap.Session.Date.Format(time.DateOnly), nil, &day))
	require.Len(t, day.Sessions, 1)

	// all sets were easy: next session suggests a heavier weight
	var next tracker.Snapshot
	require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/gymlog/workout/start", api.StartRequest{PlanID: plan.ID}, &next))
	assert.Greater(t, *next.Exercises[0].Sets[0].WeightKg, 100.0)
	require.Equal(t, http.StatusNoContent, s.do(ctx, "DELETE", "/gymlog/workout", nil, nil))

	var progress api.ProgressResponse
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", fmt.Sprintf("/gymlog/exercises/%d/progress", squat.ID), nil, &progress))
	assert.Equal(t, workout.ProgressMaxWeight, progress.Metric)
	require.Len(t, progress.Points, 1)
	assert.Equal(t, 100.0, progress.Points[0].Value)

	var calendar api.CalendarResponse
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/gymlog/calendar", nil, &calendar))
	assert.Len(t, calendar.Dates, 1)
}

func (s *IntegrationTestSuite) TestDeleteExerciseCascades() {
	ctx := context.Background()
	s.cleanDB(ctx)
	t := s.T()

	var bench workout.Exercise
	require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/gymlog/exercises",
		workout.Exercise{Name: "Bench", Kind: workout.KindWeight}, &bench))

	var plan workout.Plan
	require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/gymlog/plans", workout.Plan{
		Name:      "Push",
		Exercises: []workout.PlanExercise{{ExerciseID: bench.ID, TargetSets: 2}},
	}, &plan))

	// warm the exercise cache, then rename
	var snap tracker.Snapshot
	require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/gymlog/workout/start", api.StartRequest{PlanID: plan.ID}, &snap))
	require.Equal(t, http.StatusNoContent, s.do(ctx, "POST", "/gymlog/workout/finish", nil, nil))
	require.Equal(t, http.StatusOK, s.do(ctx, "PUT", fmt.Sprintf("/gymlog/exercises/%d", bench.ID),
		workout.Exercise{Name: "Bench Press", Kind: workout.KindWeight}, nil))

	require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/gymlog/workout/start", api.StartRequest{PlanID: plan.ID}, &snap))
	assert.Equal(t, "Bench Press", snap.Exercises[0].DisplayName)
	require.Equal(t, http.StatusNoContent, s.do(ctx, "POST", "/gymlog/workout/finish", nil, nil))

	require.Equal(t, http.StatusOK, s.do(ctx, "DELETE", fmt.Sprintf("/gymlog/exercises/%d", bench.ID), nil, nil))

	var sets int
	require.NoError(t, s.dbPool.QueryRow(ctx, "SELECT count(*) FROM sets").Scan(&sets))
	assert.Zero(t, sets)

	var got workout.Plan
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", fmt.Sprintf("/gymlog/plans/%d", plan.ID), nil, &got))
	assert.Empty(t, got.Exercises)
}
