package resttimer

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=collaborators_mocks_test.go -package=resttimer_test

// RestAlarm is what the device level countdown shows. SessionID lets a
// tapped notification bring the user back to the right session.
type RestAlarm struct {
	SessionID    int64     `json:"sessionId"`
	EndsAt       time.Time `json:"endsAt"`
	TotalSeconds int       `json:"totalSeconds"`
}

// Notifier mirrors the countdown outside the app.
type Notifier interface {
	Show(ctx context.Context, alarm RestAlarm) error
	Cancel(ctx context.Context) error
}

type Haptic interface {
	Pulse(ctx context.Context, pattern []time.Duration) error
}

// CompletionPattern alternates wait and vibrate durations, starting with a wait.
var CompletionPattern = []time.Duration{
	0,
	300 * time.Millisecond,
	200 * time.Millisecond,
	300 * time.Millisecond,
}
