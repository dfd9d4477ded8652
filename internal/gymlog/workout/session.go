package workout

import "time"

// SessionStatus can be one of:
//   - IN_PROGRESS
//   - COMPLETED
type SessionStatus string

const (
	SessionInProgress SessionStatus = "IN_PROGRESS"
	SessionCompleted  SessionStatus = "COMPLETED"
)

func (s SessionStatus) String() string {
	return string(s)
}

// Session is one dated execution of a plan. PlanID is nil for freestyle
// sessions and for sessions whose plan was deleted afterwards.
type Session struct {
	ID          int64         `json:"id"`
	PlanID      *int64        `json:"planId,omitempty"`
	Date        time.Time     `json:"date"`
	Status      SessionStatus `json:"status"`
	StartedAt   time.Time     `json:"startedAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}

func (s Session) InProgress() bool {
	return s.Status == SessionInProgress
}

// DateOf truncates t to its calendar day, keeping the location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
