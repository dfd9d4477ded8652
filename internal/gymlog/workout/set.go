package workout

// SetStatus can be one of:
//   - PENDING (not attempted yet)
//   - EASY
//   - HARD
//   - PARTIAL
//   - FAILED
type SetStatus string

const (
	StatusPending SetStatus = "PENDING"
	StatusEasy    SetStatus = "EASY"
	StatusHard    SetStatus = "HARD"
	StatusPartial SetStatus = "PARTIAL"
	StatusFailed  SetStatus = "FAILED"
)

func (s SetStatus) String() string {
	return string(s)
}

func (s SetStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusEasy, StatusHard, StatusPartial, StatusFailed:
		return true
	default:
		return false
	}
}

// Attempted is true for every status except PENDING.
func (s SetStatus) Attempted() bool {
	return s.IsValid() && s != StatusPending
}

// Successful statuses feed the progress charts.
func (s SetStatus) Successful() bool {
	return s == StatusEasy || s == StatusHard
}

type Set struct {
	ID            int64     `json:"id"`
	SessionID     int64     `json:"sessionId"`
	ExerciseID    int64     `json:"exerciseId"`
	SetNumber     int       `json:"setNumber"`
	WeightKg      *float64  `json:"weightKg,omitempty"`
	RepsCompleted *int      `json:"repsCompleted,omitempty"`
	DistanceM     *int      `json:"distanceM,omitempty"`
	DurationSec   *int      `json:"durationSec,omitempty"`
	Status        SetStatus `json:"status"`
}

// SameIdentity reports whether other refers to the same slot: same row,
// owner, exercise and set number.
func (s Set) SameIdentity(other Set) bool {
	return s.ID == other.ID &&
		s.SessionID == other.SessionID &&
		s.ExerciseID == other.ExerciseID &&
		s.SetNumber == other.SetNumber
}

// GroupSetsByExercise groups sets per exercise, keeping the order in which
// exercises first appear.
func GroupSetsByExercise(sets []Set) (order []int64, grouped map[int64][]Set) {
	grouped = make(map[int64][]Set)
	for _, s := range sets {
		if _, ok := grouped[s.ExerciseID]; !ok {
			order = append(order, s.ExerciseID)
		}
		grouped[s.ExerciseID] = append(grouped[s.ExerciseID], s)
	}
	return order, grouped
}

// Ptr returns a pointer to v. Handy for the optional set fields.
func Ptr[T any](v T) *T {
	return &v
}
