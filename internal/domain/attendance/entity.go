package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLate    Status = "LATE"
	StatusExcused Status = "EXCUSED"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLate),
	string(StatusExcused),
}

// Record is one athlete's attendance for one training session. Unique per
// (session, athlete); marking again overwrites the previous status.
type Record struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	AthleteID  string    `json:"athlete_id"`
	Status     Status    `json:"status"`
	Note       *string   `json:"note,omitempty"`
	MarkedByID string    `json:"marked_by_id"`
	MarkedAt   time.Time `json:"marked_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Summary aggregates an athlete's attendance over a period.
type Summary struct {
	AthleteID string `json:"athlete_id"`
	Present   int    `json:"present"`
	Absent    int    `json:"absent"`
	Late      int    `json:"late"`
	Excused   int    `json:"excused"`
	Total     int    `json:"total"`
}
