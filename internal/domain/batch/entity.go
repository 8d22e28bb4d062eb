package batch

import "time"

// Weekday is a named day used in weekly schedule rules.
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

var WeekdayValues = []string{
	string(Monday),
	string(Tuesday),
	string(Wednesday),
	string(Thursday),
	string(Friday),
	string(Saturday),
	string(Sunday),
}

var weekdayToTime = map[Weekday]time.Weekday{
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
	Sunday:    time.Sunday,
}

// TimeWeekday maps a named weekday to the stdlib weekday.
func (w Weekday) TimeWeekday() (time.Weekday, bool) {
	d, ok := weekdayToTime[w]
	return d, ok
}

// SessionStatus is the lifecycle state of a training session.
type SessionStatus string

const (
	SessionScheduled  SessionStatus = "SCHEDULED"
	SessionInProgress SessionStatus = "IN_PROGRESS"
	SessionCompleted  SessionStatus = "COMPLETED"
	SessionCancelled  SessionStatus = "CANCELLED"
)

var SessionStatusValues = []string{
	string(SessionScheduled),
	string(SessionInProgress),
	string(SessionCompleted),
	string(SessionCancelled),
}

// Batch is a training group with a date range and a coach.
type Batch struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	LocationID  string     `json:"location_id"`
	CoachID     string     `json:"coach_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`

	Rules []ScheduleRule `json:"rules,omitempty"`
}

// ScheduleRule is a weekly recurrence: one or more weekdays with a start and
// end time of day. End must be strictly after start.
type ScheduleRule struct {
	ID        string    `json:"id"`
	BatchID   string    `json:"batch_id"`
	Days      []Weekday `json:"days"`
	StartTime string    `json:"start_time"` // "HH:MM"
	EndTime   string    `json:"end_time"`   // "HH:MM"
	CreatedAt time.Time `json:"created_at"`
}

// TrainingSession is one dated occurrence expanded from a schedule rule.
// Unique per (batch, exact timestamp); the expander never mutates existing
// sessions, only the status cron and operators do.
type TrainingSession struct {
	ID              string        `json:"id"`
	BatchID         string        `json:"batch_id"`
	Name            string        `json:"name"`
	Description     *string       `json:"description,omitempty"`
	StartsAt        time.Time     `json:"starts_at"` // UTC
	DurationMinutes int           `json:"duration_minutes"`
	LocationID      string        `json:"location_id"`
	CoachID         string        `json:"coach_id"`
	Status          SessionStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// EndsAt is the session's end timestamp.
func (s *TrainingSession) EndsAt() time.Time {
	return s.StartsAt.Add(time.Duration(s.DurationMinutes) * time.Minute)
}
