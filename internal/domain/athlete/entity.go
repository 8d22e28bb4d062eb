package athlete

import "time"

type Status string

const (
	StatusTrial    Status = "TRIAL"
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

var StatusValues = []string{
	string(StatusTrial),
	string(StatusActive),
	string(StatusInactive),
}

type Athlete struct {
	ID            string     `json:"id"`
	Code          string     `json:"code"` // "ATH-00042"
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	DateOfBirth   time.Time  `json:"date_of_birth"`
	Position      *string    `json:"position,omitempty"`
	GuardianName  string     `json:"guardian_name"`
	GuardianEmail string     `json:"guardian_email"`
	GuardianPhone string     `json:"guardian_phone"`
	Status        Status     `json:"status"`
	BatchID       *string    `json:"batch_id,omitempty"`
	JoinedAt      time.Time  `json:"joined_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}

// FullName is the athlete's display name.
func (a *Athlete) FullName() string {
	return a.FirstName + " " + a.LastName
}
