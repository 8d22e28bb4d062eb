package staff

import (
	"time"

	"github.com/goalline/academy-backend-go/internal/domain/user"
)

type Staff struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	Phone          *string    `json:"phone,omitempty"`
	Role           user.Role  `json:"role"`
	Specialization *string    `json:"specialization,omitempty"` // coaches only
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}

func (s *Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}
