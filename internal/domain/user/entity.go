package user

import "time"

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleCoach      Role = "COACH"
)

var RoleValues = []string{
	string(RoleSuperAdmin),
	string(RoleAdmin),
	string(RoleCoach),
}

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	GoogleID     *string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user can perform administrative mutations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
