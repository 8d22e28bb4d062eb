package staff

import "errors"

var (
	ErrStaffNotFound       = errors.New("staff member not found")
	ErrStaffAlreadyDeleted = errors.New("staff member not found or already deleted")
	ErrEmailExists         = errors.New("a staff member with this email already exists")
	ErrNotACoach           = errors.New("staff member is not a coach")
)
