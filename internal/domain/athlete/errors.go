package athlete

import "errors"

var (
	ErrAthleteNotFound       = errors.New("athlete not found")
	ErrAthleteAlreadyDeleted = errors.New("athlete not found or already deleted")
	ErrGuardianEmailExists   = errors.New("guardian email already registered")
)
