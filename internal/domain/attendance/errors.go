package attendance

import "errors"

var (
	ErrRecordNotFound    = errors.New("attendance record not found")
	ErrSessionNotStarted = errors.New("attendance cannot be marked for a cancelled session")
	ErrAthleteNotInBatch = errors.New("athlete does not belong to the session's batch")
)
