package batch

import "errors"

var (
	ErrBatchNotFound       = errors.New("batch not found")
	ErrBatchAlreadyDeleted = errors.New("batch not found or already deleted")
	ErrSessionNotFound     = errors.New("training session not found")
	ErrDuplicateSession    = errors.New("a session with this timestamp already exists for the batch")
	ErrInvalidStatusChange = errors.New("invalid session status change")
	ErrInvalidRequestData  = errors.New("invalid request data")
)
