package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers. Ownership
// mismatches surface as the same not-found errors as truly missing records.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrSubtaskNotFound = errors.New("subtask not found")
	ErrParentNotFound  = errors.New("parent subtask not found under this task")
	ErrInvalidParent   = errors.New("invalid parent subtask")
	ErrUserNotFound    = errors.New("user not found")
	ErrBadCredentials  = errors.New("invalid credentials")
)
