package service

import "errors"

// Domain errors shared across the workout services. Handlers map these
// to HTTP statuses with errors.Is; nothing below is retried or
// swallowed internally.
var (
	ErrValidation        = errors.New("validation failed")
	ErrExerciseNotFound  = errors.New("one or more exercises not found")
	ErrPlanNotFound      = errors.New("workout plan not found")
	ErrSessionNotFound   = errors.New("scheduled workout not found")
	ErrLogNotFound       = errors.New("workout log not found")
	ErrAccessDenied      = errors.New("access denied to this resource")
	ErrInvalidTransition = errors.New("invalid workout status transition")
	ErrIndexOutOfRange   = errors.New("exercise or set index out of range")
)
