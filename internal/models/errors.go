package models

import "errors"

// Error constants for profile and application operations
var (
	ErrProfileNotFound        = errors.New("driver profile not found")
	ErrApplicationNotFound    = errors.New("application not found")
	ErrApplicationDecided     = errors.New("application has already been decided")
	ErrApplicationNotAccepted = errors.New("interview can only be scheduled for accepted applications")
	ErrInterviewAlreadyDue    = errors.New("interview time has already passed and cannot be rescheduled")
	ErrDuplicateApplication   = errors.New("driver has already applied to this job")
)
