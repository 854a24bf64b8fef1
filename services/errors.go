package services

import "errors"

// Sentinel errors. The messages double as the user-visible strings the API
// and form pages return, so they keep the original wording.
var (
	ErrReservedEmail      = errors.New("This email is reserved.")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Incorrect email or password")
	ErrNotAdmin           = errors.New("Access denied. Not an admin.")
	ErrAdminOnly          = errors.New("Only admins can update status.")
	ErrReportNotFound     = errors.New("Report not found.")
	ErrInvalidCategory    = errors.New("invalid report category")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidTransition  = errors.New("report status can only move from pending to resolved")
	ErrNotReportOwner     = errors.New("You can only give feedback on your own reports.")
	ErrReportNotResolved  = errors.New("Cannot give feedback until report is resolved.")
	ErrFeedbackExists     = errors.New("Feedback has already been submitted for this report.")
)
