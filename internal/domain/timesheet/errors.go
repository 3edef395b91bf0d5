package timesheet

import "errors"

var (
	ErrTimesheetNotFound = errors.New("timesheet record not found")
	ErrAlreadyProcessed  = errors.New("timesheet has already been approved, rejected or flagged")
	ErrUnauthorized      = errors.New("unauthorized to access this timesheet")
	ErrNegativeHours     = errors.New("total hours must be non-negative")
)
