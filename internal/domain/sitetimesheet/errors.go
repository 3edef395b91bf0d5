package sitetimesheet

import "errors"

var (
	ErrSiteTimesheetNotFound   = errors.New("site timesheet not found")
	ErrAlreadyProcessed        = errors.New("site timesheet already processed")
	ErrNotSubmitted            = errors.New("site timesheet is not in submitted status")
	ErrNotDraft                = errors.New("site timesheet is not in draft status")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrUnauthorized            = errors.New("unauthorized to perform this action")
)
