package timesheet

import (
	"context"
	"time"
)

type Filter struct {
	WorkerID *string
	Status   []Status
	DateFrom *time.Time
	DateTo   *time.Time
}

type TimesheetRepository interface {
	Create(ctx context.Context, ts Timesheet) (Timesheet, error)
	GetByID(ctx context.Context, id string) (Timesheet, error)
	List(ctx context.Context, filter Filter) ([]Timesheet, error)

	// UpdateStatus applies a review transition with an optimistic check on
	// the expected current status. It returns ErrAlreadyProcessed when the
	// record exists but is no longer in expectedStatus, ErrTimesheetNotFound
	// when it does not exist.
	UpdateStatus(ctx context.Context, id string, expectedStatus, newStatus Status, reviewerID string, reason *string) (Timesheet, error)
}
