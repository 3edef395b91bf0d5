package sitetimesheet

import (
	"context"
	"time"
)

type Filter struct {
	ProjectID *string
	ForemanID *string
	Status    *Status
	DateFrom  *time.Time
	DateTo    *time.Time
}

type SiteTimesheetRepository interface {
	Create(ctx context.Context, st *SiteTimesheet) error
	GetByID(ctx context.Context, id string) (*SiteTimesheet, error)
	List(ctx context.Context, filter Filter) ([]*SiteTimesheet, error)
	Update(ctx context.Context, st *SiteTimesheet) error

	// Submit moves a draft to submitted. Returns ErrNotDraft when the row is
	// no longer in draft, detected by the status guard on the UPDATE.
	Submit(ctx context.Context, id string) error

	// Authorize moves a submitted record to authorized, recording who and
	// when. Returns ErrAlreadyProcessed when the row left submitted status
	// between read and write.
	Authorize(ctx context.Context, id, authorizerID string) error

	// Reject moves a submitted record to rejected with a mandatory reason.
	// Same optimistic guard as Authorize.
	Reject(ctx context.Context, id, authorizerID, reason string) error
}
