package sitetimesheet

import (
	"context"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
)

type SiteTimesheetService interface {
	// Create stores a new record for the actor's project, in draft by
	// default or directly submitted when the request asks for it. The
	// actor must be assigned to the project as a supervisor.
	Create(ctx context.Context, actor user.Actor, req CreateSiteTimesheetRequest) (*SiteTimesheetResponse, error)

	// UpdateDraft rewrites an existing draft owned by the actor.
	UpdateDraft(ctx context.Context, actor user.Actor, id string, req CreateSiteTimesheetRequest) (*SiteTimesheetResponse, error)

	Submit(ctx context.Context, actor user.Actor, id string) (*SiteTimesheetResponse, error)
	Authorize(ctx context.Context, actor user.Actor, id string) (*SiteTimesheetResponse, error)
	Reject(ctx context.Context, actor user.Actor, id string, req RejectSiteTimesheetRequest) (*SiteTimesheetResponse, error)

	GetByID(ctx context.Context, actor user.Actor, id string) (*SiteTimesheetResponse, error)
	List(ctx context.Context, actor user.Actor, filter Filter) ([]*SiteTimesheetResponse, error)
}
