package timesheet

import (
	"context"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
)

// TimesheetService takes the acting identity explicitly on every call;
// authorization never reads ambient session state.
type TimesheetService interface {
	Create(ctx context.Context, actor user.Actor, req CreateTimesheetRequest) (*TimesheetResponse, error)
	GetByID(ctx context.Context, actor user.Actor, id string) (*TimesheetResponse, error)
	List(ctx context.Context, actor user.Actor, filter Filter) ([]*TimesheetResponse, error)

	// Review applies an approve/reject/flag decision to a pending record.
	Review(ctx context.Context, actor user.Actor, id string, req ReviewTimesheetRequest) (*TimesheetResponse, error)
}
