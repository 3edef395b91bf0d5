package notification

import "time"

type Kind string

const (
	KindTimesheetReviewed       Kind = "timesheet_reviewed"
	KindSiteTimesheetAuthorized Kind = "site_timesheet_authorized"
	KindSiteTimesheetRejected   Kind = "site_timesheet_rejected"
	KindPayrollFinalized        Kind = "payroll_finalized"
	KindPayslipReady            Kind = "payslip_ready"
)

type Notification struct {
	ID        string
	UserID    string
	Kind      Kind
	Title     string
	Message   string
	RefID     *string
	IsRead    bool
	CreatedAt time.Time
}
