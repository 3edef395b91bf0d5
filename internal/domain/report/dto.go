package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// EquipmentUsage is total hours for one equipment name across all
// authorized site timesheets of a project.
type EquipmentUsage struct {
	Name       string          `json:"name"`
	TotalHours decimal.Decimal `json:"total_hours"`
}

// MaterialUsage is total quantity for one "{item} ({unit})" key. The same
// item recorded in different units stays as separate lines.
type MaterialUsage struct {
	Key           string          `json:"key"`
	Item          string          `json:"item"`
	Unit          string          `json:"unit"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}

// ProductionOutput is total quantity for one "{activity} ({unit})" key.
type ProductionOutput struct {
	Key           string          `json:"key"`
	Activity      string          `json:"activity"`
	Unit          string          `json:"unit"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}

// Remark is one non-empty remark with its date and author.
type Remark struct {
	Date        time.Time `json:"date"`
	ForemanName string    `json:"foreman_name"`
	Text        string    `json:"text"`
}

// ProjectSummary is the on-demand rollup of a project's authorized site
// timesheets. It is never persisted; recomputing from the same authorized
// set always yields the same summary.
type ProjectSummary struct {
	ProjectID       string             `json:"project_id"`
	ProjectName     string             `json:"project_name"`
	RecordCount     int                `json:"record_count"`
	TotalWorkerDays int                `json:"total_worker_days"`
	Equipment       []EquipmentUsage   `json:"equipment"`
	Materials       []MaterialUsage    `json:"materials"`
	Production      []ProductionOutput `json:"production"`
	RecentRemarks   []Remark           `json:"recent_remarks"`
}

// DashboardStats are the headline counters shown on the overview screen,
// recomputed per request.
type DashboardStats struct {
	PendingTimesheets     int             `json:"pending_timesheets"`
	ApprovedTimesheets    int             `json:"approved_timesheets"`
	ApprovedHours         decimal.Decimal `json:"approved_hours"`
	SubmittedSiteRecords  int             `json:"submitted_site_records"`
	AuthorizedSiteRecords int             `json:"authorized_site_records"`
	ActiveProjects        int             `json:"active_projects"`
}

// PayrollSummary is a cross-cycle total view for finance reporting.
type PayrollSummary struct {
	CycleCount      int             `json:"cycle_count"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalPaye       decimal.Decimal `json:"total_paye"`
	TotalSuper      decimal.Decimal `json:"total_super"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
}
