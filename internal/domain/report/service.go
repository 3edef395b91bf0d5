package report

import (
	"context"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
)

type ReportService interface {
	// ProjectSummary recomputes one project's rollup from its authorized
	// site timesheets.
	ProjectSummary(ctx context.Context, actor user.Actor, projectID string) (*ProjectSummary, error)

	// AllProjectSummaries computes summaries for every project, fanning
	// out one goroutine per project.
	AllProjectSummaries(ctx context.Context, actor user.Actor) ([]*ProjectSummary, error)

	// DashboardStats recomputes the overview counters.
	DashboardStats(ctx context.Context, actor user.Actor) (*DashboardStats, error)

	PayrollSummary(ctx context.Context, actor user.Actor) (*PayrollSummary, error)
}
