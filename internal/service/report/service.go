package report

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/shopspring/decimal"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/project"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/report"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/sitetimesheet"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/timesheet"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
)

type ReportServiceImpl struct {
	projectRepo       project.ProjectRepository
	siteTimesheetRepo sitetimesheet.SiteTimesheetRepository
	timesheetRepo     timesheet.TimesheetRepository
	payrollRepo       payroll.PayrollRepository
}

func NewReportService(
	projectRepo project.ProjectRepository,
	siteTimesheetRepo sitetimesheet.SiteTimesheetRepository,
	timesheetRepo timesheet.TimesheetRepository,
	payrollRepo payroll.PayrollRepository,
) report.ReportService {
	return &ReportServiceImpl{
		projectRepo:       projectRepo,
		siteTimesheetRepo: siteTimesheetRepo,
		timesheetRepo:     timesheetRepo,
		payrollRepo:       payrollRepo,
	}
}

func (s *ReportServiceImpl) ProjectSummary(ctx context.Context, actor user.Actor, projectID string) (*report.ProjectSummary, error) {
	if actor.Role == user.RoleWorker {
		return nil, user.ErrInsufficientPermissions
	}

	p, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	authorized := sitetimesheet.StatusAuthorized
	records, err := s.siteTimesheetRepo.List(ctx, sitetimesheet.Filter{
		ProjectID: &p.ID,
		Status:    &authorized,
	})
	if err != nil {
		return nil, err
	}

	return BuildProjectSummary(p.ID, p.Name, records), nil
}

// AllProjectSummaries fans out one goroutine per project; the first error
// cancels the rest.
func (s *ReportServiceImpl) AllProjectSummaries(ctx context.Context, actor user.Actor) ([]*report.ProjectSummary, error) {
	if actor.Role == user.RoleWorker {
		return nil, user.ErrInsufficientPermissions
	}

	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*report.ProjectSummary, len(projects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, p := range projects {
		i, p := i, p
		g.Go(func() error {
			authorized := sitetimesheet.StatusAuthorized
			records, err := s.siteTimesheetRepo.List(gctx, sitetimesheet.Filter{
				ProjectID: &p.ID,
				Status:    &authorized,
			})
			if err != nil {
				return err
			}
			summaries[i] = BuildProjectSummary(p.ID, p.Name, records)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ProjectName < summaries[j].ProjectName
	})
	return summaries, nil
}

// DashboardStats recomputes the overview counters with one query per
// counter group, fanned out like the summary computation.
func (s *ReportServiceImpl) DashboardStats(ctx context.Context, actor user.Actor) (*report.DashboardStats, error) {
	if actor.Role == user.RoleWorker {
		return nil, user.ErrInsufficientPermissions
	}

	stats := &report.DashboardStats{ApprovedHours: decimal.Zero}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sheets, err := s.timesheetRepo.List(gctx, timesheet.Filter{Status: []timesheet.Status{timesheet.StatusPending}})
		if err != nil {
			return err
		}
		stats.PendingTimesheets = len(sheets)
		return nil
	})
	g.Go(func() error {
		sheets, err := s.timesheetRepo.List(gctx, timesheet.Filter{Status: []timesheet.Status{timesheet.StatusApproved}})
		if err != nil {
			return err
		}
		stats.ApprovedTimesheets = len(sheets)
		total := decimal.Zero
		for _, ts := range sheets {
			total = total.Add(ts.TotalHours)
		}
		stats.ApprovedHours = total
		return nil
	})
	g.Go(func() error {
		submitted := sitetimesheet.StatusSubmitted
		records, err := s.siteTimesheetRepo.List(gctx, sitetimesheet.Filter{Status: &submitted})
		if err != nil {
			return err
		}
		stats.SubmittedSiteRecords = len(records)
		return nil
	})
	g.Go(func() error {
		authorized := sitetimesheet.StatusAuthorized
		records, err := s.siteTimesheetRepo.List(gctx, sitetimesheet.Filter{Status: &authorized})
		if err != nil {
			return err
		}
		stats.AuthorizedSiteRecords = len(records)
		return nil
	})
	g.Go(func() error {
		projects, err := s.projectRepo.List(gctx)
		if err != nil {
			return err
		}
		for _, p := range projects {
			if p.Status == project.StatusActive {
				stats.ActiveProjects++
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *ReportServiceImpl) PayrollSummary(ctx context.Context, actor user.Actor) (*report.PayrollSummary, error) {
	if !actor.CanRunPayroll() && !actor.CanAdvanceCycles() {
		return nil, user.ErrInsufficientPermissions
	}

	cycles, err := s.payrollRepo.ListCycles(ctx)
	if err != nil {
		return nil, err
	}

	summary := &report.PayrollSummary{
		TotalGross:      decimal.Zero,
		TotalPaye:       decimal.Zero,
		TotalSuper:      decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNet:        decimal.Zero,
	}
	for _, c := range cycles {
		summary.CycleCount++
		summary.TotalGross = summary.TotalGross.Add(c.TotalGross)
		summary.TotalDeductions = summary.TotalDeductions.Add(c.TotalDeductions)
		summary.TotalNet = summary.TotalNet.Add(c.TotalNet)

		slips, err := s.payrollRepo.ListPayslipsByCycle(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		for _, p := range slips {
			summary.TotalPaye = summary.TotalPaye.Add(p.FortnightlyPaye)
			summary.TotalSuper = summary.TotalSuper.Add(p.NasfundDeduction)
		}
	}
	return summary, nil
}
