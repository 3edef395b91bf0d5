package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/notification"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/timesheet"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/worker"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/sse"
)

type fakePayrollRepo struct {
	payroll.PayrollRepository
	lockCalls int
	cycles    []*payroll.Cycle
	payslips  []*payroll.Payslip
}

func (f *fakePayrollRepo) AcquireFinalizeLock(ctx context.Context) error {
	f.lockCalls++
	return nil
}

func (f *fakePayrollRepo) HasOverlappingPayslip(ctx context.Context, workerID string, start, end time.Time) (bool, error) {
	for _, p := range f.payslips {
		if p.WorkerID == workerID && !p.PeriodStart.After(end) && !p.PeriodEnd.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePayrollRepo) CreateCycle(ctx context.Context, cycle *payroll.Cycle, payslips []*payroll.Payslip) error {
	if cycle.ID == "" {
		cycle.ID = fmt.Sprintf("cycle-%d", len(f.cycles)+1)
	}
	f.cycles = append(f.cycles, cycle)
	for _, p := range payslips {
		p.CycleID = cycle.ID
		f.payslips = append(f.payslips, p)
	}
	return nil
}

type fakeTimesheetRepo struct {
	timesheet.TimesheetRepository
	sheets []timesheet.Timesheet
}

func (f *fakeTimesheetRepo) List(ctx context.Context, filter timesheet.Filter) ([]timesheet.Timesheet, error) {
	return f.sheets, nil
}

type fakeWorkerRepo struct {
	worker.WorkerRepository
	workers []worker.Worker
}

func (f *fakeWorkerRepo) GetByIDs(ctx context.Context, ids []string) ([]worker.Worker, error) {
	var out []worker.Worker
	for _, w := range f.workers {
		for _, id := range ids {
			if w.ID == id {
				out = append(out, w)
				break
			}
		}
	}
	return out, nil
}

type fakeNotificationService struct {
	notification.NotificationService
}

func (f *fakeNotificationService) Notify(ctx context.Context, n *notification.Notification) error {
	return nil
}

func newFinalizeService(repo *fakePayrollRepo, sheets []timesheet.Timesheet, workers []worker.Worker) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		runInTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return fn(ctx)
		},
		payrollRepo:     repo,
		workerRepo:      &fakeWorkerRepo{workers: workers},
		timesheetRepo:   &fakeTimesheetRepo{sheets: sheets},
		notificationSvc: &fakeNotificationService{},
		hub:             sse.NewHub(),
		engineConfig:    testConfig(),
	}
}

func TestFinalizeCreatesCycleWithPayslips(t *testing.T) {
	repo := &fakePayrollRepo{}
	svc := newFinalizeService(repo,
		[]timesheet.Timesheet{approvedSheet("w1", "80", "0")},
		[]worker.Worker{testWorker("w1", "Arua Kila", "25.00")},
	)
	actor := user.Actor{ID: "officer-1", Role: user.RolePayrollOfficer}

	resp, err := svc.Finalize(context.Background(), actor, payroll.RunPayrollRequest{
		PeriodStart: "2026-08-01", PeriodEnd: "2026-08-14",
	})
	require.NoError(t, err)

	assert.Equal(t, payroll.CycleStatusPendingApproval, resp.Status)
	assert.Equal(t, 1, resp.TotalWorkers)
	require.Len(t, repo.cycles, 1)
	require.Len(t, repo.payslips, 1)
	assert.Equal(t, "w1", repo.payslips[0].WorkerID)
	assert.Equal(t, repo.cycles[0].ID, repo.payslips[0].CycleID)
	assert.Equal(t, 1, repo.lockCalls)
}

func TestFinalizeRejectsSecondRunOverSamePeriod(t *testing.T) {
	repo := &fakePayrollRepo{}
	svc := newFinalizeService(repo,
		[]timesheet.Timesheet{approvedSheet("w1", "80", "0")},
		[]worker.Worker{testWorker("w1", "Arua Kila", "25.00")},
	)
	actor := user.Actor{ID: "officer-1", Role: user.RolePayrollOfficer}
	req := payroll.RunPayrollRequest{PeriodStart: "2026-08-01", PeriodEnd: "2026-08-14"}

	_, err := svc.Finalize(context.Background(), actor, req)
	require.NoError(t, err)

	_, err = svc.Finalize(context.Background(), actor, req)
	assert.ErrorIs(t, err, payroll.ErrOverlappingPeriod)

	// Nothing from the rejected run was persisted.
	assert.Len(t, repo.cycles, 1)
	assert.Len(t, repo.payslips, 1)
	// Both attempts serialized on the finalize lock before checking overlap.
	assert.Equal(t, 2, repo.lockCalls)
}

func TestFinalizeRejectsPartiallyOverlappingPeriod(t *testing.T) {
	repo := &fakePayrollRepo{}
	svc := newFinalizeService(repo,
		[]timesheet.Timesheet{approvedSheet("w1", "80", "0")},
		[]worker.Worker{testWorker("w1", "Arua Kila", "25.00")},
	)
	actor := user.Actor{ID: "officer-1", Role: user.RolePayrollOfficer}

	_, err := svc.Finalize(context.Background(), actor, payroll.RunPayrollRequest{
		PeriodStart: "2026-08-01", PeriodEnd: "2026-08-14",
	})
	require.NoError(t, err)

	// The sheet dated 2026-08-03 also falls in this window, so the worker
	// would be paid twice for it.
	_, err = svc.Finalize(context.Background(), actor, payroll.RunPayrollRequest{
		PeriodStart: "2026-07-26", PeriodEnd: "2026-08-08",
	})
	assert.ErrorIs(t, err, payroll.ErrOverlappingPeriod)
	assert.Len(t, repo.payslips, 1)
}

func TestFinalizeRequiresPayrollRole(t *testing.T) {
	repo := &fakePayrollRepo{}
	svc := newFinalizeService(repo, nil, nil)

	_, err := svc.Finalize(context.Background(), user.Actor{ID: "c1", Role: user.RoleClerk}, payroll.RunPayrollRequest{
		PeriodStart: "2026-08-01", PeriodEnd: "2026-08-14",
	})
	assert.ErrorIs(t, err, payroll.ErrUnauthorized)
	assert.Empty(t, repo.cycles)
}
