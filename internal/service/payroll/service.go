package payroll

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/notification"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/timesheet"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/worker"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/database"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/pdf"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/sse"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/storage"
	"github.com/sitepay-hq/sitepay-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	runInTx         func(ctx context.Context, fn func(txCtx context.Context) error) error
	payrollRepo     payroll.PayrollRepository
	workerRepo      worker.WorkerRepository
	timesheetRepo   timesheet.TimesheetRepository
	notificationSvc notification.NotificationService
	hub             *sse.Hub
	fileStorage     storage.FileStorage
	engineConfig    payroll.EngineConfig
	logger          *slog.Logger
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	workerRepo worker.WorkerRepository,
	timesheetRepo timesheet.TimesheetRepository,
	notificationSvc notification.NotificationService,
	hub *sse.Hub,
	fileStorage storage.FileStorage,
	engineConfig payroll.EngineConfig,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		runInTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		payrollRepo:     payrollRepo,
		workerRepo:      workerRepo,
		timesheetRepo:   timesheetRepo,
		notificationSvc: notificationSvc,
		hub:             hub,
		fileStorage:     fileStorage,
		engineConfig:    engineConfig,
		logger:          logger,
	}
}

func (s *PayrollServiceImpl) Preview(ctx context.Context, actor user.Actor, req payroll.RunPayrollRequest) (*payroll.PreviewResponse, error) {
	if !actor.CanRunPayroll() {
		return nil, payroll.ErrUnauthorized
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, end := req.Period()
	lines, totals, err := s.computeForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	resp := &payroll.PreviewResponse{
		PeriodStart:     req.PeriodStart,
		PeriodEnd:       req.PeriodEnd,
		Lines:           make([]payroll.PreviewLine, 0, len(lines)),
		TotalWorkers:    totals.Workers,
		TotalGross:      totals.Gross,
		TotalDeductions: totals.Deductions,
		TotalNet:        totals.Net,
	}
	for _, line := range lines {
		resp.Lines = append(resp.Lines, payroll.PreviewLine{
			WorkerID:         line.Worker.ID,
			WorkerName:       line.Worker.FullName,
			HourlyRate:       line.Worker.HourlyRate,
			ApprovedHours:    line.Breakdown.ApprovedHours,
			OvertimeHours:    line.Breakdown.OvertimeHours,
			GrossEarnings:    line.Breakdown.GrossEarnings,
			FortnightlyPaye:  line.Breakdown.FortnightlyPaye,
			NasfundDeduction: line.Breakdown.NasfundDeduction,
			OtherDeductions:  line.Breakdown.OtherDeductions,
			NetPay:           line.Breakdown.NetPay,
		})
	}
	return resp, nil
}

// Finalize recomputes the run and persists cycle plus payslips in one
// transaction. An advisory lock taken first inside that transaction
// serializes finalize runs; a plain read-committed overlap check alone
// would let two concurrent finalizations of overlapping periods both land.
func (s *PayrollServiceImpl) Finalize(ctx context.Context, actor user.Actor, req payroll.RunPayrollRequest) (*payroll.CycleResponse, error) {
	if !actor.CanRunPayroll() {
		return nil, payroll.ErrUnauthorized
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, end := req.Period()
	lines, totals, err := s.computeForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	cycle := &payroll.Cycle{
		PeriodStart:     start,
		PeriodEnd:       end,
		Status:          payroll.CycleStatusPendingApproval,
		TotalWorkers:    totals.Workers,
		TotalGross:      totals.Gross,
		TotalDeductions: totals.Deductions,
		TotalNet:        totals.Net,
		CreatedBy:       actor.ID,
	}
	payslips := make([]*payroll.Payslip, 0, len(lines))
	for _, line := range lines {
		payslips = append(payslips, &payroll.Payslip{
			WorkerID:         line.Worker.ID,
			PeriodStart:      start,
			PeriodEnd:        end,
			HourlyRate:       line.Worker.HourlyRate,
			ApprovedHours:    line.Breakdown.ApprovedHours,
			OvertimeHours:    line.Breakdown.OvertimeHours,
			RegularPay:       line.Breakdown.RegularPay,
			OvertimePay:      line.Breakdown.OvertimePay,
			AllowanceTotal:   line.Breakdown.AllowanceTotal,
			GrossEarnings:    line.Breakdown.GrossEarnings,
			FortnightlyPaye:  line.Breakdown.FortnightlyPaye,
			NasfundDeduction: line.Breakdown.NasfundDeduction,
			OtherDeductions:  line.Breakdown.OtherDeductions,
			NetPay:           line.Breakdown.NetPay,
		})
	}

	err = s.runInTx(ctx, func(txCtx context.Context) error {
		if err := s.payrollRepo.AcquireFinalizeLock(txCtx); err != nil {
			return err
		}
		for _, line := range lines {
			overlaps, err := s.payrollRepo.HasOverlappingPayslip(txCtx, line.Worker.ID, start, end)
			if err != nil {
				return err
			}
			if overlaps {
				return fmt.Errorf("%w: %s", payroll.ErrOverlappingPeriod, line.Worker.FullName)
			}
		}
		return s.payrollRepo.CreateCycle(txCtx, cycle, payslips)
	})
	if err != nil {
		return nil, err
	}

	s.notifyFinalized(ctx, lines, cycle)
	s.hub.Broadcast(sse.Event{Kind: "payroll_cycles"})

	return payroll.ToCycleResponse(cycle), nil
}

func (s *PayrollServiceImpl) computeForPeriod(ctx context.Context, start, end time.Time) ([]RunLine, RunTotals, error) {
	approved := []timesheet.Status{timesheet.StatusApproved}
	sheets, err := s.timesheetRepo.List(ctx, timesheet.Filter{
		Status:   approved,
		DateFrom: &start,
		DateTo:   &end,
	})
	if err != nil {
		return nil, RunTotals{}, err
	}
	if len(sheets) == 0 {
		return nil, RunTotals{}, payroll.ErrEmptyRun
	}

	workerIDs := make([]string, 0, len(sheets))
	seen := map[string]bool{}
	for _, ts := range sheets {
		if !seen[ts.WorkerID] {
			seen[ts.WorkerID] = true
			workerIDs = append(workerIDs, ts.WorkerID)
		}
	}
	workers, err := s.workerRepo.GetByIDs(ctx, workerIDs)
	if err != nil {
		return nil, RunTotals{}, err
	}

	return ComputeRun(s.engineConfig, workers, sheets)
}

func (s *PayrollServiceImpl) GetCycle(ctx context.Context, actor user.Actor, id string) (*payroll.CycleResponse, error) {
	if actor.Role == user.RoleWorker {
		return nil, payroll.ErrUnauthorized
	}
	cycle, err := s.payrollRepo.GetCycleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return payroll.ToCycleResponse(cycle), nil
}

func (s *PayrollServiceImpl) ListCycles(ctx context.Context, actor user.Actor) ([]*payroll.CycleResponse, error) {
	if actor.Role == user.RoleWorker {
		return nil, payroll.ErrUnauthorized
	}
	cycles, err := s.payrollRepo.ListCycles(ctx)
	if err != nil {
		return nil, err
	}
	return payroll.ToCycleResponses(cycles), nil
}

func (s *PayrollServiceImpl) AdvanceCycle(ctx context.Context, actor user.Actor, id string, req payroll.AdvanceCycleRequest) (*payroll.CycleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !actor.CanAdvanceCycles() {
		return nil, payroll.ErrUnauthorized
	}

	cycle, err := s.payrollRepo.GetCycleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next := payroll.CycleStatus(req.Status)
	if !cycle.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s -> %s", payroll.ErrInvalidTransition, cycle.Status, next)
	}

	// Guarded on the status read above; a concurrent advance makes this a
	// zero-row update and surfaces ErrAlreadyAdvanced.
	if err := s.payrollRepo.AdvanceCycleStatus(ctx, id, cycle.Status, next); err != nil {
		return nil, err
	}

	s.hub.Broadcast(sse.Event{Kind: "payroll_cycles"})
	return s.GetCycle(ctx, actor, id)
}

func (s *PayrollServiceImpl) DeleteCycle(ctx context.Context, actor user.Actor, id string) error {
	if !actor.CanRunPayroll() {
		return payroll.ErrUnauthorized
	}
	if err := s.payrollRepo.DeleteCycle(ctx, id); err != nil {
		return err
	}
	s.hub.Broadcast(sse.Event{Kind: "payroll_cycles"})
	return nil
}

func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, actor user.Actor, id string) (*payroll.PayslipResponse, error) {
	slip, err := s.getAuthorizedPayslip(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return payroll.ToPayslipResponse(slip), nil
}

func (s *PayrollServiceImpl) ListPayslipsByCycle(ctx context.Context, actor user.Actor, cycleID string) ([]*payroll.PayslipResponse, error) {
	if actor.Role == user.RoleWorker {
		return nil, payroll.ErrUnauthorized
	}
	slips, err := s.payrollRepo.ListPayslipsByCycle(ctx, cycleID)
	if err != nil {
		return nil, err
	}
	return payroll.ToPayslipResponses(slips), nil
}

func (s *PayrollServiceImpl) ListOwnPayslips(ctx context.Context, actor user.Actor) ([]*payroll.PayslipResponse, error) {
	w, err := s.workerRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	slips, err := s.payrollRepo.ListPayslipsByWorker(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	return payroll.ToPayslipResponses(slips), nil
}

func (s *PayrollServiceImpl) PayslipPDF(ctx context.Context, actor user.Actor, id string) ([]byte, error) {
	slip, err := s.getAuthorizedPayslip(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	data, err := pdf.RenderPayslip(slip)
	if err != nil {
		return nil, err
	}

	// Keep an archival copy; failure to store never fails the download.
	path := fmt.Sprintf("payslips/%s.pdf", slip.ID)
	if _, err := s.fileStorage.Upload(ctx, bytes.NewReader(data), path, "application/pdf"); err != nil {
		s.logger.Warn("failed to archive payslip pdf",
			slog.String("payslip_id", slip.ID),
			slog.Any("error", err),
		)
	}
	return data, nil
}

func (s *PayrollServiceImpl) getAuthorizedPayslip(ctx context.Context, actor user.Actor, id string) (*payroll.Payslip, error) {
	slip, err := s.payrollRepo.GetPayslipByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == user.RoleWorker {
		w, err := s.workerRepo.GetByUserID(ctx, actor.ID)
		if err != nil || w.ID != slip.WorkerID {
			return nil, payroll.ErrUnauthorized
		}
	}
	return slip, nil
}

func (s *PayrollServiceImpl) notifyFinalized(ctx context.Context, lines []RunLine, cycle *payroll.Cycle) {
	period := fmt.Sprintf("%s to %s",
		cycle.PeriodStart.Format("2 Jan"), cycle.PeriodEnd.Format("2 Jan 2006"))
	for _, line := range lines {
		if line.Worker.UserID == nil {
			continue
		}
		_ = s.notificationSvc.Notify(ctx, &notification.Notification{
			UserID:    *line.Worker.UserID,
			Kind:      notification.KindPayslipReady,
			Title:     "Payslip ready",
			Message:   fmt.Sprintf("Your payslip for %s is ready.", period),
			RefID:     &cycle.ID,
			CreatedAt: time.Now(),
		})
	}
}
