package payroll

import (
	"context"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
)

type PayrollService interface {
	// Preview computes the run without persisting anything.
	Preview(ctx context.Context, actor user.Actor, req RunPayrollRequest) (*PreviewResponse, error)

	// Finalize computes the run and persists the cycle and its payslips
	// atomically. The per-worker overlap check runs inside the same
	// transaction as the insert.
	Finalize(ctx context.Context, actor user.Actor, req RunPayrollRequest) (*CycleResponse, error)

	GetCycle(ctx context.Context, actor user.Actor, id string) (*CycleResponse, error)
	ListCycles(ctx context.Context, actor user.Actor) ([]*CycleResponse, error)
	AdvanceCycle(ctx context.Context, actor user.Actor, id string, req AdvanceCycleRequest) (*CycleResponse, error)

	// DeleteCycle voids a pending_approval cycle, cascading to its
	// payslips. This is the only payslip correction path.
	DeleteCycle(ctx context.Context, actor user.Actor, id string) error

	GetPayslip(ctx context.Context, actor user.Actor, id string) (*PayslipResponse, error)
	ListPayslipsByCycle(ctx context.Context, actor user.Actor, cycleID string) ([]*PayslipResponse, error)
	ListOwnPayslips(ctx context.Context, actor user.Actor) ([]*PayslipResponse, error)

	// PayslipPDF renders a payslip document for download.
	PayslipPDF(ctx context.Context, actor user.Actor, id string) ([]byte, error)
}
