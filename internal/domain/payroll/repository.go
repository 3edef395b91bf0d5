package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	// CreateCycle inserts the cycle and all its payslips. Callers run it
	// inside a transaction together with HasOverlappingPayslip so the
	// overlap check and the insert are atomic.
	CreateCycle(ctx context.Context, cycle *Cycle, payslips []*Payslip) error

	GetCycleByID(ctx context.Context, id string) (*Cycle, error)
	ListCycles(ctx context.Context) ([]*Cycle, error)

	// AdvanceCycleStatus moves a cycle from expected to next. Returns
	// ErrAlreadyAdvanced when the row is no longer in the expected status,
	// detected by the status guard on the UPDATE.
	AdvanceCycleStatus(ctx context.Context, id string, expected, next CycleStatus) error

	// DeleteCycle removes a pending_approval cycle and cascades to its
	// payslips. Returns ErrCycleNotDeletable for any other status.
	DeleteCycle(ctx context.Context, id string) error

	GetPayslipByID(ctx context.Context, id string) (*Payslip, error)
	ListPayslipsByCycle(ctx context.Context, cycleID string) ([]*Payslip, error)
	ListPayslipsByWorker(ctx context.Context, workerID string) ([]*Payslip, error)

	// HasOverlappingPayslip reports whether the worker already has a
	// payslip whose period intersects [start, end].
	HasOverlappingPayslip(ctx context.Context, workerID string, start, end time.Time) (bool, error)

	// AcquireFinalizeLock takes a transaction-scoped lock that serializes
	// finalize runs across connections. Without it, two concurrent runs
	// each pass HasOverlappingPayslip before either commits. Released
	// automatically on commit or rollback.
	AcquireFinalizeLock(ctx context.Context) error
}
