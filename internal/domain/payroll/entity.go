package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cycle is one finalized payroll run. Monetary totals are frozen at
// finalization and never re-derived from source hours; only the status
// advances afterwards.
type Cycle struct {
	ID              string
	PeriodStart     time.Time
	PeriodEnd       time.Time
	Status          CycleStatus
	TotalWorkers    int
	TotalGross      decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Payslip is the frozen per-worker output of a cycle. HourlyRate is a
// snapshot of the worker's rate at finalization time so later rate changes
// do not rewrite history.
type Payslip struct {
	ID               string
	CycleID          string
	WorkerID         string
	PeriodStart      time.Time
	PeriodEnd        time.Time
	HourlyRate       decimal.Decimal
	ApprovedHours    decimal.Decimal
	OvertimeHours    decimal.Decimal
	RegularPay       decimal.Decimal
	OvertimePay      decimal.Decimal
	AllowanceTotal   decimal.Decimal
	GrossEarnings    decimal.Decimal
	FortnightlyPaye  decimal.Decimal
	NasfundDeduction decimal.Decimal
	OtherDeductions  decimal.Decimal
	NetPay           decimal.Decimal
	CreatedAt        time.Time

	// Joined fields
	WorkerName   *string
	WorkerCode   *string
	WorkerBank   *string
	WorkerBankNo *string
}
