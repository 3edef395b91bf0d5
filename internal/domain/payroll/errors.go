package payroll

import "errors"

var (
	ErrCycleNotFound     = errors.New("payroll cycle not found")
	ErrPayslipNotFound   = errors.New("payslip not found")
	ErrCycleNotDeletable = errors.New("payroll cycle can only be deleted while pending approval")
	ErrInvalidTransition = errors.New("invalid payroll cycle status transition")
	ErrAlreadyAdvanced   = errors.New("payroll cycle status changed since last read")
	ErrOverlappingPeriod = errors.New("worker already has a payslip overlapping this period")
	ErrEmptyRun          = errors.New("no eligible timesheets in the requested period")
	ErrInvalidPeriod     = errors.New("period start must not be after period end")
	ErrUnauthorized      = errors.New("unauthorized to perform this action")

	// Configuration errors. These indicate a broken bracket table or engine
	// parameter set, not bad user input.
	ErrInvalidBracketTable      = errors.New("invalid tax bracket table")
	ErrInvalidEngineConfig      = errors.New("invalid wage engine configuration")
	ErrDeductionsExceedGross    = errors.New("deductions exceed gross earnings")
	ErrNoBracketMatchesEarnings = errors.New("no tax bracket matches gross earnings")
)
