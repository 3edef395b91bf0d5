package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/timesheet"
)

// EngineConfig carries the jurisdiction parameters for one tax year. The
// values are configuration, not code, so a new tax year swaps the table
// without touching the algorithm.
type EngineConfig struct {
	StandardHoursPerPeriod decimal.Decimal
	OvertimeMultiplier     decimal.Decimal
	SuperRate              decimal.Decimal
	ResidentBrackets       BracketTable
	NonResidentBrackets    BracketTable
}

func (c EngineConfig) Validate() error {
	if !c.StandardHoursPerPeriod.IsPositive() {
		return fmt.Errorf("%w: standard hours per period must be positive, got %s",
			ErrInvalidEngineConfig, c.StandardHoursPerPeriod)
	}
	if c.OvertimeMultiplier.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: overtime multiplier must be at least 1, got %s",
			ErrInvalidEngineConfig, c.OvertimeMultiplier)
	}
	if c.SuperRate.IsNegative() || c.SuperRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: super rate must be between 0 and 1, got %s",
			ErrInvalidEngineConfig, c.SuperRate)
	}
	if err := c.ResidentBrackets.Validate(); err != nil {
		return fmt.Errorf("resident table: %w", err)
	}
	if err := c.NonResidentBrackets.Validate(); err != nil {
		return fmt.Errorf("non-resident table: %w", err)
	}
	return nil
}

// EngineInput is everything the engine needs for one worker. Timesheets
// are trusted as-is: the caller filters to the period and to approved
// status before invoking the engine.
type EngineInput struct {
	HourlyRate      decimal.Decimal
	IsResident      bool
	SuperEnabled    bool
	Timesheets      []*timesheet.Timesheet
	AllowanceTotal  decimal.Decimal
	OtherDeductions decimal.Decimal
}

// Breakdown is the pay computation for one worker. All monetary fields are
// rounded to two decimal places; the net identity
// NetPay = GrossEarnings − FortnightlyPaye − NasfundDeduction − OtherDeductions
// holds exactly on the rounded values.
type Breakdown struct {
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
}

// Compute derives a worker's pay breakdown for one period. It is a pure
// function of its inputs: no clock, no randomness, and the result does not
// depend on the order of the timesheet list.
//
// Rounding happens once per output field, never on intermediate values, so
// error does not compound across many timesheet rows. If deductions exceed
// gross, net is floored at zero and ErrDeductionsExceedGross is returned
// alongside the breakdown so the caller can surface the misconfiguration.
func (c EngineConfig) Compute(in EngineInput) (Breakdown, error) {
	if err := c.Validate(); err != nil {
		return Breakdown{}, err
	}
	if in.HourlyRate.IsNegative() {
		return Breakdown{}, fmt.Errorf("%w: hourly rate %s is negative", ErrInvalidEngineConfig, in.HourlyRate)
	}

	approvedHours := decimal.Zero
	for _, ts := range in.Timesheets {
		approvedHours = approvedHours.Add(ts.TotalHours)
	}

	regularHours := approvedHours
	overtimeHours := decimal.Zero
	if approvedHours.GreaterThan(c.StandardHoursPerPeriod) {
		regularHours = c.StandardHoursPerPeriod
		overtimeHours = approvedHours.Sub(c.StandardHoursPerPeriod)
	}

	regularPay := regularHours.Mul(in.HourlyRate)
	overtimePay := overtimeHours.Mul(in.HourlyRate).Mul(c.OvertimeMultiplier)
	gross := regularPay.Add(overtimePay).Add(in.AllowanceTotal).Round(2)

	table := c.NonResidentBrackets
	if in.IsResident {
		table = c.ResidentBrackets
	}
	tax, err := table.Tax(gross)
	if err != nil {
		return Breakdown{}, err
	}
	tax = tax.Round(2)

	super := decimal.Zero
	if in.SuperEnabled {
		super = gross.Mul(c.SuperRate).Round(2)
	}

	other := in.OtherDeductions.Round(2)
	net := gross.Sub(tax).Sub(super).Sub(other)

	out := Breakdown{
		ApprovedHours:    approvedHours,
		OvertimeHours:    overtimeHours,
		RegularPay:       regularPay.Round(2),
		OvertimePay:      overtimePay.Round(2),
		AllowanceTotal:   in.AllowanceTotal.Round(2),
		GrossEarnings:    gross,
		FortnightlyPaye:  tax,
		NasfundDeduction: super,
		OtherDeductions:  other,
		NetPay:           net,
	}
	if net.IsNegative() {
		out.NetPay = decimal.Zero
		return out, ErrDeductionsExceedGross
	}
	return out, nil
}
