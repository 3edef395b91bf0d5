package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/validator"
)

type RunPayrollRequest struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.PeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.PeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be YYYY-MM-DD"})
	}
	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period returns the parsed bounds. Call only after Validate.
func (r *RunPayrollRequest) Period() (start, end time.Time) {
	start, _ = validator.IsValidDate(r.PeriodStart)
	end, _ = validator.IsValidDate(r.PeriodEnd)
	return start, end
}

type AdvanceCycleRequest struct {
	Status string `json:"status"`
}

func (r *AdvanceCycleRequest) Validate() error {
	if !CycleStatus(r.Status).IsValid() {
		return validator.ValidationErrors{
			{Field: "status", Message: "must be one of: draft, verification, pending_approval, approved, paid"},
		}
	}
	return nil
}

type PayslipResponse struct {
	ID               string          `json:"id"`
	CycleID          string          `json:"cycle_id"`
	WorkerID         string          `json:"worker_id"`
	WorkerName       *string         `json:"worker_name,omitempty"`
	WorkerCode       *string         `json:"worker_code,omitempty"`
	PeriodStart      string          `json:"period_start"`
	PeriodEnd        string          `json:"period_end"`
	HourlyRate       decimal.Decimal `json:"hourly_rate"`
	ApprovedHours    decimal.Decimal `json:"approved_hours"`
	OvertimeHours    decimal.Decimal `json:"overtime_hours"`
	RegularPay       decimal.Decimal `json:"regular_pay"`
	OvertimePay      decimal.Decimal `json:"overtime_pay"`
	AllowanceTotal   decimal.Decimal `json:"allowance_total"`
	GrossEarnings    decimal.Decimal `json:"gross_earnings"`
	FortnightlyPaye  decimal.Decimal `json:"fortnightly_paye"`
	NasfundDeduction decimal.Decimal `json:"nasfund_deduction"`
	OtherDeductions  decimal.Decimal `json:"other_deductions"`
	NetPay           decimal.Decimal `json:"net_pay"`
	CreatedAt        time.Time       `json:"created_at"`
}

type CycleResponse struct {
	ID              string          `json:"id"`
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
	Status          CycleStatus     `json:"status"`
	TotalWorkers    int             `json:"total_workers"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
	CreatedBy       string          `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// PreviewLine is one worker's computed pay in a dry run. Nothing is
// persisted until the run is finalized.
type PreviewLine struct {
	WorkerID         string          `json:"worker_id"`
	WorkerName       string          `json:"worker_name"`
	HourlyRate       decimal.Decimal `json:"hourly_rate"`
	ApprovedHours    decimal.Decimal `json:"approved_hours"`
	OvertimeHours    decimal.Decimal `json:"overtime_hours"`
	GrossEarnings    decimal.Decimal `json:"gross_earnings"`
	FortnightlyPaye  decimal.Decimal `json:"fortnightly_paye"`
	NasfundDeduction decimal.Decimal `json:"nasfund_deduction"`
	OtherDeductions  decimal.Decimal `json:"other_deductions"`
	NetPay           decimal.Decimal `json:"net_pay"`
}

type PreviewResponse struct {
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
	Lines           []PreviewLine   `json:"lines"`
	TotalWorkers    int             `json:"total_workers"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
}

func ToCycleResponse(c *Cycle) *CycleResponse {
	return &CycleResponse{
		ID:              c.ID,
		PeriodStart:     c.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       c.PeriodEnd.Format("2006-01-02"),
		Status:          c.Status,
		TotalWorkers:    c.TotalWorkers,
		TotalGross:      c.TotalGross,
		TotalDeductions: c.TotalDeductions,
		TotalNet:        c.TotalNet,
		CreatedBy:       c.CreatedBy,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func ToCycleResponses(cs []*Cycle) []*CycleResponse {
	responses := make([]*CycleResponse, 0, len(cs))
	for _, c := range cs {
		responses = append(responses, ToCycleResponse(c))
	}
	return responses
}

func ToPayslipResponse(p *Payslip) *PayslipResponse {
	return &PayslipResponse{
		ID:               p.ID,
		CycleID:          p.CycleID,
		WorkerID:         p.WorkerID,
		WorkerName:       p.WorkerName,
		WorkerCode:       p.WorkerCode,
		PeriodStart:      p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:        p.PeriodEnd.Format("2006-01-02"),
		HourlyRate:       p.HourlyRate,
		ApprovedHours:    p.ApprovedHours,
		OvertimeHours:    p.OvertimeHours,
		RegularPay:       p.RegularPay,
		OvertimePay:      p.OvertimePay,
		AllowanceTotal:   p.AllowanceTotal,
		GrossEarnings:    p.GrossEarnings,
		FortnightlyPaye:  p.FortnightlyPaye,
		NasfundDeduction: p.NasfundDeduction,
		OtherDeductions:  p.OtherDeductions,
		NetPay:           p.NetPay,
		CreatedAt:        p.CreatedAt,
	}
}

func ToPayslipResponses(ps []*Payslip) []*PayslipResponse {
	responses := make([]*PayslipResponse, 0, len(ps))
	for _, p := range ps {
		responses = append(responses, ToPayslipResponse(p))
	}
	return responses
}
