package timesheet

import (
	"github.com/shopspring/decimal"

	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/validator"
)

type CreateTimesheetRequest struct {
	WorkerID        string           `json:"worker_id"`
	Date            string           `json:"date"`
	ClockIn         string           `json:"clock_in"`
	ClockOut        string           `json:"clock_out"`
	TaskDescription *string          `json:"task_description,omitempty"`
	AllowanceAmount *decimal.Decimal `json:"allowance_amount,omitempty"`
}

func (r *CreateTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "must be a valid UUID"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	clockIn, inOK := validator.IsValidClockTime(r.ClockIn)
	if !inOK {
		errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "must be HH:MM"})
	}
	clockOut, outOK := validator.IsValidClockTime(r.ClockOut)
	if !outOK {
		errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "must be HH:MM"})
	}
	// Clock-out earlier than clock-in is a shift crossing midnight, so
	// only the zero-length case is invalid.
	if inOK && outOK && clockOut.Equal(clockIn) {
		errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "must differ from clock_in"})
	}
	if r.AllowanceAmount != nil && !validator.IsNonNegativeMoney(*r.AllowanceAmount) {
		errs = append(errs, validator.ValidationError{Field: "allowance_amount", Message: "must be a non-negative amount"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewTimesheetRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"`
}

func (r *ReviewTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{
		string(StatusApproved), string(StatusRejected), string(StatusFlagged),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be approved, rejected or flagged"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimesheetResponse struct {
	ID              string          `json:"id"`
	WorkerID        string          `json:"worker_id"`
	WorkerName      *string         `json:"worker_name,omitempty"`
	Date            string          `json:"date"`
	ClockIn         string          `json:"clock_in"`
	ClockOut        string          `json:"clock_out"`
	TotalHours      decimal.Decimal `json:"total_hours"`
	TaskDescription *string         `json:"task_description,omitempty"`
	AllowanceAmount decimal.Decimal `json:"allowance_amount"`
	Status          string          `json:"status"`
	ApprovedBy      *string         `json:"approved_by,omitempty"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
}

func ToResponse(ts Timesheet) TimesheetResponse {
	return TimesheetResponse{
		ID:              ts.ID,
		WorkerID:        ts.WorkerID,
		WorkerName:      ts.WorkerName,
		Date:            ts.Date.Format("2006-01-02"),
		ClockIn:         ts.ClockIn,
		ClockOut:        ts.ClockOut,
		TotalHours:      ts.TotalHours,
		TaskDescription: ts.TaskDescription,
		AllowanceAmount: ts.AllowanceAmount,
		Status:          string(ts.Status),
		ApprovedBy:      ts.ApprovedBy,
		RejectionReason: ts.RejectionReason,
	}
}

func ToResponses(timesheets []Timesheet) []TimesheetResponse {
	result := make([]TimesheetResponse, 0, len(timesheets))
	for _, ts := range timesheets {
		result = append(result, ToResponse(ts))
	}
	return result
}
