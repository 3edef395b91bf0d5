package worker

import (
	"github.com/shopspring/decimal"

	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	UserID         *string         `json:"user_id,omitempty"`
	FullName       string          `json:"full_name"`
	EmployeeCode   *string         `json:"employee_code,omitempty"`
	Position       *string         `json:"position,omitempty"`
	Department     *string         `json:"department,omitempty"`
	EmploymentType string          `json:"employment_type"`
	ProjectSite    *string         `json:"project_site,omitempty"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	IsResident     bool            `json:"is_resident"`
	SuperEnabled   bool            `json:"super_enabled"`
	BankName       *string         `json:"bank_name,omitempty"`
	BankAccount    *string         `json:"bank_account,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.UserID != nil && !validator.IsValidUUID(*r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "must be a valid UUID"})
	}
	if r.EmployeeCode != nil && !validator.IsValidEmployeeCode(*r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must match AA-0000 style codes"})
	}
	if !validator.IsInSlice(r.EmploymentType, []string{
		string(EmploymentFullTime), string(EmploymentCasual), string(EmploymentContract),
	}) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "must be full_time, casual or contract"})
	}
	if !validator.IsNonNegativeMoney(r.HourlyRate) {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be a non-negative amount"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID             string          `json:"id"`
	FullName       string          `json:"full_name"`
	EmployeeCode   *string         `json:"employee_code,omitempty"`
	Position       *string         `json:"position,omitempty"`
	Department     *string         `json:"department,omitempty"`
	EmploymentType string          `json:"employment_type"`
	ProjectSite    *string         `json:"project_site,omitempty"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	IsResident     bool            `json:"is_resident"`
	SuperEnabled   bool            `json:"super_enabled"`
	AccountStatus  string          `json:"account_status"`
	IsActive       bool            `json:"is_active"`
}

func ToResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:             w.ID,
		FullName:       w.FullName,
		EmployeeCode:   w.EmployeeCode,
		Position:       w.Position,
		Department:     w.Department,
		EmploymentType: string(w.EmploymentType),
		ProjectSite:    w.ProjectSite,
		HourlyRate:     w.HourlyRate,
		IsResident:     w.IsResident,
		SuperEnabled:   w.SuperEnabled,
		AccountStatus:  string(w.AccountStatus),
		IsActive:       w.IsActive,
	}
}

func ToResponses(workers []Worker) []WorkerResponse {
	result := make([]WorkerResponse, 0, len(workers))
	for _, w := range workers {
		result = append(result, ToResponse(w))
	}
	return result
}
