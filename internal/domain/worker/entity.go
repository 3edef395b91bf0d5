package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full_time"
	EmploymentCasual   EmploymentType = "casual"
	EmploymentContract EmploymentType = "contract"
)

type AccountStatus string

const (
	AccountPending   AccountStatus = "pending"
	AccountApproved  AccountStatus = "approved"
	AccountSuspended AccountStatus = "suspended"
)

// Worker is the payroll-facing profile. The payroll engines read it and
// never write it; rate changes after a payslip is generated do not reach
// that payslip because the rate is snapshotted at generation time.
type Worker struct {
	ID             string
	UserID         *string
	FullName       string
	EmployeeCode   *string
	Position       *string
	Department     *string
	EmploymentType EmploymentType
	ProjectSite    *string
	HourlyRate     decimal.Decimal
	IsResident     bool
	SuperEnabled   bool
	BankName       *string
	BankAccount    *string
	AccountStatus  AccountStatus
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
