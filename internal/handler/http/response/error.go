package response

import (
	"errors"
	"net/http"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/auth"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/notification"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/project"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/sitetimesheet"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/timesheet"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/worker"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Configuration errors
// deliberately land on 500: a broken bracket table is an operator problem,
// not a client one.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrAccountInactive):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())

	// Workers and projects
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, worker.ErrEmployeeCodeExists):
		Conflict(w, err.Error())
	case errors.Is(err, project.ErrProjectNotFound),
		errors.Is(err, project.ErrAssignmentNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, project.ErrAlreadyAssigned):
		Conflict(w, err.Error())
	case errors.Is(err, project.ErrNotAssigned):
		Forbidden(w, err.Error())

	// Worker timesheets
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, timesheet.ErrAlreadyProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, timesheet.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Site timesheets
	case errors.Is(err, sitetimesheet.ErrSiteTimesheetNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, sitetimesheet.ErrAlreadyProcessed),
		errors.Is(err, sitetimesheet.ErrNotDraft),
		errors.Is(err, sitetimesheet.ErrNotSubmitted):
		Conflict(w, err.Error())
	case errors.Is(err, sitetimesheet.ErrRejectionReasonRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, sitetimesheet.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Payroll
	case errors.Is(err, payroll.ErrCycleNotFound),
		errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, payroll.ErrOverlappingPeriod),
		errors.Is(err, payroll.ErrAlreadyAdvanced),
		errors.Is(err, payroll.ErrCycleNotDeletable),
		errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrEmptyRun),
		errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrUnauthorized):
		Forbidden(w, err.Error())
	case errors.Is(err, payroll.ErrInvalidBracketTable),
		errors.Is(err, payroll.ErrInvalidEngineConfig),
		errors.Is(err, payroll.ErrDeductionsExceedGross),
		errors.Is(err, payroll.ErrNoBracketMatchesEarnings):
		ConfigurationError(w, err.Error())

	// Notifications
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, notification.ErrUnauthorized):
		Forbidden(w, err.Error())

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
