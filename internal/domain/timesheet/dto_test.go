package timesheet

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/validator"
)

func validCreateRequest() CreateTimesheetRequest {
	return CreateTimesheetRequest{
		WorkerID: "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		Date:     "2026-03-02",
		ClockIn:  "07:00",
		ClockOut: "15:30",
	}
}

func TestCreateTimesheetRequest_Validate(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateTimesheetRequest_Validate_OvernightShift(t *testing.T) {
	req := validCreateRequest()
	req.ClockIn = "22:00"
	req.ClockOut = "06:00"
	assert.NoError(t, req.Validate())
}

func TestCreateTimesheetRequest_Validate_Errors(t *testing.T) {
	negative := decimal.NewFromInt(-5)

	tests := []struct {
		name   string
		mutate func(*CreateTimesheetRequest)
		field  string
	}{
		{"bad worker id", func(r *CreateTimesheetRequest) { r.WorkerID = "nope" }, "worker_id"},
		{"bad date", func(r *CreateTimesheetRequest) { r.Date = "02/03/2026" }, "date"},
		{"bad clock in", func(r *CreateTimesheetRequest) { r.ClockIn = "7am" }, "clock_in"},
		{"bad clock out", func(r *CreateTimesheetRequest) { r.ClockOut = "25:00" }, "clock_out"},
		{"clock out equals clock in", func(r *CreateTimesheetRequest) { r.ClockIn = "07:00"; r.ClockOut = "07:00" }, "clock_out"},
		{"negative allowance", func(r *CreateTimesheetRequest) { r.AllowanceAmount = &negative }, "allowance_amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			found := false
			for _, ve := range verrs {
				if ve.Field == tt.field {
					found = true
				}
			}
			assert.True(t, found, "expected an error on field %s, got %v", tt.field, verrs)
		})
	}
}

func TestReviewTimesheetRequest_Validate(t *testing.T) {
	for _, status := range []string{"approved", "rejected", "flagged"} {
		req := ReviewTimesheetRequest{Status: status}
		assert.NoError(t, req.Validate(), status)
	}

	req := ReviewTimesheetRequest{Status: "pending"}
	assert.Error(t, req.Validate())
}
