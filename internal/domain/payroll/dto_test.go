package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPayrollRequest_Validate(t *testing.T) {
	req := RunPayrollRequest{PeriodStart: "2026-03-02", PeriodEnd: "2026-03-15"}
	require.NoError(t, req.Validate())

	start, end := req.Period()
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), end)
}

func TestRunPayrollRequest_Validate_Errors(t *testing.T) {
	tests := []struct {
		name string
		req  RunPayrollRequest
	}{
		{"bad start", RunPayrollRequest{PeriodStart: "March 2", PeriodEnd: "2026-03-15"}},
		{"bad end", RunPayrollRequest{PeriodStart: "2026-03-02", PeriodEnd: ""}},
		{"end before start", RunPayrollRequest{PeriodStart: "2026-03-15", PeriodEnd: "2026-03-02"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}
}

func TestRunPayrollRequest_SingleDayPeriod(t *testing.T) {
	req := RunPayrollRequest{PeriodStart: "2026-03-02", PeriodEnd: "2026-03-02"}
	assert.NoError(t, req.Validate())
}

func TestAdvanceCycleRequest_Validate(t *testing.T) {
	assert.NoError(t, (&AdvanceCycleRequest{Status: "approved"}).Validate())
	assert.Error(t, (&AdvanceCycleRequest{Status: "done"}).Validate())
}
