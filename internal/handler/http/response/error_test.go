package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/validator"
)

func handle(t *testing.T, err error) (int, Response) {
	t.Helper()
	rec := httptest.NewRecorder()
	HandleError(rec, err)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec.Code, resp
}

func TestHandleErrorConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"invalid bracket table", payroll.ErrInvalidBracketTable},
		{"invalid engine config", payroll.ErrInvalidEngineConfig},
		{"deductions exceed gross", payroll.ErrDeductionsExceedGross},
		{"wrapped bracket gap", fmt.Errorf("computing paye: %w", payroll.ErrNoBracketMatchesEarnings)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := handle(t, tt.err)

			assert.Equal(t, http.StatusInternalServerError, code)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "CONFIGURATION_ERROR", resp.Error.Code)
			assert.Equal(t, tt.err.Error(), resp.Error.Message)
		})
	}
}

func TestHandleErrorPayrollConflicts(t *testing.T) {
	code, resp := handle(t, fmt.Errorf("%w: Arua Kila", payroll.ErrOverlappingPeriod))

	assert.Equal(t, http.StatusConflict, code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "CONFLICT", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Arua Kila")
}

func TestHandleErrorValidationErrors(t *testing.T) {
	code, resp := handle(t, validator.ValidationErrors{
		{Field: "period_end", Message: "must not be before period_start"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "must not be before period_start", resp.Error.Details["period_end"])
}

func TestHandleErrorUnknownError(t *testing.T) {
	code, resp := handle(t, fmt.Errorf("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", resp.Error.Code)
}
