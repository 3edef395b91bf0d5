package timesheet

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/validator"
)

func TestShiftHours(t *testing.T) {
	tests := []struct {
		name     string
		clockIn  string
		clockOut string
		want     string
	}{
		{"day shift", "07:00", "15:30", "8.5"},
		{"night shift past midnight", "22:00", "06:00", "8"},
		{"short span over midnight", "23:30", "00:15", "0.75"},
		{"ends exactly at midnight", "16:00", "00:00", "8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, ok := validator.IsValidClockTime(tt.clockIn)
			require.True(t, ok)
			out, ok := validator.IsValidClockTime(tt.clockOut)
			require.True(t, ok)

			got := ShiftHours(in, out)
			want := decimal.RequireFromString(tt.want)
			assert.True(t, got.Equal(want), "got %s, want %s", got, tt.want)
		})
	}
}
