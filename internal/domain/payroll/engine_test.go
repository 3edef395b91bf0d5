package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/timesheet"
)

func sheetWithHours(hours string) *timesheet.Timesheet {
	return &timesheet.Timesheet{
		TotalHours: decimal.RequireFromString(hours),
		Status:     timesheet.StatusApproved,
	}
}

func twoBracketConfig() EngineConfig {
	return EngineConfig{
		StandardHoursPerPeriod: d("80"),
		OvertimeMultiplier:     d("1.5"),
		SuperRate:              d("0.06"),
		ResidentBrackets: BracketTable{
			{Lower: d("0"), Upper: dp("1000"), Rate: d("0"), Base: d("0")},
			{Lower: d("1000"), Upper: nil, Rate: d("0.22"), Base: d("0")},
		},
		NonResidentBrackets: DefaultNonResidentBrackets(),
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, got.Equal(d(want)), "%s: got %s, want %s", field, got, want)
}

func TestComputeStandardFortnight(t *testing.T) {
	cfg := twoBracketConfig()

	got, err := cfg.Compute(EngineInput{
		HourlyRate:   d("25.00"),
		IsResident:   true,
		SuperEnabled: true,
		Timesheets: []*timesheet.Timesheet{
			sheetWithHours("8"), sheetWithHours("8"), sheetWithHours("8"),
			sheetWithHours("8"), sheetWithHours("8"), sheetWithHours("8"),
			sheetWithHours("8"), sheetWithHours("8"), sheetWithHours("8"),
			sheetWithHours("8"),
		},
	})
	require.NoError(t, err)

	assertDecimal(t, "80", got.ApprovedHours, "approved hours")
	assertDecimal(t, "0", got.OvertimeHours, "overtime hours")
	assertDecimal(t, "2000.00", got.GrossEarnings, "gross")
	assertDecimal(t, "220.00", got.FortnightlyPaye, "paye")
	assertDecimal(t, "120.00", got.NasfundDeduction, "super")
	assertDecimal(t, "1660.00", got.NetPay, "net")
}

func TestComputeOvertimeSplit(t *testing.T) {
	cfg := twoBracketConfig()

	got, err := cfg.Compute(EngineInput{
		HourlyRate: d("10.00"),
		IsResident: true,
		Timesheets: []*timesheet.Timesheet{sheetWithHours("90")},
	})
	require.NoError(t, err)

	assertDecimal(t, "90", got.ApprovedHours, "approved hours")
	assertDecimal(t, "10", got.OvertimeHours, "overtime hours")
	assertDecimal(t, "800.00", got.RegularPay, "regular pay")
	assertDecimal(t, "150.00", got.OvertimePay, "overtime pay")
	assertDecimal(t, "950.00", got.GrossEarnings, "gross")
	assertDecimal(t, "0", got.FortnightlyPaye, "paye inside tax-free band")
}

func TestComputeAllowancesRaiseGross(t *testing.T) {
	cfg := twoBracketConfig()

	got, err := cfg.Compute(EngineInput{
		HourlyRate:     d("10.00"),
		IsResident:     true,
		Timesheets:     []*timesheet.Timesheet{sheetWithHours("40")},
		AllowanceTotal: d("150.50"),
	})
	require.NoError(t, err)

	assertDecimal(t, "550.50", got.GrossEarnings, "gross includes allowances")
	assertDecimal(t, "150.50", got.AllowanceTotal, "allowance total")
}

func TestComputeSuperDisabled(t *testing.T) {
	cfg := twoBracketConfig()

	got, err := cfg.Compute(EngineInput{
		HourlyRate:   d("25.00"),
		IsResident:   true,
		SuperEnabled: false,
		Timesheets:   []*timesheet.Timesheet{sheetWithHours("80")},
	})
	require.NoError(t, err)

	assertDecimal(t, "0", got.NasfundDeduction, "super")
	assertDecimal(t, "1780.00", got.NetPay, "net without super")
}

func TestComputeNonResidentUsesFlatTable(t *testing.T) {
	cfg := twoBracketConfig()

	got, err := cfg.Compute(EngineInput{
		HourlyRate: d("10.00"),
		IsResident: false,
		Timesheets: []*timesheet.Timesheet{sheetWithHours("50")},
	})
	require.NoError(t, err)

	// Non-residents are taxed from the first kina: 22% of 500.
	assertDecimal(t, "110.00", got.FortnightlyPaye, "flat non-resident paye")
}

func TestComputeOtherDeductionsAndNetIdentity(t *testing.T) {
	cfg := twoBracketConfig()

	got, err := cfg.Compute(EngineInput{
		HourlyRate:      d("25.00"),
		IsResident:      true,
		SuperEnabled:    true,
		Timesheets:      []*timesheet.Timesheet{sheetWithHours("80")},
		OtherDeductions: d("75.25"),
	})
	require.NoError(t, err)

	identity := got.GrossEarnings.
		Sub(got.FortnightlyPaye).
		Sub(got.NasfundDeduction).
		Sub(got.OtherDeductions)
	assert.True(t, got.NetPay.Equal(identity), "net %s violates identity %s", got.NetPay, identity)
	assertDecimal(t, "1584.75", got.NetPay, "net")
}

func TestComputeOrderIndependent(t *testing.T) {
	cfg := DefaultEngineConfig()

	forward := []*timesheet.Timesheet{
		sheetWithHours("7.5"), sheetWithHours("9.25"), sheetWithHours("8"),
		sheetWithHours("10"), sheetWithHours("6.75"),
	}
	reversed := make([]*timesheet.Timesheet, len(forward))
	for i, ts := range forward {
		reversed[len(forward)-1-i] = ts
	}

	in := EngineInput{HourlyRate: d("18.40"), IsResident: true, SuperEnabled: true}

	in.Timesheets = forward
	a, err := cfg.Compute(in)
	require.NoError(t, err)

	in.Timesheets = reversed
	b, err := cfg.Compute(in)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestComputeDeterministic(t *testing.T) {
	cfg := DefaultEngineConfig()
	in := EngineInput{
		HourlyRate:   d("31.17"),
		IsResident:   true,
		SuperEnabled: true,
		Timesheets:   []*timesheet.Timesheet{sheetWithHours("82.5")},
	}

	a, err := cfg.Compute(in)
	require.NoError(t, err)
	b, err := cfg.Compute(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComputeZeroTimesheets(t *testing.T) {
	cfg := DefaultEngineConfig()

	got, err := cfg.Compute(EngineInput{
		HourlyRate:   d("25.00"),
		IsResident:   true,
		SuperEnabled: true,
	})
	require.NoError(t, err)

	assertDecimal(t, "0", got.ApprovedHours, "approved hours")
	assertDecimal(t, "0", got.GrossEarnings, "gross")
	assertDecimal(t, "0", got.NetPay, "net")
}

func TestComputeDeductionsExceedGross(t *testing.T) {
	cfg := twoBracketConfig()

	got, err := cfg.Compute(EngineInput{
		HourlyRate:      d("10.00"),
		IsResident:      true,
		Timesheets:      []*timesheet.Timesheet{sheetWithHours("10")},
		OtherDeductions: d("500.00"),
	})
	assert.ErrorIs(t, err, ErrDeductionsExceedGross)
	assertDecimal(t, "0", got.NetPay, "net floored at zero")
	assertDecimal(t, "100.00", got.GrossEarnings, "gross still reported")
}

func TestComputeRejectsBrokenConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EngineConfig)
	}{
		{"zero standard hours", func(c *EngineConfig) { c.StandardHoursPerPeriod = decimal.Zero }},
		{"multiplier below one", func(c *EngineConfig) { c.OvertimeMultiplier = d("0.5") }},
		{"super rate above one", func(c *EngineConfig) { c.SuperRate = d("1.5") }},
		{"empty resident table", func(c *EngineConfig) { c.ResidentBrackets = nil }},
		{"gapped resident table", func(c *EngineConfig) {
			c.ResidentBrackets = BracketTable{
				{Lower: d("0"), Upper: dp("500"), Rate: d("0"), Base: d("0")},
				{Lower: d("600"), Upper: nil, Rate: d("0.22"), Base: d("0")},
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultEngineConfig()
			tt.mutate(&cfg)
			_, err := cfg.Compute(EngineInput{
				HourlyRate: d("25.00"),
				IsResident: true,
				Timesheets: []*timesheet.Timesheet{sheetWithHours("80")},
			})
			assert.Error(t, err)
		})
	}
}
