package payroll

import "github.com/shopspring/decimal"

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }
func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

// DefaultResidentBrackets is the PNG fortnightly PAYE table for resident
// workers. Base amounts are the cumulative tax at each lower bound.
func DefaultResidentBrackets() BracketTable {
	return BracketTable{
		{Lower: d("0"), Upper: dp("769.23"), Rate: d("0"), Base: d("0")},
		{Lower: d("769.23"), Upper: dp("2692.31"), Rate: d("0.30"), Base: d("0")},
		{Lower: d("2692.31"), Upper: dp("9615.38"), Rate: d("0.35"), Base: d("576.92")},
		{Lower: d("9615.38"), Upper: dp("19230.77"), Rate: d("0.40"), Base: d("3000.00")},
		{Lower: d("19230.77"), Upper: nil, Rate: d("0.42"), Base: d("6846.15")},
	}
}

// DefaultNonResidentBrackets taxes non-residents at a flat rate from the
// first kina.
func DefaultNonResidentBrackets() BracketTable {
	return BracketTable{
		{Lower: d("0"), Upper: nil, Rate: d("0.22"), Base: d("0")},
	}
}

// DefaultEngineConfig is the standard fortnightly configuration: 80
// standard hours, time-and-a-half overtime, 6% Nasfund employee
// contribution.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		StandardHoursPerPeriod: d("80"),
		OvertimeMultiplier:     d("1.5"),
		SuperRate:              d("0.06"),
		ResidentBrackets:       DefaultResidentBrackets(),
		NonResidentBrackets:    DefaultNonResidentBrackets(),
	}
}
