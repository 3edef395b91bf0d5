package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBracketTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   BracketTable
		wantErr bool
	}{
		{
			name:    "empty table",
			table:   BracketTable{},
			wantErr: true,
		},
		{
			name: "first bracket not at zero",
			table: BracketTable{
				{Lower: d("100"), Upper: nil, Rate: d("0.22"), Base: d("0")},
			},
			wantErr: true,
		},
		{
			name: "gap between brackets",
			table: BracketTable{
				{Lower: d("0"), Upper: dp("1000"), Rate: d("0"), Base: d("0")},
				{Lower: d("1500"), Upper: nil, Rate: d("0.22"), Base: d("0")},
			},
			wantErr: true,
		},
		{
			name: "overlapping brackets",
			table: BracketTable{
				{Lower: d("0"), Upper: dp("1000"), Rate: d("0"), Base: d("0")},
				{Lower: d("800"), Upper: nil, Rate: d("0.22"), Base: d("0")},
			},
			wantErr: true,
		},
		{
			name: "bounded top bracket",
			table: BracketTable{
				{Lower: d("0"), Upper: dp("1000"), Rate: d("0"), Base: d("0")},
				{Lower: d("1000"), Upper: dp("5000"), Rate: d("0.22"), Base: d("0")},
			},
			wantErr: true,
		},
		{
			name: "unbounded middle bracket",
			table: BracketTable{
				{Lower: d("0"), Upper: nil, Rate: d("0"), Base: d("0")},
				{Lower: d("1000"), Upper: nil, Rate: d("0.22"), Base: d("0")},
			},
			wantErr: true,
		},
		{
			name: "negative rate",
			table: BracketTable{
				{Lower: d("0"), Upper: nil, Rate: d("-0.1"), Base: d("0")},
			},
			wantErr: true,
		},
		{
			name: "upper bound not above lower",
			table: BracketTable{
				{Lower: d("0"), Upper: dp("0"), Rate: d("0"), Base: d("0")},
				{Lower: d("0"), Upper: nil, Rate: d("0.22"), Base: d("0")},
			},
			wantErr: true,
		},
		{
			name: "valid two bracket table",
			table: BracketTable{
				{Lower: d("0"), Upper: dp("1000"), Rate: d("0"), Base: d("0")},
				{Lower: d("1000"), Upper: nil, Rate: d("0.22"), Base: d("0")},
			},
			wantErr: false,
		},
		{
			name:    "default resident table",
			table:   DefaultResidentBrackets(),
			wantErr: false,
		},
		{
			name:    "default non-resident table",
			table:   DefaultNonResidentBrackets(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBracketTable)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBracketTableTax(t *testing.T) {
	table := BracketTable{
		{Lower: d("0"), Upper: dp("1000"), Rate: d("0"), Base: d("0")},
		{Lower: d("1000"), Upper: nil, Rate: d("0.22"), Base: d("0")},
	}
	require.NoError(t, table.Validate())

	tests := []struct {
		name  string
		gross string
		want  string
	}{
		{"zero gross", "0", "0"},
		{"inside tax-free band", "500", "0"},
		{"just below boundary", "999.99", "0"},
		{"exactly at boundary", "1000", "0"},
		{"just above boundary", "1000.01", "0.0022"},
		{"well into taxed band", "2000", "220"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Tax(d(tt.gross))
			require.NoError(t, err)
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestBracketTableTaxNegativeGross(t *testing.T) {
	table := DefaultResidentBrackets()
	_, err := table.Tax(d("-1"))
	assert.ErrorIs(t, err, ErrNoBracketMatchesEarnings)
}

func TestDefaultResidentBracketsContinuity(t *testing.T) {
	// The cumulative tax computed from each bracket's rate must agree with
	// the next bracket's base amount, otherwise tax jumps at the boundary.
	table := DefaultResidentBrackets()
	for i := 0; i < len(table)-1; i++ {
		boundary := *table[i].Upper
		fromBelow := table[i].Base.Add(table[i].Rate.Mul(boundary.Sub(table[i].Lower)))
		fromAbove := table[i+1].Base
		diff := fromBelow.Sub(fromAbove).Abs()
		assert.True(t, diff.LessThan(decimal.RequireFromString("0.01")),
			"discontinuity of %s at boundary %s", diff, boundary)
	}
}

func TestDefaultResidentBracketsSpotValues(t *testing.T) {
	table := DefaultResidentBrackets()

	tests := []struct {
		gross string
		want  string
	}{
		{"500", "0"},
		{"769.23", "0"},
		{"2000", "369.231"},
		{"2692.31", "576.92"},
		{"10000", "3153.848"},
	}

	for _, tt := range tests {
		got, err := table.Tax(d(tt.gross))
		require.NoError(t, err)
		assert.True(t, got.Equal(d(tt.want)), "gross %s: got %s, want %s", tt.gross, got, tt.want)
	}
}
