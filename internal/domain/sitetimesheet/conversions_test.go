package sitetimesheet

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSuggestedKg(t *testing.T) {
	tests := []struct {
		name         string
		materialType MaterialType
		quantity     string
		wantKg       string
		wantKnown    bool
	}{
		{"cement bags", MaterialCementBag, "10", "500", true},
		{"fractional cement bags", MaterialCementBag, "2.5", "125", true},
		{"aggregate cubic metres", MaterialAggregateM3, "3", "4500", true},
		{"sand cubic metres", MaterialSandM3, "2", "3200", true},
		{"steel bars", MaterialSteelBarUnit, "100", "790", true},
		{"unknown material", MaterialType("timber_plank"), "10", "0", false},
		{"empty material type", MaterialType(""), "10", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qty := decimal.RequireFromString(tt.quantity)
			got, known := SuggestedKg(tt.materialType, qty)
			assert.Equal(t, tt.wantKnown, known)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.wantKg)),
				"got %s, want %s", got, tt.wantKg)
		})
	}
}
