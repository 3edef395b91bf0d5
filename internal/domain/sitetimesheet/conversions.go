package sitetimesheet

import "github.com/shopspring/decimal"

// MaterialType identifies a material family with a known per-unit weight.
type MaterialType string

const (
	MaterialCementBag    MaterialType = "cement_bag"
	MaterialAggregateM3  MaterialType = "aggregate_m3"
	MaterialSandM3       MaterialType = "sand_m3"
	MaterialSteelBarUnit MaterialType = "steel_bar_unit"
)

// kgPerUnit holds advisory per-unit weights. The computed figure is a
// suggestion shown to the submitter; the stored calculated_kg always comes
// from the request and is never overwritten here.
var kgPerUnit = map[MaterialType]decimal.Decimal{
	MaterialCementBag:    decimal.NewFromInt(50),
	MaterialAggregateM3:  decimal.NewFromInt(1500),
	MaterialSandM3:       decimal.NewFromInt(1600),
	MaterialSteelBarUnit: decimal.RequireFromString("7.9"),
}

// SuggestedKg returns the advisory weight for a quantity of the given
// material type. The second return is false when no conversion is known.
func SuggestedKg(materialType MaterialType, quantity decimal.Decimal) (decimal.Decimal, bool) {
	perUnit, ok := kgPerUnit[materialType]
	if !ok {
		return decimal.Zero, false
	}
	return quantity.Mul(perUnit), true
}
