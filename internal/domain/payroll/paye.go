package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Bracket is one row of a progressive fortnightly tax table. Upper is nil
// for the top bracket. Tax for earnings g falling in the bracket is
// Base + Rate × (g − Lower).
type Bracket struct {
	Lower decimal.Decimal
	Upper *decimal.Decimal
	Rate  decimal.Decimal
	Base  decimal.Decimal
}

// BracketTable is an ordered, contiguous list of brackets starting at zero.
type BracketTable []Bracket

// Validate checks that the table covers [0, ∞) with no gaps or overlaps:
// the first lower bound is zero, each upper bound equals the next lower
// bound, only the last bracket is unbounded, and rates are non-negative.
func (t BracketTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: table is empty", ErrInvalidBracketTable)
	}
	if !t[0].Lower.IsZero() {
		return fmt.Errorf("%w: first bracket must start at zero, got %s", ErrInvalidBracketTable, t[0].Lower)
	}
	for i, b := range t {
		if b.Rate.IsNegative() {
			return fmt.Errorf("%w: bracket %d has negative rate %s", ErrInvalidBracketTable, i, b.Rate)
		}
		if b.Base.IsNegative() {
			return fmt.Errorf("%w: bracket %d has negative base %s", ErrInvalidBracketTable, i, b.Base)
		}
		last := i == len(t)-1
		if last {
			if b.Upper != nil {
				return fmt.Errorf("%w: top bracket must be unbounded", ErrInvalidBracketTable)
			}
			continue
		}
		if b.Upper == nil {
			return fmt.Errorf("%w: bracket %d is unbounded but is not the top bracket", ErrInvalidBracketTable, i)
		}
		if !b.Upper.GreaterThan(b.Lower) {
			return fmt.Errorf("%w: bracket %d upper bound %s not above lower bound %s", ErrInvalidBracketTable, i, b.Upper, b.Lower)
		}
		if !t[i+1].Lower.Equal(*b.Upper) {
			return fmt.Errorf("%w: gap between bracket %d upper bound %s and bracket %d lower bound %s",
				ErrInvalidBracketTable, i, b.Upper, i+1, t[i+1].Lower)
		}
	}
	return nil
}

// Tax returns the fortnightly PAYE for the given gross earnings. Earnings
// equal to an upper bound fall into the next bracket; the two formulations
// agree at the boundary because each base amount is the cumulative tax at
// its lower bound.
func (t BracketTable) Tax(gross decimal.Decimal) (decimal.Decimal, error) {
	if gross.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: gross %s is negative", ErrNoBracketMatchesEarnings, gross)
	}
	for i, b := range t {
		last := i == len(t)-1
		if gross.GreaterThanOrEqual(b.Lower) && (last || gross.LessThan(*b.Upper)) {
			return b.Base.Add(b.Rate.Mul(gross.Sub(b.Lower))), nil
		}
	}
	return decimal.Zero, fmt.Errorf("%w: gross %s", ErrNoBracketMatchesEarnings, gross)
}
