package finance

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrPercentOutOfRange is returned when a savings percentage is outside [0, 100].
var ErrPercentOutOfRange = errors.New("savings percentage must be between 0 and 100")

// AllocateSavings computes the portion of an income amount to put toward a
// goal: income * percent / 100. The percentage comes from configuration, not
// a hidden default, so the function stays deterministic for its inputs.
func AllocateSavings(income, percent decimal.Decimal) (decimal.Decimal, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return decimal.Zero, ErrPercentOutOfRange
	}
	return income.Mul(percent).Div(hundred), nil
}
