package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BudgetStatus classifies how a budget is doing against its ceiling.
type BudgetStatus string

const (
	StatusExceeded   BudgetStatus = "exceeded"
	StatusNearLimit  BudgetStatus = "near-limit"
	StatusTrendingUp BudgetStatus = "trending-up"
	StatusOnTrack    BudgetStatus = "on-track"
)

// Recommendation is the evaluator output for a single budget.
type Recommendation struct {
	Category string
	Status   BudgetStatus
	Message  string
}

var nearLimitFraction = decimal.NewFromFloat(0.2)

// EvaluateBudget classifies a budget given the aggregated spend for its
// window and the per-month totals of recent history. First match wins:
// exceeded, then near-limit (less than 20% of the ceiling remaining), then
// trending-up (spend above the historical monthly average), else on-track.
// The caller supplies spent and pastMonthly; the evaluator does no I/O.
func EvaluateBudget(category string, amount, spent decimal.Decimal, pastMonthly []decimal.Decimal) Recommendation {
	remaining := amount.Sub(spent)

	switch {
	case spent.GreaterThanOrEqual(amount):
		return Recommendation{
			Category: category,
			Status:   StatusExceeded,
			Message: fmt.Sprintf(
				"Reduce spending! You have exceeded your %s budget by $%s. Consider increasing it.",
				category, spent.Sub(amount)),
		}
	case remaining.LessThan(amount.Mul(nearLimitFraction)):
		return Recommendation{
			Category: category,
			Status:   StatusNearLimit,
			Message:  fmt.Sprintf("Warning! Only $%s left in your %s budget.", remaining, category),
		}
	case spent.GreaterThan(monthlyAverage(pastMonthly)):
		return Recommendation{
			Category: category,
			Status:   StatusTrendingUp,
			Message: fmt.Sprintf(
				"Your spending on %s is increasing! You spent $%s this month, compared to an average of $%s in the last 3 months. Consider adjusting your budget.",
				category, spent, monthlyAverage(pastMonthly).StringFixed(2)),
		}
	default:
		return Recommendation{
			Category: category,
			Status:   StatusOnTrack,
			Message: fmt.Sprintf(
				"You are on track with your %s budget. Your average monthly spending trend is stable.",
				category),
		}
	}
}

// monthlyAverage divides the total of the given months by their count, with a
// denominator floor of 1 so an empty history averages to zero instead of
// dividing by zero.
func monthlyAverage(months []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range months {
		total = total.Add(m)
	}
	n := int64(len(months))
	if n == 0 {
		n = 1
	}
	return total.Div(decimal.NewFromInt(n))
}
