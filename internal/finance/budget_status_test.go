package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEvaluateBudget_Exceeded(t *testing.T) {
	rec := EvaluateBudget("Food", dec("100"), dec("100"), nil)

	assert.Equal(t, StatusExceeded, rec.Status)
	assert.Equal(t, "Food", rec.Category)
	assert.Contains(t, rec.Message, "exceeded your Food budget by $0")
}

func TestEvaluateBudget_ExceededWithOverage(t *testing.T) {
	rec := EvaluateBudget("Food", dec("100"), dec("130"), []decimal.Decimal{dec("200")})

	// Exceeded wins even when history would also classify as below average.
	assert.Equal(t, StatusExceeded, rec.Status)
	assert.Contains(t, rec.Message, "by $30")
}

func TestEvaluateBudget_NearLimit(t *testing.T) {
	rec := EvaluateBudget("Transport", dec("100"), dec("85"), nil)

	assert.Equal(t, StatusNearLimit, rec.Status)
	assert.Contains(t, rec.Message, "Only $15 left")
}

func TestEvaluateBudget_TrendingUp(t *testing.T) {
	rec := EvaluateBudget("Food", dec("100"), dec("50"),
		[]decimal.Decimal{dec("20"), dec("30"), dec("40")})

	assert.Equal(t, StatusTrendingUp, rec.Status)
	assert.Contains(t, rec.Message, "You spent $50")
	assert.Contains(t, rec.Message, "average of $30.00")
}

func TestEvaluateBudget_OnTrack(t *testing.T) {
	rec := EvaluateBudget("Food", dec("100"), dec("20"),
		[]decimal.Decimal{dec("30"), dec("30"), dec("30")})

	assert.Equal(t, StatusOnTrack, rec.Status)
}

func TestEvaluateBudget_EmptyHistoryAveragesToZero(t *testing.T) {
	// No history means average 0, so any positive spend below the limit
	// classifies as trending-up rather than dividing by zero.
	rec := EvaluateBudget("Food", dec("100"), dec("10"), nil)

	assert.Equal(t, StatusTrendingUp, rec.Status)
}

func TestEvaluateBudget_ZeroSpendOnTrack(t *testing.T) {
	rec := EvaluateBudget("Food", dec("100"), dec("0"), nil)

	assert.Equal(t, StatusOnTrack, rec.Status)
}

func TestMonthlyAverage(t *testing.T) {
	assert.True(t, monthlyAverage(nil).IsZero())
	assert.True(t, monthlyAverage([]decimal.Decimal{dec("10"), dec("20")}).Equal(dec("15")))
}
