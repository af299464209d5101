package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one transaction as seen by the report aggregator. The caller has
// already applied the owner/date/category/tag filter.
type Entry struct {
	Kind     Kind
	Category string
	Amount   decimal.Decimal
	Date     time.Time
}

// MonthlyTotal is one point of the spending trend series.
type MonthlyTotal struct {
	Year       int
	Month      int // 1-12
	TotalSpent decimal.Decimal
}

// CategoryTotal is one row of the expense breakdown.
type CategoryTotal struct {
	Category   string
	TotalSpent decimal.Decimal
}

// Report is the aggregate view over a filtered transaction set.
type Report struct {
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	NetSavings        decimal.Decimal
	SpendingTrends    []MonthlyTotal
	CategoryBreakdown []CategoryTotal
}

// Aggregate computes income/expense totals, net savings, the monthly trend
// series, and the per-category expense breakdown.
//
// SpendingTrends sums every matching entry regardless of kind; only
// CategoryBreakdown is expense-only. That asymmetry is deliberate and matches
// how callers consume the report.
func Aggregate(entries []Entry) Report {
	report := Report{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	type yearMonth struct {
		year  int
		month int
	}
	byMonth := make(map[yearMonth]decimal.Decimal)
	byCategory := make(map[string]decimal.Decimal)

	for _, e := range entries {
		switch e.Kind {
		case KindIncome:
			report.TotalIncome = report.TotalIncome.Add(e.Amount)
		case KindExpense:
			report.TotalExpenses = report.TotalExpenses.Add(e.Amount)
			byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
		}

		ym := yearMonth{year: e.Date.Year(), month: int(e.Date.Month())}
		byMonth[ym] = byMonth[ym].Add(e.Amount)
	}

	report.NetSavings = report.TotalIncome.Sub(report.TotalExpenses)

	report.SpendingTrends = make([]MonthlyTotal, 0, len(byMonth))
	for ym, total := range byMonth {
		report.SpendingTrends = append(report.SpendingTrends, MonthlyTotal{
			Year:       ym.year,
			Month:      ym.month,
			TotalSpent: total,
		})
	}
	sort.Slice(report.SpendingTrends, func(i, j int) bool {
		a, b := report.SpendingTrends[i], report.SpendingTrends[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Month < b.Month
	})

	report.CategoryBreakdown = make([]CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		report.CategoryBreakdown = append(report.CategoryBreakdown, CategoryTotal{
			Category:   category,
			TotalSpent: total,
		})
	}
	sort.Slice(report.CategoryBreakdown, func(i, j int) bool {
		a, b := report.CategoryBreakdown[i], report.CategoryBreakdown[j]
		if !a.TotalSpent.Equal(b.TotalSpent) {
			return a.TotalSpent.GreaterThan(b.TotalSpent)
		}
		return a.Category < b.Category
	})

	return report
}
