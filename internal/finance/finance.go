// Package finance holds the pure derivation logic of the service: savings
// allocation, recurrence dates, budget status classification, and report
// aggregation. Nothing in this package touches storage or HTTP.
package finance

import "github.com/shopspring/decimal"

// Kind distinguishes money coming in from money going out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether the kind is one of the two known values.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

var hundred = decimal.NewFromInt(100)
