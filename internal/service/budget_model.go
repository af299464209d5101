package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Budget represents a budget in the service layer. SpentAmount is aggregated
// from transactions on every read and is never stored.
type Budget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Category    string
	Amount      decimal.Decimal
	SpentAmount decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
	Alerts      bool
	Threshold   int
	Currency    string
	CreatedAt   time.Time
}

// BudgetInput carries the user-supplied fields for create and update.
// Alerts defaults to true and Threshold to 80 when omitted.
type BudgetInput struct {
	Category  string
	Amount    decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
	Alerts    *bool
	Threshold *int
	Currency  string
}

// BudgetRecommendation pairs a budget with its evaluated status.
type BudgetRecommendation struct {
	BudgetID uuid.UUID
	Category string
	Status   finance.BudgetStatus
	Message  string
}

func budgetFromStorage(row *sqlconfig.Budget, spent decimal.Decimal) *Budget {
	return &Budget{
		ID:          row.ID,
		UserID:      row.UserID,
		Category:    row.Category,
		Amount:      row.Amount,
		SpentAmount: spent,
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
		Alerts:      row.Alerts,
		Threshold:   row.Threshold,
		Currency:    row.Currency,
		CreatedAt:   row.CreatedAt,
	}
}
