package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Goal represents a savings goal in the service layer.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Currency      string
	StartDate     time.Time
	EndDate       time.Time
	Category      string
	Description   string
	CreatedAt     time.Time
}

// GoalInput carries the user-supplied fields for goal creation.
type GoalInput struct {
	TargetAmount decimal.Decimal
	Currency     string
	StartDate    time.Time
	EndDate      time.Time
	Category     string
	Description  string
}

func goalFromStorage(row *sqlconfig.Goal) *Goal {
	return &Goal{
		ID:            row.ID,
		UserID:        row.UserID,
		TargetAmount:  row.TargetAmount,
		CurrentAmount: row.CurrentAmount,
		Currency:      row.Currency,
		StartDate:     row.StartDate,
		EndDate:       row.EndDate,
		Category:      row.Category,
		Description:   row.Description,
		CreatedAt:     row.CreatedAt,
	}
}
