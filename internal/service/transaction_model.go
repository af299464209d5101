package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Kind                finance.Kind
	Category            string
	Amount              decimal.Decimal
	Currency            string
	OccurredOn          time.Time
	Tags                []string
	RecurrenceFrequency finance.Frequency
	RecurrenceEnd       *time.Time
	GoalID              *uuid.UUID
	CreatedAt           time.Time
}

// NextOccurrence derives the next occurrence date for a recurring
// transaction. Nil for one-off transactions or once the recurrence end has
// passed. Computed on demand; never persisted.
func (t *Transaction) NextOccurrence() *time.Time {
	return finance.NextOccurrence(t.OccurredOn, t.RecurrenceFrequency, t.RecurrenceEnd)
}

// TransactionInput carries the user-supplied fields for create and update.
type TransactionInput struct {
	Kind                finance.Kind
	Category            string
	Amount              decimal.Decimal
	Currency            string
	OccurredOn          time.Time
	Tags                []string
	IsRecurring         bool
	RecurrenceFrequency finance.Frequency
	RecurrenceEnd       *time.Time
	GoalID              *uuid.UUID
}

func transactionFromStorage(row *sqlconfig.Transaction) *Transaction {
	return &Transaction{
		ID:                  row.ID,
		UserID:              row.UserID,
		Kind:                row.Kind,
		Category:            row.Category,
		Amount:              row.Amount,
		Currency:            row.Currency,
		OccurredOn:          row.OccurredOn,
		Tags:                row.Tags,
		RecurrenceFrequency: row.RecurrenceFrequency,
		RecurrenceEnd:       row.RecurrenceEnd,
		GoalID:              row.GoalID,
		CreatedAt:           row.CreatedAt,
	}
}
