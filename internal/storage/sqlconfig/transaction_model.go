package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/finance"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Kind                finance.Kind
	Category            string
	Amount              decimal.Decimal
	Currency            string
	OccurredOn          time.Time
	Tags                []string
	RecurrenceFrequency finance.Frequency // empty when not recurring
	RecurrenceEnd       *time.Time
	GoalID              *uuid.UUID
	CreatedAt           time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
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
}

// TransactionUpdate replaces the mutable fields of a transaction.
type TransactionUpdate struct {
	Kind                finance.Kind
	Category            string
	Amount              decimal.Decimal
	Currency            string
	OccurredOn          time.Time
	Tags                []string
	RecurrenceFrequency finance.Frequency
	RecurrenceEnd       *time.Time
	GoalID              *uuid.UUID
}

// TransactionFilter bounds a transaction listing. UserID is mandatory; the
// rest narrow the match. Tags use any-of semantics.
type TransactionFilter struct {
	UserID   uuid.UUID
	From     *time.Time
	To       *time.Time
	Category *string
	Tags     []string
}

// MonthlyTotal is one month's summed amount for a category.
type MonthlyTotal struct {
	Year  int
	Month int
	Total decimal.Decimal
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	SumInWindow(ctx context.Context, userID uuid.UUID, category string, start, end time.Time) (decimal.Decimal, error)
	MonthlyTotals(ctx context.Context, userID uuid.UUID, category string, since time.Time) ([]MonthlyTotal, error)
}
