package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a budget record. Spend against the ceiling is never
// stored; it is re-aggregated from transactions on each read.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  string
	Amount    decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
	Alerts    bool
	Threshold int
	Currency  string
	CreatedAt time.Time
}

// BudgetCreate is the input for creating a new budget.
type BudgetCreate struct {
	UserID    uuid.UUID
	Category  string
	Amount    decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
	Alerts    bool
	Threshold int
	Currency  string
}

// BudgetUpdate replaces the mutable fields of a budget.
type BudgetUpdate struct {
	Category  string
	Amount    decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
	Alerts    bool
	Threshold int
	Currency  string
}

// IBudgetTable defines the interface for budget storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IBudgetTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Budget, error)
	Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Budget, error)
	Update(ctx context.Context, id uuid.UUID, update *BudgetUpdate) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
