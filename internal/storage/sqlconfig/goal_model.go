package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal record. CurrentAmount only moves through
// ApplyContribution, which caps it at TargetAmount in a single statement.
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

// GoalCreate is the input for creating a new goal.
type GoalCreate struct {
	UserID       uuid.UUID
	TargetAmount decimal.Decimal
	Currency     string
	StartDate    time.Time
	EndDate      time.Time
	Category     string
	Description  string
}

// IGoalTable defines the interface for goal storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IGoalTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Goal, error)
	Insert(ctx context.Context, create *GoalCreate) (uuid.UUID, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Goal, error)
	ApplyContribution(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*Goal, error)
}
