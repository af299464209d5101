package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// ErrGoalNotFound reports that the contribution target no longer exists.
var ErrGoalNotFound = errors.New("goal not found")

// ApplyGoalContribution adds savings toward a goal, capped at its target by
// the storage layer's conditional update.
type ApplyGoalContribution struct {
	GoalID uuid.UUID
	Delta  decimal.Decimal

	// Updated holds the goal after a successful Perform.
	Updated *sqlconfig.Goal

	IAction
}

func (a *ApplyGoalContribution) Perform(ctx context.Context, writer *storage.Writer) error {
	goal, err := writer.Goals.ApplyContribution(ctx, a.GoalID, a.Delta)
	if err != nil {
		return err
	}
	if goal == nil {
		return ErrGoalNotFound
	}
	a.Updated = goal
	return nil
}
