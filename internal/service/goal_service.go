package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

const defaultGoalDescription = "No description"

// GoalService handles savings goal business logic. Contributions run through
// the write operator so the capped update happens inside one transaction.
type GoalService struct {
	storage   *storage.Storage
	processor actionProcessor
}

// NewGoalService creates a new GoalService.
func NewGoalService(store *storage.Storage, processor actionProcessor) *GoalService {
	return &GoalService{storage: store, processor: processor}
}

// Create validates and stores a goal. CurrentAmount always starts at zero.
func (s *GoalService) Create(ctx context.Context, callerID uuid.UUID, input GoalInput) (*Goal, error) {
	normalized, err := validateGoalInput(input)
	if err != nil {
		return nil, err
	}

	id, err := s.storage.Goals.Insert(ctx, &sqlconfig.GoalCreate{
		UserID:       callerID,
		TargetAmount: normalized.TargetAmount,
		Currency:     normalized.Currency,
		StartDate:    normalized.StartDate,
		EndDate:      normalized.EndDate,
		Category:     normalized.Category,
		Description:  normalized.Description,
	})
	if err != nil {
		return nil, err
	}

	row, err := s.storage.Goals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return goalFromStorage(row), nil
}

// List returns the caller's goals.
func (s *GoalService) List(ctx context.Context, callerID uuid.UUID) ([]*Goal, error) {
	rows, err := s.storage.Goals.ListByUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	result := make([]*Goal, len(rows))
	for i, row := range rows {
		result[i] = goalFromStorage(row)
	}
	return result, nil
}

// Contribute applies a savings amount toward an owned goal, capped at the
// target. Unlike the allocation triggered by income transactions, a missing
// goal here is a hard 404.
func (s *GoalService) Contribute(ctx context.Context, callerID, id uuid.UUID, amount decimal.Decimal) (*Goal, error) {
	if amount.IsNegative() {
		return nil, validationErrorf("savings amount must not be negative")
	}

	if _, err := s.findOwned(ctx, callerID, id); err != nil {
		return nil, err
	}

	action := &actions.ApplyGoalContribution{GoalID: id, Delta: amount}
	if err := s.processor.Process(ctx, action); err != nil {
		if errors.Is(err, actions.ErrGoalNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return goalFromStorage(action.Updated), nil
}

func (s *GoalService) findOwned(ctx context.Context, callerID, id uuid.UUID) (*sqlconfig.Goal, error) {
	row, err := s.storage.Goals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	if row.UserID != callerID {
		return nil, ErrForbidden
	}
	return row, nil
}

func validateGoalInput(input GoalInput) (GoalInput, error) {
	if !input.TargetAmount.IsPositive() {
		return input, validationErrorf("target amount must be positive")
	}
	if strings.TrimSpace(input.Category) == "" {
		return input, validationErrorf("category is required")
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return input, validationErrorf("start and end dates are required")
	}
	if input.StartDate.After(input.EndDate) {
		return input, validationErrorf("start date must be before end date")
	}
	if input.Currency == "" {
		input.Currency = defaultCurrency
	}
	if strings.TrimSpace(input.Description) == "" {
		input.Description = defaultGoalDescription
	}
	return input, nil
}
