package service

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

const (
	defaultBudgetThreshold = 80
	// Recommendations look back this far for the trend comparison.
	trendLookbackMonths = 3
)

// BudgetService handles budget business logic. Spend against each budget is
// re-aggregated from transactions on every read.
type BudgetService struct {
	storage *storage.Storage
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage) *BudgetService {
	return &BudgetService{storage: store}
}

// Create validates and stores a budget, returning it with zero spend unless
// matching transactions already exist in its window.
func (s *BudgetService) Create(ctx context.Context, callerID uuid.UUID, input BudgetInput) (*Budget, error) {
	normalized, err := validateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	id, err := s.storage.Budgets.Insert(ctx, &sqlconfig.BudgetCreate{
		UserID:    callerID,
		Category:  normalized.Category,
		Amount:    normalized.Amount,
		StartDate: normalized.StartDate,
		EndDate:   normalized.EndDate,
		Alerts:    *normalized.Alerts,
		Threshold: *normalized.Threshold,
		Currency:  normalized.Currency,
	})
	if err != nil {
		return nil, err
	}

	row, err := s.storage.Budgets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return s.withSpend(ctx, row)
}

// List returns the caller's budgets with spend computed per budget. Budgets
// past their alert threshold log a warning when alerts are enabled.
func (s *BudgetService) List(ctx context.Context, callerID uuid.UUID) ([]*Budget, error) {
	rows, err := s.storage.Budgets.ListByUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	result := make([]*Budget, len(rows))
	for i, row := range rows {
		budget, err := s.withSpend(ctx, row)
		if err != nil {
			return nil, err
		}
		if budget.Alerts && overThreshold(budget) {
			logrus.WithFields(logrus.Fields{
				"budgetID":  budget.ID,
				"category":  budget.Category,
				"spent":     budget.SpentAmount,
				"amount":    budget.Amount,
				"threshold": budget.Threshold,
			}).Warn("Budget alert threshold reached")
		}
		result[i] = budget
	}
	return result, nil
}

// Update replaces the mutable fields of an owned budget.
func (s *BudgetService) Update(ctx context.Context, callerID, id uuid.UUID, input BudgetInput) (*Budget, error) {
	if _, err := s.findOwned(ctx, callerID, id); err != nil {
		return nil, err
	}

	normalized, err := validateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	err = s.storage.Budgets.Update(ctx, id, &sqlconfig.BudgetUpdate{
		Category:  normalized.Category,
		Amount:    normalized.Amount,
		StartDate: normalized.StartDate,
		EndDate:   normalized.EndDate,
		Alerts:    *normalized.Alerts,
		Threshold: *normalized.Threshold,
		Currency:  normalized.Currency,
	})
	if err != nil {
		return nil, err
	}

	row, err := s.storage.Budgets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return s.withSpend(ctx, row)
}

// Delete removes an owned budget.
func (s *BudgetService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	if _, err := s.findOwned(ctx, callerID, id); err != nil {
		return err
	}
	_, err := s.storage.Budgets.Delete(ctx, id)
	return err
}

// Recommendations evaluates every budget of the caller against its current
// spend and the past months' spending trend for its category.
func (s *BudgetService) Recommendations(ctx context.Context, callerID uuid.UUID) ([]*BudgetRecommendation, error) {
	rows, err := s.storage.Budgets.ListByUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, -trendLookbackMonths, 0)
	result := make([]*BudgetRecommendation, len(rows))
	for i, row := range rows {
		spent, err := s.storage.Transactions.SumInWindow(ctx, row.UserID, row.Category, row.StartDate, row.EndDate)
		if err != nil {
			return nil, err
		}
		totals, err := s.storage.Transactions.MonthlyTotals(ctx, row.UserID, row.Category, since)
		if err != nil {
			return nil, err
		}
		pastMonthly := make([]decimal.Decimal, len(totals))
		for j, total := range totals {
			pastMonthly[j] = total.Total
		}

		rec := finance.EvaluateBudget(row.Category, row.Amount, spent, pastMonthly)
		result[i] = &BudgetRecommendation{
			BudgetID: row.ID,
			Category: rec.Category,
			Status:   rec.Status,
			Message:  rec.Message,
		}
	}
	return result, nil
}

func (s *BudgetService) withSpend(ctx context.Context, row *sqlconfig.Budget) (*Budget, error) {
	spent, err := s.storage.Transactions.SumInWindow(ctx, row.UserID, row.Category, row.StartDate, row.EndDate)
	if err != nil {
		return nil, err
	}
	return budgetFromStorage(row, spent), nil
}

func (s *BudgetService) findOwned(ctx context.Context, callerID, id uuid.UUID) (*sqlconfig.Budget, error) {
	row, err := s.storage.Budgets.FindByID(ctx, id)
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

func overThreshold(budget *Budget) bool {
	if !budget.Amount.IsPositive() {
		return true
	}
	used := budget.SpentAmount.Div(budget.Amount).Mul(decimal.NewFromInt(100))
	return used.GreaterThanOrEqual(decimal.NewFromInt(int64(budget.Threshold)))
}

func validateBudgetInput(input BudgetInput) (BudgetInput, error) {
	if strings.TrimSpace(input.Category) == "" {
		return input, validationErrorf("category is required")
	}
	if !input.Amount.IsPositive() {
		return input, validationErrorf("amount must be positive")
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return input, validationErrorf("start and end dates are required")
	}
	if input.StartDate.After(input.EndDate) {
		return input, validationErrorf("start date must be before end date")
	}
	if input.Alerts == nil {
		alerts := true
		input.Alerts = &alerts
	}
	if input.Threshold == nil {
		threshold := defaultBudgetThreshold
		input.Threshold = &threshold
	} else if *input.Threshold < 0 || *input.Threshold > 100 {
		return input, validationErrorf("threshold must be between 0 and 100")
	}
	if input.Currency == "" {
		input.Currency = defaultCurrency
	}
	return input, nil
}
