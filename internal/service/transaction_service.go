package service

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

const defaultCurrency = "USD"

// actionProcessor runs a write action to completion. Satisfied by
// operator.OperatorDelegator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage        *storage.Storage
	processor      actionProcessor
	savingsPercent decimal.Decimal
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor actionProcessor, savingsPercent decimal.Decimal) *TransactionService {
	return &TransactionService{
		storage:        store,
		processor:      processor,
		savingsPercent: savingsPercent,
	}
}

// Create validates and records a transaction. Income referencing a goal also
// triggers the savings allocation inside the same write action.
func (s *TransactionService) Create(ctx context.Context, callerID uuid.UUID, input TransactionInput) (*Transaction, error) {
	normalized, err := validateTransactionInput(input, time.Now())
	if err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{
		Create: &sqlconfig.TransactionCreate{
			UserID:              callerID,
			Kind:                normalized.Kind,
			Category:            normalized.Category,
			Amount:              normalized.Amount,
			Currency:            normalized.Currency,
			OccurredOn:          normalized.OccurredOn,
			Tags:                normalized.Tags,
			RecurrenceFrequency: normalized.RecurrenceFrequency,
			RecurrenceEnd:       normalized.RecurrenceEnd,
			GoalID:              normalized.GoalID,
		},
		SavingsPercent: s.savingsPercent,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return transactionFromStorage(action.Created), nil
}

// List returns the caller's transactions, newest first.
func (s *TransactionService) List(ctx context.Context, callerID uuid.UUID) ([]*Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{UserID: callerID})
	if err != nil {
		return nil, err
	}

	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		result[i] = transactionFromStorage(row)
	}
	return result, nil
}

// Get fetches one owned transaction by ID.
func (s *TransactionService) Get(ctx context.Context, callerID, id uuid.UUID) (*Transaction, error) {
	row, err := s.findOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	return transactionFromStorage(row), nil
}

// Update replaces the mutable fields of an owned transaction after running
// the same validation as Create.
func (s *TransactionService) Update(ctx context.Context, callerID, id uuid.UUID, input TransactionInput) (*Transaction, error) {
	if _, err := s.findOwned(ctx, callerID, id); err != nil {
		return nil, err
	}

	normalized, err := validateTransactionInput(input, time.Now())
	if err != nil {
		return nil, err
	}

	err = s.storage.Transactions.Update(ctx, id, &sqlconfig.TransactionUpdate{
		Kind:                normalized.Kind,
		Category:            normalized.Category,
		Amount:              normalized.Amount,
		Currency:            normalized.Currency,
		OccurredOn:          normalized.OccurredOn,
		Tags:                normalized.Tags,
		RecurrenceFrequency: normalized.RecurrenceFrequency,
		RecurrenceEnd:       normalized.RecurrenceEnd,
		GoalID:              normalized.GoalID,
	})
	if err != nil {
		return nil, err
	}

	row, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return transactionFromStorage(row), nil
}

// Delete removes an owned transaction. Budgets re-aggregate spend on read,
// so there is nothing to cascade.
func (s *TransactionService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	if _, err := s.findOwned(ctx, callerID, id); err != nil {
		return err
	}
	_, err := s.storage.Transactions.Delete(ctx, id)
	return err
}

func (s *TransactionService) findOwned(ctx context.Context, callerID, id uuid.UUID) (*sqlconfig.Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
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

// validateTransactionInput enforces the transaction invariants and fills
// defaults. now is a parameter so tests can pin the future-date check.
func validateTransactionInput(input TransactionInput, now time.Time) (TransactionInput, error) {
	if !input.Kind.Valid() {
		return input, validationErrorf("kind must be income or expense")
	}
	if strings.TrimSpace(input.Category) == "" {
		return input, validationErrorf("category is required")
	}
	if !input.Amount.IsPositive() {
		return input, validationErrorf("amount must be positive")
	}
	if input.Currency == "" {
		input.Currency = defaultCurrency
	}
	if input.OccurredOn.IsZero() {
		input.OccurredOn = now
	}
	if input.OccurredOn.After(now) {
		return input, validationErrorf("transaction date cannot be in the future")
	}

	if input.IsRecurring {
		if input.RecurrenceFrequency == "" {
			return input, validationErrorf("recurrence frequency must be provided for recurring transactions")
		}
		if input.RecurrenceEnd != nil && input.OccurredOn.After(*input.RecurrenceEnd) {
			return input, validationErrorf("recurrence end date must be after the transaction date")
		}
	} else {
		// Recurrence fields are ignored on one-off transactions.
		input.RecurrenceFrequency = ""
		input.RecurrenceEnd = nil
	}

	return input, nil
}
