package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

func newTestBudgetService(t *testing.T) (*BudgetService, *sqlconfig.MockIBudgetTable, *sqlconfig.MockITransactionTable) {
	t.Helper()
	mockBudgets := sqlconfig.NewMockIBudgetTable(t)
	mockTxs := sqlconfig.NewMockITransactionTable(t)
	store := &storage.Storage{Budgets: mockBudgets, Transactions: mockTxs}
	return NewBudgetService(store), mockBudgets, mockTxs
}

// -- Create tests --

func TestCreateBudget_Defaults(t *testing.T) {
	svc, mockBudgets, mockTxs := newTestBudgetService(t)

	callerID := uuid.Must(uuid.NewV4())
	newID := uuid.Must(uuid.NewV4())
	start := date(2026, time.March, 1)
	end := date(2026, time.March, 31)

	mockBudgets.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.BudgetCreate) bool {
		return c.UserID == callerID &&
			c.Alerts == true &&
			c.Threshold == 80 &&
			c.Currency == "USD"
	})).Return(newID, nil)
	mockBudgets.EXPECT().FindByID(mock.Anything, newID).Return(&sqlconfig.Budget{
		ID:        newID,
		UserID:    callerID,
		Category:  "groceries",
		Amount:    dec("300"),
		StartDate: start,
		EndDate:   end,
		Alerts:    true,
		Threshold: 80,
		Currency:  "USD",
	}, nil)
	mockTxs.EXPECT().SumInWindow(mock.Anything, callerID, "groceries", start, end).
		Return(dec("0"), nil)

	budget, err := svc.Create(context.Background(), callerID, BudgetInput{
		Category:  "groceries",
		Amount:    dec("300"),
		StartDate: start,
		EndDate:   end,
	})

	assert.NoError(t, err)
	assert.Equal(t, newID, budget.ID)
	assert.True(t, budget.SpentAmount.IsZero())
}

func TestCreateBudget_Validation(t *testing.T) {
	svc, _, _ := newTestBudgetService(t)

	callerID := uuid.Must(uuid.NewV4())
	start := date(2026, time.March, 1)
	end := date(2026, time.March, 31)
	badThreshold := 150

	tests := []struct {
		name  string
		input BudgetInput
	}{
		{"missing category", BudgetInput{Amount: dec("10"), StartDate: start, EndDate: end}},
		{"zero amount", BudgetInput{Category: "x", Amount: dec("0"), StartDate: start, EndDate: end}},
		{"missing dates", BudgetInput{Category: "x", Amount: dec("10")}},
		{"inverted window", BudgetInput{Category: "x", Amount: dec("10"), StartDate: end, EndDate: start}},
		{"threshold out of range", BudgetInput{Category: "x", Amount: dec("10"), StartDate: start, EndDate: end, Threshold: &badThreshold}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), callerID, tt.input)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

// -- List tests --

func TestListBudgets_ComputesSpendPerBudget(t *testing.T) {
	svc, mockBudgets, mockTxs := newTestBudgetService(t)

	callerID := uuid.Must(uuid.NewV4())
	start := date(2026, time.March, 1)
	end := date(2026, time.March, 31)
	rows := []*sqlconfig.Budget{
		{ID: uuid.Must(uuid.NewV4()), UserID: callerID, Category: "groceries", Amount: dec("300"), StartDate: start, EndDate: end, Threshold: 80},
		{ID: uuid.Must(uuid.NewV4()), UserID: callerID, Category: "travel", Amount: dec("500"), StartDate: start, EndDate: end, Threshold: 80},
	}

	mockBudgets.EXPECT().ListByUser(mock.Anything, callerID).Return(rows, nil)
	mockTxs.EXPECT().SumInWindow(mock.Anything, callerID, "groceries", start, end).Return(dec("120.50"), nil)
	mockTxs.EXPECT().SumInWindow(mock.Anything, callerID, "travel", start, end).Return(dec("0"), nil)

	budgets, err := svc.List(context.Background(), callerID)

	assert.NoError(t, err)
	assert.Len(t, budgets, 2)
	assert.True(t, budgets[0].SpentAmount.Equal(dec("120.50")))
	assert.True(t, budgets[1].SpentAmount.IsZero())
}

// -- Update / Delete tests --

func TestUpdateBudget_OtherOwner(t *testing.T) {
	svc, mockBudgets, _ := newTestBudgetService(t)

	budgetID := uuid.Must(uuid.NewV4())
	mockBudgets.EXPECT().FindByID(mock.Anything, budgetID).Return(&sqlconfig.Budget{
		ID:     budgetID,
		UserID: uuid.Must(uuid.NewV4()),
	}, nil)

	_, err := svc.Update(context.Background(), uuid.Must(uuid.NewV4()), budgetID, BudgetInput{
		Category:  "x",
		Amount:    dec("10"),
		StartDate: date(2026, time.March, 1),
		EndDate:   date(2026, time.March, 31),
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteBudget_Success(t *testing.T) {
	svc, mockBudgets, _ := newTestBudgetService(t)

	callerID := uuid.Must(uuid.NewV4())
	budgetID := uuid.Must(uuid.NewV4())
	mockBudgets.EXPECT().FindByID(mock.Anything, budgetID).Return(&sqlconfig.Budget{
		ID:     budgetID,
		UserID: callerID,
	}, nil)
	mockBudgets.EXPECT().Delete(mock.Anything, budgetID).Return(true, nil)

	err := svc.Delete(context.Background(), callerID, budgetID)
	assert.NoError(t, err)
}

func TestDeleteBudget_NotFound(t *testing.T) {
	svc, mockBudgets, _ := newTestBudgetService(t)

	budgetID := uuid.Must(uuid.NewV4())
	mockBudgets.EXPECT().FindByID(mock.Anything, budgetID).Return(nil, nil)

	err := svc.Delete(context.Background(), uuid.Must(uuid.NewV4()), budgetID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// -- Recommendations tests --

func TestRecommendations_PerBudgetStatus(t *testing.T) {
	svc, mockBudgets, mockTxs := newTestBudgetService(t)

	callerID := uuid.Must(uuid.NewV4())
	start := date(2026, time.March, 1)
	end := date(2026, time.March, 31)
	exceeded := &sqlconfig.Budget{ID: uuid.Must(uuid.NewV4()), UserID: callerID, Category: "dining", Amount: dec("100"), StartDate: start, EndDate: end}
	onTrack := &sqlconfig.Budget{ID: uuid.Must(uuid.NewV4()), UserID: callerID, Category: "travel", Amount: dec("100"), StartDate: start, EndDate: end}

	mockBudgets.EXPECT().ListByUser(mock.Anything, callerID).
		Return([]*sqlconfig.Budget{exceeded, onTrack}, nil)
	mockTxs.EXPECT().SumInWindow(mock.Anything, callerID, "dining", start, end).Return(dec("130"), nil)
	mockTxs.EXPECT().SumInWindow(mock.Anything, callerID, "travel", start, end).Return(dec("20"), nil)
	mockTxs.EXPECT().MonthlyTotals(mock.Anything, callerID, "dining", mock.Anything).
		Return([]sqlconfig.MonthlyTotal{{Year: 2026, Month: 1, Total: dec("90")}}, nil)
	mockTxs.EXPECT().MonthlyTotals(mock.Anything, callerID, "travel", mock.Anything).
		Return([]sqlconfig.MonthlyTotal{{Year: 2026, Month: 1, Total: dec("30")}}, nil)

	recs, err := svc.Recommendations(context.Background(), callerID)

	assert.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, exceeded.ID, recs[0].BudgetID)
	assert.Equal(t, finance.StatusExceeded, recs[0].Status)
	assert.Equal(t, finance.StatusOnTrack, recs[1].Status)
}

func TestRecommendations_NoBudgets(t *testing.T) {
	svc, mockBudgets, _ := newTestBudgetService(t)

	callerID := uuid.Must(uuid.NewV4())
	mockBudgets.EXPECT().ListByUser(mock.Anything, callerID).Return([]*sqlconfig.Budget{}, nil)

	recs, err := svc.Recommendations(context.Background(), callerID)

	assert.NoError(t, err)
	assert.Empty(t, recs)
}
