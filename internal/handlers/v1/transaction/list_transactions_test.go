package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/service"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) List(ctx context.Context, callerID uuid.UUID) ([]*service.Transaction, error) {
	args := m.Called(ctx, callerID)
	txs, _ := args.Get(0).([]*service.Transaction)
	return txs, args.Error(1)
}

func newListTestAPI(t *testing.T, svc transactionLister, identity *auth.Identity) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(identityMiddleware(identity))
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListTransactions(t *testing.T) {
	caller := testIdentity()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	goalID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionLister)
	mockSvc.On("List", mock.Anything, caller.ID).Return([]*service.Transaction{
		{
			ID:         uuid.Must(uuid.NewV4()),
			UserID:     caller.ID,
			Kind:       finance.KindIncome,
			Category:   "salary",
			Amount:     decimal.RequireFromString("2000"),
			Currency:   "USD",
			OccurredOn: now,
			GoalID:     &goalID,
			CreatedAt:  now,
		},
		{
			ID:         uuid.Must(uuid.NewV4()),
			UserID:     caller.ID,
			Kind:       finance.KindExpense,
			Category:   "groceries",
			Amount:     decimal.RequireFromString("55.20"),
			Currency:   "USD",
			OccurredOn: now.AddDate(0, 0, -1),
			Tags:       []string{"essential"},
			CreatedAt:  now,
		},
	}, nil)

	resp := newListTestAPI(t, mockSvc, caller).Get("/api/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 2)
	assert.Equal(t, "income", body.Transactions[0].Kind)
	assert.Equal(t, goalID.String(), body.Transactions[0].GoalID)
	assert.Equal(t, []string{"essential"}, body.Transactions[1].Tags)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_Empty(t *testing.T) {
	caller := testIdentity()

	mockSvc := new(mockTransactionLister)
	mockSvc.On("List", mock.Anything, caller.ID).Return(([]*service.Transaction)(nil), nil)

	resp := newListTestAPI(t, mockSvc, caller).Get("/api/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	caller := testIdentity()

	mockSvc := new(mockTransactionLister)
	mockSvc.On("List", mock.Anything, caller.ID).
		Return(([]*service.Transaction)(nil), errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc, caller).Get("/api/transactions")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_ListTransactions_NoIdentity(t *testing.T) {
	mockSvc := new(mockTransactionLister)

	resp := newListTestAPI(t, mockSvc, nil).Get("/api/transactions")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "List")
}
