package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type mockTransactionCreator struct {
	mock.Mock
}

func (m *mockTransactionCreator) Create(ctx context.Context, callerID uuid.UUID, input service.TransactionInput) (*service.Transaction, error) {
	args := m.Called(ctx, callerID, input)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

// identityMiddleware injects a fixed caller, standing in for the auth
// middleware the real route table runs.
func identityMiddleware(identity *auth.Identity) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if identity != nil {
			ctx = auth.WithHumaIdentity(ctx, identity)
		}
		next(ctx)
	}
}

func newCreateTestAPI(t *testing.T, svc transactionCreator, identity *auth.Identity) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(identityMiddleware(identity))
	NewCreateTransactionHandler(svc).Register(api)
	return api
}

func testIdentity() *auth.Identity {
	return &auth.Identity{ID: uuid.Must(uuid.NewV4()), Role: sqlconfig.RoleUser}
}

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	caller := testIdentity()
	txID := uuid.Must(uuid.NewV4())
	occurred := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionCreator)
	mockSvc.On("Create", mock.Anything, caller.ID, mock.MatchedBy(func(in service.TransactionInput) bool {
		return in.Kind == finance.KindExpense &&
			in.Category == "groceries" &&
			in.Amount.Equal(decimal.RequireFromString("42.50"))
	})).Return(&service.Transaction{
		ID:         txID,
		UserID:     caller.ID,
		Kind:       finance.KindExpense,
		Category:   "groceries",
		Amount:     decimal.RequireFromString("42.50"),
		Currency:   "USD",
		OccurredOn: occurred,
	}, nil)

	resp := newCreateTestAPI(t, mockSvc, caller).Post("/api/transactions", TransactionBody{
		Kind:       "expense",
		Category:   "groceries",
		Amount:     "42.50",
		OccurredOn: occurred.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	assert.Equal(t, "42.5", body.Amount)
	assert.Nil(t, body.NextOccurrence)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_RecurringResponseCarriesNextOccurrence(t *testing.T) {
	caller := testIdentity()
	occurred := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionCreator)
	mockSvc.On("Create", mock.Anything, caller.ID, mock.Anything).Return(&service.Transaction{
		ID:                  uuid.Must(uuid.NewV4()),
		UserID:              caller.ID,
		Kind:                finance.KindExpense,
		Category:            "rent",
		Amount:              decimal.RequireFromString("900"),
		OccurredOn:          occurred,
		RecurrenceFrequency: finance.FrequencyMonthly,
	}, nil)

	resp := newCreateTestAPI(t, mockSvc, caller).Post("/api/transactions", TransactionBody{
		Kind:                "expense",
		Category:            "rent",
		Amount:              "900",
		OccurredOn:          occurred.Format(time.RFC3339),
		IsRecurring:         true,
		RecurrenceFrequency: "monthly",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.IsRecurring)
	assert.NotNil(t, body.NextOccurrence)
	assert.Equal(t, "2026-02-15T00:00:00Z", *body.NextOccurrence)
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	resp := newCreateTestAPI(t, mockSvc, testIdentity()).Post("/api/transactions", TransactionBody{
		Kind:     "expense",
		Category: "groceries",
		Amount:   "not-a-number",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_ServiceValidation(t *testing.T) {
	mockSvc := new(mockTransactionCreator)
	mockSvc.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, service.ErrValidation)

	resp := newCreateTestAPI(t, mockSvc, testIdentity()).Post("/api/transactions", TransactionBody{
		Kind:     "expense",
		Category: "groceries",
		Amount:   "10",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateTransaction_NoIdentity(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	resp := newCreateTestAPI(t, mockSvc, nil).Post("/api/transactions", TransactionBody{
		Kind:     "expense",
		Category: "groceries",
		Amount:   "10",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}
