package goal

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
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type mockGoalContributor struct {
	mock.Mock
}

func (m *mockGoalContributor) Contribute(ctx context.Context, callerID, id uuid.UUID, amount decimal.Decimal) (*service.Goal, error) {
	args := m.Called(ctx, callerID, id, amount)
	g, _ := args.Get(0).(*service.Goal)
	return g, args.Error(1)
}

func identityMiddleware(identity *auth.Identity) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if identity != nil {
			ctx = auth.WithHumaIdentity(ctx, identity)
		}
		next(ctx)
	}
}

func newContributeTestAPI(t *testing.T, svc goalContributor, identity *auth.Identity) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(identityMiddleware(identity))
	NewContributeGoalHandler(svc).Register(api)
	return api
}

func testIdentity() *auth.Identity {
	return &auth.Identity{ID: uuid.Must(uuid.NewV4()), Role: sqlconfig.RoleUser}
}

func TestHTTP_ContributeGoal_Success(t *testing.T) {
	caller := testIdentity()
	goalID := uuid.Must(uuid.NewV4())
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockGoalContributor)
	mockSvc.On("Contribute", mock.Anything, caller.ID, goalID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("75.25"))
	})).Return(&service.Goal{
		ID:            goalID,
		UserID:        caller.ID,
		TargetAmount:  decimal.RequireFromString("1000"),
		CurrentAmount: decimal.RequireFromString("275.25"),
		Currency:      "USD",
		StartDate:     now,
		EndDate:       now.AddDate(1, 0, 0),
		Category:      "vacation",
		Description:   "No description",
		CreatedAt:     now,
	}, nil)

	resp := newContributeTestAPI(t, mockSvc, caller).
		Patch("/api/goals/"+goalID.String(), ContributeGoalBody{SavingsAmount: "75.25"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Goal
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "275.25", body.CurrentAmount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ContributeGoal_InvalidID(t *testing.T) {
	mockSvc := new(mockGoalContributor)

	resp := newContributeTestAPI(t, mockSvc, testIdentity()).
		Patch("/api/goals/not-a-uuid", ContributeGoalBody{SavingsAmount: "10"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Contribute")
}

func TestHTTP_ContributeGoal_InvalidAmount(t *testing.T) {
	mockSvc := new(mockGoalContributor)

	resp := newContributeTestAPI(t, mockSvc, testIdentity()).
		Patch("/api/goals/"+uuid.Must(uuid.NewV4()).String(), ContributeGoalBody{SavingsAmount: "ten"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Contribute")
}

func TestHTTP_ContributeGoal_NotFound(t *testing.T) {
	mockSvc := new(mockGoalContributor)
	mockSvc.On("Contribute", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, service.ErrNotFound)

	resp := newContributeTestAPI(t, mockSvc, testIdentity()).
		Patch("/api/goals/"+uuid.Must(uuid.NewV4()).String(), ContributeGoalBody{SavingsAmount: "10"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_ContributeGoal_OtherOwner(t *testing.T) {
	mockSvc := new(mockGoalContributor)
	mockSvc.On("Contribute", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, service.ErrForbidden)

	resp := newContributeTestAPI(t, mockSvc, testIdentity()).
		Patch("/api/goals/"+uuid.Must(uuid.NewV4()).String(), ContributeGoalBody{SavingsAmount: "10"})

	assert.Equal(t, http.StatusForbidden, resp.Code)
}
