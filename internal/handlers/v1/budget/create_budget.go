package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-server/internal/service"
)

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	Body BudgetBody
}

// CreateBudgetOutput is the Huma output for creating a budget.
type CreateBudgetOutput struct {
	Body Budget
}

// budgetCreator is the interface for creating budgets.
type budgetCreator interface {
	Create(ctx context.Context, callerID uuid.UUID, input service.BudgetInput) (*service.Budget, error)
}

// CreateBudgetHandler handles POST /api/budgets.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

// NewCreateBudgetHandler creates a new CreateBudgetHandler.
func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

// Register registers the create budget endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-budget",
		Method:        http.MethodPost,
		Path:          "/api/budgets",
		Summary:       "Create budget",
		Description:   "Creates a per-category budget for a time window.",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	caller := auth.IdentityFromContext(ctx)
	if caller == nil {
		return nil, huma.NewError(http.StatusUnauthorized, "Not authorized, no token")
	}

	svcInput, err := parseBudgetBody(input.Body)
	if err != nil {
		return nil, err
	}

	created, err := h.BudgetService.Create(ctx, caller.ID, svcInput)
	if err != nil {
		return nil, apierror.FromService(err, "failed to create budget")
	}

	return &CreateBudgetOutput{Body: fromService(created)}, nil
}
