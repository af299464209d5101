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

// UpdateBudgetInput is the Huma input for replacing a budget.
type UpdateBudgetInput struct {
	ID   string `path:"id" doc:"Budget UUID"`
	Body BudgetBody
}

// UpdateBudgetOutput is the Huma output for replacing a budget.
type UpdateBudgetOutput struct {
	Body Budget
}

// budgetUpdater is the interface for replacing budgets.
type budgetUpdater interface {
	Update(ctx context.Context, callerID, id uuid.UUID, input service.BudgetInput) (*service.Budget, error)
}

// UpdateBudgetHandler handles PUT /api/budgets/{id}.
type UpdateBudgetHandler struct {
	BudgetService budgetUpdater
}

// NewUpdateBudgetHandler creates a new UpdateBudgetHandler.
func NewUpdateBudgetHandler(svc budgetUpdater) *UpdateBudgetHandler {
	return &UpdateBudgetHandler{BudgetService: svc}
}

// Register registers the update budget endpoint with the Huma API.
func (h *UpdateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPut,
		Path:        "/api/budgets/{id}",
		Summary:     "Update budget",
		Description: "Replaces the mutable fields of one of the caller's budgets.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *UpdateBudgetHandler) handle(ctx context.Context, input *UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	caller := auth.IdentityFromContext(ctx)
	if caller == nil {
		return nil, huma.NewError(http.StatusUnauthorized, "Not authorized, no token")
	}

	id, err := parseBudgetID(input.ID)
	if err != nil {
		return nil, err
	}

	svcInput, err := parseBudgetBody(input.Body)
	if err != nil {
		return nil, err
	}

	updated, err := h.BudgetService.Update(ctx, caller.ID, id, svcInput)
	if err != nil {
		return nil, apierror.FromService(err, "failed to update budget")
	}

	return &UpdateBudgetOutput{Body: fromService(updated)}, nil
}
