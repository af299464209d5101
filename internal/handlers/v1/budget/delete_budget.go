package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apierror"
)

// DeleteBudgetInput is the Huma input for deleting a budget.
type DeleteBudgetInput struct {
	ID string `path:"id" doc:"Budget UUID"`
}

// DeleteBudgetOutput is the Huma output for deleting a budget.
type DeleteBudgetOutput struct {
	Body struct {
		Message string `json:"message" doc:"Confirmation message"`
	}
}

// budgetDeleter is the interface for deleting budgets.
type budgetDeleter interface {
	Delete(ctx context.Context, callerID, id uuid.UUID) error
}

// DeleteBudgetHandler handles DELETE /api/budgets/{id}.
type DeleteBudgetHandler struct {
	BudgetService budgetDeleter
}

// NewDeleteBudgetHandler creates a new DeleteBudgetHandler.
func NewDeleteBudgetHandler(svc budgetDeleter) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{BudgetService: svc}
}

// Register registers the delete budget endpoint with the Huma API.
func (h *DeleteBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-budget",
		Method:      http.MethodDelete,
		Path:        "/api/budgets/{id}",
		Summary:     "Delete budget",
		Description: "Deletes one of the caller's budgets.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *DeleteBudgetInput) (*DeleteBudgetOutput, error) {
	caller := auth.IdentityFromContext(ctx)
	if caller == nil {
		return nil, huma.NewError(http.StatusUnauthorized, "Not authorized, no token")
	}

	id, err := parseBudgetID(input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.BudgetService.Delete(ctx, caller.ID, id); err != nil {
		return nil, apierror.FromService(err, "failed to delete budget")
	}

	out := &DeleteBudgetOutput{}
	out.Body.Message = "Budget deleted"
	return out, nil
}
