package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// ListBudgetsInput is the Huma input for listing budgets.
type ListBudgetsInput struct{}

// ListBudgetsResponseBody is the response body for listing budgets.
type ListBudgetsResponseBody struct {
	Budgets []Budget `json:"budgets" doc:"The caller's budgets with spend computed per budget"`
}

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	Body ListBudgetsResponseBody
}

// budgetLister is the interface for listing budgets.
type budgetLister interface {
	List(ctx context.Context, callerID uuid.UUID) ([]*service.Budget, error)
}

// ListBudgetsHandler handles GET /api/budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

// NewListBudgetsHandler creates a new ListBudgetsHandler.
func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

// Register registers the list budgets endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/api/budgets",
		Summary:     "List budgets",
		Description: "Returns the caller's budgets. Spend against each ceiling is re-aggregated from transactions.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, _ *ListBudgetsInput) (*ListBudgetsOutput, error) {
	caller := auth.IdentityFromContext(ctx)
	if caller == nil {
		return nil, huma.NewError(http.StatusUnauthorized, "Not authorized, no token")
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listBudgetsMs")
	}
	budgets, err := h.BudgetService.List(ctx, caller.ID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(err, "failed to list budgets")
	}

	if logData != nil {
		logData.AddData("budgetCount", len(budgets))
	}

	resp := ListBudgetsResponseBody{Budgets: make([]Budget, len(budgets))}
	for i, b := range budgets {
		resp.Budgets[i] = fromService(b)
	}

	return &ListBudgetsOutput{Body: resp}, nil
}
