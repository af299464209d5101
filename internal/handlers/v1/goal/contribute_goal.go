package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-server/internal/service"
)

// ContributeGoalBody is the request body for applying a contribution.
type ContributeGoalBody struct {
	SavingsAmount string `json:"savingsAmount" required:"true" doc:"Non-negative decimal amount to add, capped at the target"`
}

// ContributeGoalInput is the Huma input for applying a contribution.
type ContributeGoalInput struct {
	GoalID string `path:"goalId" doc:"Goal UUID"`
	Body   ContributeGoalBody
}

// ContributeGoalOutput is the Huma output for applying a contribution.
type ContributeGoalOutput struct {
	Body Goal
}

// goalContributor is the interface for applying contributions.
type goalContributor interface {
	Contribute(ctx context.Context, callerID, id uuid.UUID, amount decimal.Decimal) (*service.Goal, error)
}

// ContributeGoalHandler handles PATCH /api/goals/{goalId}.
type ContributeGoalHandler struct {
	GoalService goalContributor
}

// NewContributeGoalHandler creates a new ContributeGoalHandler.
func NewContributeGoalHandler(svc goalContributor) *ContributeGoalHandler {
	return &ContributeGoalHandler{GoalService: svc}
}

// Register registers the contribute endpoint with the Huma API.
func (h *ContributeGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "contribute-goal",
		Method:      http.MethodPatch,
		Path:        "/api/goals/{goalId}",
		Summary:     "Contribute to goal",
		Description: "Adds savings toward a goal. Progress never exceeds the target.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *ContributeGoalHandler) handle(ctx context.Context, input *ContributeGoalInput) (*ContributeGoalOutput, error) {
	caller := auth.IdentityFromContext(ctx)
	if caller == nil {
		return nil, huma.NewError(http.StatusUnauthorized, "Not authorized, no token")
	}

	id, err := parseGoalID(input.GoalID)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(input.Body.SavingsAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid savingsAmount", err)
	}

	updated, err := h.GoalService.Contribute(ctx, caller.ID, id, amount)
	if err != nil {
		return nil, apierror.FromService(err, "failed to apply contribution")
	}

	return &ContributeGoalOutput{Body: fromService(updated)}, nil
}
