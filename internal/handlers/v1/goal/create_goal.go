package goal

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-server/internal/service"
)

// CreateGoalBody is the request body for creating a goal.
type CreateGoalBody struct {
	TargetAmount string `json:"targetAmount" required:"true" doc:"Positive decimal savings target"`
	Currency     string `json:"currency,omitempty" doc:"Currency code, defaults to USD"`
	StartDate    string `json:"startDate" required:"true" doc:"RFC3339 window start"`
	EndDate      string `json:"endDate" required:"true" doc:"RFC3339 window end, must not precede the start"`
	Category     string `json:"category" required:"true" doc:"Category label"`
	Description  string `json:"description,omitempty" doc:"Defaults to \"No description\""`
}

// CreateGoalInput is the Huma input for creating a goal.
type CreateGoalInput struct {
	Body CreateGoalBody
}

// CreateGoalOutput is the Huma output for creating a goal.
type CreateGoalOutput struct {
	Body Goal
}

// goalCreator is the interface for creating goals.
type goalCreator interface {
	Create(ctx context.Context, callerID uuid.UUID, input service.GoalInput) (*service.Goal, error)
}

// CreateGoalHandler handles POST /api/goals.
type CreateGoalHandler struct {
	GoalService goalCreator
}

// NewCreateGoalHandler creates a new CreateGoalHandler.
func NewCreateGoalHandler(svc goalCreator) *CreateGoalHandler {
	return &CreateGoalHandler{GoalService: svc}
}

// Register registers the create goal endpoint with the Huma API.
func (h *CreateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-goal",
		Method:        http.MethodPost,
		Path:          "/api/goals",
		Summary:       "Create goal",
		Description:   "Creates a savings goal. Progress starts at zero.",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateGoalHandler) handle(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	caller := auth.IdentityFromContext(ctx)
	if caller == nil {
		return nil, huma.NewError(http.StatusUnauthorized, "Not authorized, no token")
	}

	target, err := decimal.NewFromString(input.Body.TargetAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid targetAmount", err)
	}
	start, err := time.Parse(time.RFC3339, input.Body.StartDate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
	}
	end, err := time.Parse(time.RFC3339, input.Body.EndDate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
	}

	created, err := h.GoalService.Create(ctx, caller.ID, service.GoalInput{
		TargetAmount: target,
		Currency:     input.Body.Currency,
		StartDate:    start,
		EndDate:      end,
		Category:     input.Body.Category,
		Description:  input.Body.Description,
	})
	if err != nil {
		return nil, apierror.FromService(err, "failed to create goal")
	}

	return &CreateGoalOutput{Body: fromService(created)}, nil
}
