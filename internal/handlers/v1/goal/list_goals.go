package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-server/internal/service"
)

// ListGoalsInput is the Huma input for listing goals.
type ListGoalsInput struct{}

// ListGoalsResponseBody is the response body for listing goals.
type ListGoalsResponseBody struct {
	Goals []Goal `json:"goals" doc:"The caller's goals"`
}

// ListGoalsOutput is the Huma output for listing goals.
type ListGoalsOutput struct {
	Body ListGoalsResponseBody
}

// goalLister is the interface for listing goals.
type goalLister interface {
	List(ctx context.Context, callerID uuid.UUID) ([]*service.Goal, error)
}

// ListGoalsHandler handles GET /api/goals.
type ListGoalsHandler struct {
	GoalService goalLister
}

// NewListGoalsHandler creates a new ListGoalsHandler.
func NewListGoalsHandler(svc goalLister) *ListGoalsHandler {
	return &ListGoalsHandler{GoalService: svc}
}

// Register registers the list goals endpoint with the Huma API.
func (h *ListGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goals",
		Method:      http.MethodGet,
		Path:        "/api/goals",
		Summary:     "List goals",
		Description: "Returns all of the caller's savings goals.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *ListGoalsHandler) handle(ctx context.Context, _ *ListGoalsInput) (*ListGoalsOutput, error) {
	caller := auth.IdentityFromContext(ctx)
	if caller == nil {
		return nil, huma.NewError(http.StatusUnauthorized, "Not authorized, no token")
	}

	goals, err := h.GoalService.List(ctx, caller.ID)
	if err != nil {
		return nil, apierror.FromService(err, "failed to list goals")
	}

	resp := ListGoalsResponseBody{Goals: make([]Goal, len(goals))}
	for i, g := range goals {
		resp.Goals[i] = fromService(g)
	}

	return &ListGoalsOutput{Body: resp}, nil
}
