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

// Recommendation is the API response model for one budget's evaluated status.
type Recommendation struct {
	BudgetID string `json:"budgetId" doc:"Budget UUID"`
	Category string `json:"category" doc:"Category the budget caps"`
	Status   string `json:"status" doc:"exceeded, near-limit, trending-up or on-track"`
	Message  string `json:"message" doc:"Human-readable recommendation"`
}

// RecommendationsInput is the Huma input for budget recommendations.
type RecommendationsInput struct{}

// RecommendationsResponseBody is the response body for budget recommendations.
type RecommendationsResponseBody struct {
	Recommendations []Recommendation `json:"recommendations" doc:"One entry per budget"`
}

// RecommendationsOutput is the Huma output for budget recommendations.
type RecommendationsOutput struct {
	Body RecommendationsResponseBody
}

// budgetRecommender is the interface for evaluating budgets.
type budgetRecommender interface {
	Recommendations(ctx context.Context, callerID uuid.UUID) ([]*service.BudgetRecommendation, error)
}

// RecommendationsHandler handles GET /api/budgets/recommendations.
type RecommendationsHandler struct {
	BudgetService budgetRecommender
}

// NewRecommendationsHandler creates a new RecommendationsHandler.
func NewRecommendationsHandler(svc budgetRecommender) *RecommendationsHandler {
	return &RecommendationsHandler{BudgetService: svc}
}

// Register registers the recommendations endpoint with the Huma API.
func (h *RecommendationsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-recommendations",
		Method:      http.MethodGet,
		Path:        "/api/budgets/recommendations",
		Summary:     "Budget recommendations",
		Description: "Evaluates every budget against its current spend and the recent spending trend for its category.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *RecommendationsHandler) handle(ctx context.Context, _ *RecommendationsInput) (*RecommendationsOutput, error) {
	caller := auth.IdentityFromContext(ctx)
	if caller == nil {
		return nil, huma.NewError(http.StatusUnauthorized, "Not authorized, no token")
	}

	recs, err := h.BudgetService.Recommendations(ctx, caller.ID)
	if err != nil {
		return nil, apierror.FromService(err, "failed to evaluate budgets")
	}

	resp := RecommendationsResponseBody{Recommendations: make([]Recommendation, len(recs))}
	for i, rec := range recs {
		resp.Recommendations[i] = Recommendation{
			BudgetID: rec.BudgetID.String(),
			Category: rec.Category,
			Status:   string(rec.Status),
			Message:  rec.Message,
		}
	}

	return &RecommendationsOutput{Body: resp}, nil
}
