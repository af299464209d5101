package goal

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/service"
)

// Goal is the API response model for a savings goal.
type Goal struct {
	ID            string `json:"id" doc:"Goal UUID"`
	TargetAmount  string `json:"targetAmount" doc:"Savings target"`
	CurrentAmount string `json:"currentAmount" doc:"Accumulated savings, capped at the target"`
	Currency      string `json:"currency" doc:"Currency code"`
	StartDate     string `json:"startDate" doc:"RFC3339 window start"`
	EndDate       string `json:"endDate" doc:"RFC3339 window end"`
	Category      string `json:"category" doc:"Category label"`
	Description   string `json:"description" doc:"Description"`
	CreatedAt     string `json:"createdAt" doc:"RFC3339 creation time"`
}

func parseGoalID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}
	return id, nil
}

func fromService(g *service.Goal) Goal {
	return Goal{
		ID:            g.ID.String(),
		TargetAmount:  g.TargetAmount.String(),
		CurrentAmount: g.CurrentAmount.String(),
		Currency:      g.Currency,
		StartDate:     g.StartDate.Format(time.RFC3339),
		EndDate:       g.EndDate.Format(time.RFC3339),
		Category:      g.Category,
		Description:   g.Description,
		CreatedAt:     g.CreatedAt.Format(time.RFC3339),
	}
}
