package budget

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/service"
)

// Budget is the API response model for a budget.
type Budget struct {
	ID          string `json:"id" doc:"Budget UUID"`
	Category    string `json:"category" doc:"Category this budget caps"`
	Amount      string `json:"amount" doc:"Spending ceiling"`
	SpentAmount string `json:"spentAmount" doc:"Expenses aggregated over the window, recomputed on every read"`
	StartDate   string `json:"startDate" doc:"RFC3339 window start"`
	EndDate     string `json:"endDate" doc:"RFC3339 window end"`
	Alerts      bool   `json:"alerts" doc:"Whether threshold alerts are enabled"`
	Threshold   int    `json:"threshold" doc:"Alert threshold as a percentage of the ceiling"`
	Currency    string `json:"currency" doc:"Currency code"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

// BudgetBody is the request body shared by create and update.
type BudgetBody struct {
	Category  string `json:"category" required:"true" doc:"Category this budget caps"`
	Amount    string `json:"amount" required:"true" doc:"Positive decimal spending ceiling"`
	StartDate string `json:"startDate" required:"true" doc:"RFC3339 window start"`
	EndDate   string `json:"endDate" required:"true" doc:"RFC3339 window end, must not precede the start"`
	Alerts    *bool  `json:"alerts,omitempty" doc:"Defaults to true"`
	Threshold *int   `json:"threshold,omitempty" minimum:"0" maximum:"100" doc:"Alert threshold percentage, defaults to 80"`
	Currency  string `json:"currency,omitempty" doc:"Currency code, defaults to USD"`
}

func parseBudgetBody(body BudgetBody) (service.BudgetInput, error) {
	input := service.BudgetInput{
		Category:  body.Category,
		Alerts:    body.Alerts,
		Threshold: body.Threshold,
		Currency:  body.Currency,
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return input, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	input.Amount = amount

	start, err := time.Parse(time.RFC3339, body.StartDate)
	if err != nil {
		return input, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
	}
	input.StartDate = start

	end, err := time.Parse(time.RFC3339, body.EndDate)
	if err != nil {
		return input, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
	}
	input.EndDate = end

	return input, nil
}

func parseBudgetID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid budget id", err)
	}
	return id, nil
}

func fromService(b *service.Budget) Budget {
	return Budget{
		ID:          b.ID.String(),
		Category:    b.Category,
		Amount:      b.Amount.String(),
		SpentAmount: b.SpentAmount.String(),
		StartDate:   b.StartDate.Format(time.RFC3339),
		EndDate:     b.EndDate.Format(time.RFC3339),
		Alerts:      b.Alerts,
		Threshold:   b.Threshold,
		Currency:    b.Currency,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}
