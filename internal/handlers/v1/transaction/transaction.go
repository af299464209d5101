package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID                  string   `json:"id" doc:"Transaction UUID"`
	Kind                string   `json:"kind" doc:"income or expense"`
	Category            string   `json:"category" doc:"Free-text category label"`
	Amount              string   `json:"amount" doc:"Decimal amount"`
	Currency            string   `json:"currency" doc:"Currency code"`
	OccurredOn          string   `json:"occurredOn" doc:"RFC3339 occurrence date"`
	Tags                []string `json:"tags,omitempty" doc:"Tags"`
	IsRecurring         bool     `json:"isRecurring" doc:"Whether this transaction recurs"`
	RecurrenceFrequency string   `json:"recurrenceFrequency,omitempty" doc:"daily, weekly, monthly or yearly"`
	RecurrenceEnd       string   `json:"recurrenceEnd,omitempty" doc:"RFC3339 end of the recurrence"`
	NextOccurrence      *string  `json:"nextOccurrence" doc:"Derived next occurrence, null when not recurring or past the end"`
	GoalID              string   `json:"goalId,omitempty" doc:"Goal receiving savings from this income"`
	CreatedAt           string   `json:"createdAt" doc:"RFC3339 creation time"`
}

// TransactionBody is the request body shared by create and update.
type TransactionBody struct {
	Kind                string   `json:"kind" required:"true" enum:"income,expense" doc:"income or expense"`
	Category            string   `json:"category" required:"true" doc:"Free-text category label"`
	Amount              string   `json:"amount" required:"true" doc:"Positive decimal amount"`
	Currency            string   `json:"currency,omitempty" doc:"Currency code, defaults to USD"`
	OccurredOn          string   `json:"occurredOn,omitempty" doc:"RFC3339 occurrence date, defaults to now, must not be in the future"`
	Tags                []string `json:"tags,omitempty" doc:"Tags"`
	IsRecurring         bool     `json:"isRecurring,omitempty" doc:"Whether this transaction recurs"`
	RecurrenceFrequency string   `json:"recurrenceFrequency,omitempty" doc:"Required when isRecurring is set"`
	RecurrenceEnd       string   `json:"recurrenceEnd,omitempty" doc:"RFC3339 end of the recurrence"`
	GoalID              string   `json:"goalId,omitempty" doc:"Goal to receive the savings allocation of this income"`
}

// parseTransactionBody turns an API body into service input. Malformed
// fields are rejected here; business rules stay in the service.
func parseTransactionBody(body TransactionBody) (service.TransactionInput, error) {
	input := service.TransactionInput{
		Kind:        finance.Kind(body.Kind),
		Category:    body.Category,
		Currency:    body.Currency,
		Tags:        body.Tags,
		IsRecurring: body.IsRecurring,
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return input, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	input.Amount = amount

	if body.OccurredOn != "" {
		occurred, parseErr := time.Parse(time.RFC3339, body.OccurredOn)
		if parseErr != nil {
			return input, huma.NewError(http.StatusBadRequest, "invalid occurredOn", parseErr)
		}
		input.OccurredOn = occurred
	}

	if body.RecurrenceFrequency != "" {
		frequency, parseErr := finance.ParseFrequency(body.RecurrenceFrequency)
		if parseErr != nil {
			return input, huma.NewError(http.StatusBadRequest, "invalid recurrenceFrequency", parseErr)
		}
		input.RecurrenceFrequency = frequency
	}

	if body.RecurrenceEnd != "" {
		end, parseErr := time.Parse(time.RFC3339, body.RecurrenceEnd)
		if parseErr != nil {
			return input, huma.NewError(http.StatusBadRequest, "invalid recurrenceEnd", parseErr)
		}
		input.RecurrenceEnd = &end
	}

	if body.GoalID != "" {
		goalID, parseErr := uuid.FromString(body.GoalID)
		if parseErr != nil {
			return input, huma.NewError(http.StatusBadRequest, "invalid goalId", parseErr)
		}
		input.GoalID = &goalID
	}

	return input, nil
}

func parseTransactionID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}
	return id, nil
}

func fromService(tx *service.Transaction) Transaction {
	resp := Transaction{
		ID:                  tx.ID.String(),
		Kind:                string(tx.Kind),
		Category:            tx.Category,
		Amount:              tx.Amount.String(),
		Currency:            tx.Currency,
		OccurredOn:          tx.OccurredOn.Format(time.RFC3339),
		Tags:                tx.Tags,
		IsRecurring:         tx.RecurrenceFrequency != "",
		RecurrenceFrequency: string(tx.RecurrenceFrequency),
		CreatedAt:           tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.RecurrenceEnd != nil {
		resp.RecurrenceEnd = tx.RecurrenceEnd.Format(time.RFC3339)
	}
	if next := tx.NextOccurrence(); next != nil {
		formatted := next.Format(time.RFC3339)
		resp.NextOccurrence = &formatted
	}
	if tx.GoalID != nil {
		resp.GoalID = tx.GoalID.String()
	}
	return resp
}
