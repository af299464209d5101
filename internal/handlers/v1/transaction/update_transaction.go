package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-server/internal/service"
)

// UpdateTransactionInput is the Huma input for replacing a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body TransactionBody
}

// UpdateTransactionOutput is the Huma output for replacing a transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

// transactionUpdater is the interface for replacing transactions.
type transactionUpdater interface {
	Update(ctx context.Context, callerID, id uuid.UUID, input service.TransactionInput) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /api/transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/api/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Replaces the mutable fields of one of the caller's transactions.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	caller := auth.IdentityFromContext(ctx)
	if caller == nil {
		return nil, huma.NewError(http.StatusUnauthorized, "Not authorized, no token")
	}

	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}

	svcInput, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	updated, err := h.TransactionService.Update(ctx, caller.ID, id, svcInput)
	if err != nil {
		return nil, apierror.FromService(err, "failed to update transaction")
	}

	return &UpdateTransactionOutput{Body: fromService(updated)}, nil
}
