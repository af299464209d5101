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

// GetTransactionInput is the Huma input for fetching one transaction.
type GetTransactionInput struct {
	ID string `path:"id" doc:"Transaction UUID"`
}

// GetTransactionOutput is the Huma output for fetching one transaction.
type GetTransactionOutput struct {
	Body Transaction
}

// transactionGetter is the interface for fetching one transaction.
type transactionGetter interface {
	Get(ctx context.Context, callerID, id uuid.UUID) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /api/transactions/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

// NewGetTransactionHandler creates a new GetTransactionHandler.
func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

// Register registers the get transaction endpoint with the Huma API.
func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/api/transactions/{id}",
		Summary:     "Get transaction",
		Description: "Returns one of the caller's transactions by id.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	caller := auth.IdentityFromContext(ctx)
	if caller == nil {
		return nil, huma.NewError(http.StatusUnauthorized, "Not authorized, no token")
	}

	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.Get(ctx, caller.ID, id)
	if err != nil {
		return nil, apierror.FromService(err, "failed to get transaction")
	}

	return &GetTransactionOutput{Body: fromService(tx)}, nil
}
