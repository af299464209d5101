package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// RegisterBody is the request body for creating an account.
type RegisterBody struct {
	Name     string `json:"name" required:"true" doc:"Display name"`
	Email    string `json:"email" required:"true" doc:"Email address, must be unique"`
	Password string `json:"password" required:"true" doc:"At least 8 characters"`
	Role     string `json:"role,omitempty" enum:"user,admin" doc:"Defaults to user; admin requires an admin caller"`
}

// RegisterInput is the Huma input for creating an account.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterOutput is the Huma output for creating an account.
type RegisterOutput struct {
	Body AuthResponseBody
}

// userRegistrar is the interface for creating accounts.
type userRegistrar interface {
	Register(ctx context.Context, caller *auth.Identity, reg service.UserRegistration) (*service.User, error)
}

// RegisterHandler handles POST /api/auth/register.
type RegisterHandler struct {
	UserService userRegistrar
	Issuer      *auth.Issuer
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(svc userRegistrar, issuer *auth.Issuer) *RegisterHandler {
	return &RegisterHandler{UserService: svc, Issuer: issuer}
}

// Register registers the account creation endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register-user",
		Method:        http.MethodPost,
		Path:          "/api/auth/register",
		Summary:       "Register account",
		Description:   "Creates a new account and returns it with a fresh token.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	caller := auth.IdentityFromContext(ctx)
	if caller == nil {
		return nil, huma.NewError(http.StatusUnauthorized, "Not authorized, no token")
	}

	created, err := h.UserService.Register(ctx, caller, service.UserRegistration{
		Name:     input.Body.Name,
		Email:    input.Body.Email,
		Password: input.Body.Password,
		Role:     sqlconfig.Role(input.Body.Role),
	})
	if err != nil {
		return nil, apierror.FromService(err, "failed to register user")
	}

	token, err := h.Issuer.Mint(created.ID, created.Role)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to issue token", err)
	}

	return &RegisterOutput{Body: AuthResponseBody{
		User:  fromService(created),
		Token: token,
	}}, nil
}
