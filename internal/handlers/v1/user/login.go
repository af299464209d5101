package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/service"
)

// LoginBody is the request body for logging in.
type LoginBody struct {
	Email    string `json:"email" required:"true" doc:"Email address"`
	Password string `json:"password" required:"true" doc:"Password"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	Body AuthResponseBody
}

// userAuthenticator is the interface for checking credentials.
type userAuthenticator interface {
	Authenticate(ctx context.Context, email, password string) (*service.User, error)
}

// LoginHandler handles POST /api/auth/login.
type LoginHandler struct {
	UserService userAuthenticator
	Issuer      *auth.Issuer
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc userAuthenticator, issuer *auth.Issuer) *LoginHandler {
	return &LoginHandler{UserService: svc, Issuer: issuer}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Summary:     "Log in",
		Description: "Checks credentials and returns the account with a fresh token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	account, err := h.UserService.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if errors.Is(err, service.ErrValidation) {
		// Credential failures surface as a 401, not the validation 400
		// the sentinel would normally map to.
		return nil, huma.NewError(http.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to log in", err)
	}

	token, err := h.Issuer.Mint(account.ID, account.Role)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to issue token", err)
	}

	return &LoginOutput{Body: AuthResponseBody{
		User:  fromService(account),
		Token: token,
	}}, nil
}
