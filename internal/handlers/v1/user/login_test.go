package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type mockUserAuthenticator struct {
	mock.Mock
}

func (m *mockUserAuthenticator) Authenticate(ctx context.Context, email, password string) (*service.User, error) {
	args := m.Called(ctx, email, password)
	u, _ := args.Get(0).(*service.User)
	return u, args.Error(1)
}

func newLoginTestAPI(t *testing.T, svc userAuthenticator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewLoginHandler(svc, auth.NewIssuer("test-secret", time.Hour)).Register(api)
	return api
}

func TestHTTP_Login_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockUserAuthenticator)
	mockSvc.On("Authenticate", mock.Anything, "ada@example.com", "opensesame").
		Return(&service.User{
			ID:    userID,
			Name:  "Ada",
			Email: "ada@example.com",
			Role:  sqlconfig.RoleUser,
		}, nil)

	resp := newLoginTestAPI(t, mockSvc).Post("/api/auth/login", LoginBody{
		Email:    "ada@example.com",
		Password: "opensesame",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body AuthResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, userID.String(), body.User.ID)
	assert.NotEmpty(t, body.Token)

	// The minted token must verify against the same issuer settings.
	verifiedID, role, err := auth.NewIssuer("test-secret", time.Hour).Verify(body.Token)
	assert.NoError(t, err)
	assert.Equal(t, userID, verifiedID)
	assert.Equal(t, sqlconfig.RoleUser, role)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Login_BadCredentials(t *testing.T) {
	mockSvc := new(mockUserAuthenticator)
	mockSvc.On("Authenticate", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, service.ErrValidation)

	resp := newLoginTestAPI(t, mockSvc).Post("/api/auth/login", LoginBody{
		Email:    "ada@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_Login_StorageError(t *testing.T) {
	mockSvc := new(mockUserAuthenticator)
	mockSvc.On("Authenticate", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newLoginTestAPI(t, mockSvc).Post("/api/auth/login", LoginBody{
		Email:    "ada@example.com",
		Password: "whatever",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
