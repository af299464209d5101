package user

import (
	"time"

	"github.com/carson-networks/finance-server/internal/service"
)

// User is the API response model for an account.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Name      string `json:"name" doc:"Display name"`
	Email     string `json:"email" doc:"Email address"`
	Role      string `json:"role" doc:"Role, user or admin"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

// AuthResponseBody is returned by both register and login.
type AuthResponseBody struct {
	User  User   `json:"user" doc:"The account"`
	Token string `json:"token" doc:"Bearer token for subsequent requests"`
}

func fromService(u *service.User) User {
	return User{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
