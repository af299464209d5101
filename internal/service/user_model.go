package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// User represents a user in the service layer. The password hash never
// leaves storage.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      sqlconfig.Role
	CreatedAt time.Time
}

// UserRegistration is the input for creating a new account.
type UserRegistration struct {
	Name     string
	Email    string
	Password string
	Role     sqlconfig.Role // empty defaults to user
}

func userFromStorage(row *sqlconfig.User) *User {
	return &User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Role:      row.Role,
		CreatedAt: row.CreatedAt,
	}
}
