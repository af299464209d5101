package sqlconfig

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Role controls access to admin-only operations.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// ErrDuplicateEmail is returned by Insert when the email is already taken.
var ErrDuplicateEmail = errors.New("email already registered")

// User represents a user record.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Name         string
	Email        string
	PasswordHash string
	Role         Role
}

// IUserTable defines the interface for user storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IUserTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error)
}
