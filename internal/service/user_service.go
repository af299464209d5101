package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// UserService handles registration and credential checks.
type UserService struct {
	storage *storage.Storage
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage) *UserService {
	return &UserService{storage: store}
}

// Register creates a new account. Only admins may create admin accounts.
func (s *UserService) Register(ctx context.Context, caller *auth.Identity, reg UserRegistration) (*User, error) {
	if strings.TrimSpace(reg.Name) == "" {
		return nil, validationErrorf("name is required")
	}
	if _, err := mail.ParseAddress(reg.Email); err != nil {
		return nil, validationErrorf("invalid email address")
	}
	if len(reg.Password) < 8 {
		return nil, validationErrorf("password must be at least 8 characters")
	}

	role := reg.Role
	if role == "" {
		role = sqlconfig.RoleUser
	}
	if !role.Valid() {
		return nil, validationErrorf("unknown role %q", reg.Role)
	}
	if role == sqlconfig.RoleAdmin && !caller.IsAdmin() {
		return nil, ErrForbidden
	}

	hash, err := auth.HashPassword(reg.Password)
	if err != nil {
		return nil, err
	}

	id, err := s.storage.Users.Insert(ctx, &sqlconfig.UserCreate{
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: hash,
		Role:         role,
	})
	if errors.Is(err, sqlconfig.ErrDuplicateEmail) {
		return nil, validationErrorf("user already exists")
	}
	if err != nil {
		return nil, err
	}

	row, err := s.storage.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return userFromStorage(row), nil
}

// Authenticate verifies credentials for login. Invalid email and invalid
// password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*User, error) {
	row, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if row == nil || !auth.CheckPassword(row.PasswordHash, password) {
		return nil, validationErrorf("invalid credentials")
	}
	return userFromStorage(row), nil
}
