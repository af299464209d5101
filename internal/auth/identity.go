package auth

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Identity is the authenticated caller attached to a request.
type Identity struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  sqlconfig.Role
}

// IsAdmin reports whether the caller may perform admin-only operations.
func (i *Identity) IsAdmin() bool {
	return i.Role == sqlconfig.RoleAdmin
}

type identityKey struct{}

// WithIdentity attaches the caller identity to the context.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the caller identity, or nil on unauthenticated
// requests.
func IdentityFromContext(ctx context.Context) *Identity {
	identity, _ := ctx.Value(identityKey{}).(*Identity)
	return identity
}
