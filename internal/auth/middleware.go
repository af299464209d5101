package auth

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Middleware verifies the bearer token on every route except the public ones
// and attaches the caller identity to the context. The identity is loaded
// from storage so tokens for since-deleted users stop working immediately.
func Middleware(api huma.API, issuer *Issuer, users sqlconfig.IUserTable, publicPaths map[string]bool) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if publicPaths[ctx.URL().Path] {
			next(ctx)
			return
		}

		header := ctx.Header("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		userID, _, err := issuer.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		user, err := users.FindByID(ctx.Context(), userID)
		if err != nil {
			logrus.WithError(err).Error("Auth.Middleware.FindByID")
			_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "Internal server error")
			return
		}
		if user == nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		identity := &Identity{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		}
		next(WithHumaIdentity(ctx, identity))
	}
}

// WithHumaIdentity attaches the caller identity to a huma request context.
func WithHumaIdentity(ctx huma.Context, identity *Identity) huma.Context {
	return huma.WithValue(ctx, identityKey{}, identity)
}
