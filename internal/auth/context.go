// Package auth carries the resolved tenant through the request context.
// Authentication itself is delegated to the external identity provider; the
// gateway in front of this service verifies the session and forwards the
// user's email in the X-User-Email header.
package auth

import (
	"context"
	"net/http"

	"github.com/nmellal/gestock/internal/commerce"
	"github.com/nmellal/gestock/internal/http/httperrors"
	"github.com/nmellal/gestock/internal/model"
	"github.com/nmellal/gestock/pkg/logger"
	"go.uber.org/zap"
)

// EmailHeader is set by the identity-provider gateway.
const EmailHeader = "X-User-Email"

type contextKey int

const (
	emailKey contextKey = iota
	commerceKey
)

// EmailFrom returns the authenticated email, or "".
func EmailFrom(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}

// CommerceFrom returns the tenant resolved by RequireCommerce, or nil.
func CommerceFrom(ctx context.Context) *model.Commerce {
	c, _ := ctx.Value(commerceKey).(*model.Commerce)
	return c
}

// WithCommerce is used by tests to seed a resolved tenant.
func WithCommerce(ctx context.Context, c *model.Commerce) context.Context {
	ctx = context.WithValue(ctx, emailKey, c.Email)
	return context.WithValue(ctx, commerceKey, c)
}

// RequireCommerce resolves the tenant once per request and stores it in the
// context. Requests without an email are rejected; requests whose email has
// no commerce yet get a 404 so per-call handlers never see an unscoped tenant.
func RequireCommerce(uc commerce.UseCase, log logger.ZapLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := r.Header.Get(EmailHeader)
			if email == "" {
				httperrors.WriteError(w, httperrors.ErrUnauthorized.WithDetail("missing user email"))
				return
			}

			c, err := uc.FindByEmail(r.Context(), email)
			if err != nil {
				log.Error("failed to resolve commerce", zap.String("email", email), zap.Error(err))
				httperrors.WriteError(w, httperrors.ErrInternalServerError)
				return
			}
			if c == nil {
				httperrors.WriteError(w, httperrors.ErrNotFound.WithDetail("no commerce for this account"))
				return
			}

			ctx := context.WithValue(r.Context(), emailKey, email)
			ctx = context.WithValue(ctx, commerceKey, c)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
