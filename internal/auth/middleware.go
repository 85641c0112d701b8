package auth

import (
	"context"
	"net/http"

	"github.com/osse101/CoinToss_Go/internal/logger"
)

type ownerKey struct{}

// WithOwner stores the authenticated owner in ctx
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

// OwnerFromContext returns the authenticated owner, if any
func OwnerFromContext(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(ownerKey{}).(string)
	return ownerID, ok && ownerID != ""
}

// Middleware rejects requests the identifier cannot attribute to an owner
func Middleware(id Identifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ownerID, err := id.Identify(r)
			if err != nil {
				logger.FromContext(r.Context()).Warn(LogMsgIdentifyFailed,
					"path", r.URL.Path,
					"error", err)
				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			ctx := WithOwner(r.Context(), ownerID)
			ctx = logger.WithOwnerID(ctx, ownerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
