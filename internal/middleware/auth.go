// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/avilov/datavault/internal/auth"
)

type ctxKey string

const accountKey ctxKey = "account"

// BearerAuth enforces bearer-token authentication for the API.
//
// The /api/register and /api/login endpoints are excluded so new accounts
// can be created and tokens obtained. For every other request it expects an
// "Authorization: Bearer <token>" header, validates the token signature, and
// stores the embedded account ID in the request context, where handlers read
// it as the authenticated caller identity.
func BearerAuth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/register" || r.URL.Path == "/api/login" {
				// Allow obtaining credentials without a token
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "invalid authorization header", http.StatusUnauthorized)
				return
			}

			accountID, err := auth.GetAccountIDFromToken(parts[1], secretKey)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), accountKey, accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAccountFromContext extracts the authenticated account ID from the
// request context. Returns an empty string if not found.
func GetAccountFromContext(ctx context.Context) string {
	val := ctx.Value(accountKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
