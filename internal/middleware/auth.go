package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/brushhq/paintdesk/internal/utils"
)

type contextKey string

// OwnerContextKey holds the authenticated user's id (uint) in the request context
const OwnerContextKey contextKey = "owner"

// Auth returns middleware that verifies the Bearer token and stores the
// owner id in the request context. Every protected handler reads the id from
// there and scopes its queries with it.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			// Bearer token
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := utils.ValidateToken(parts[1], secret)
			if err != nil {
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ownerID, err := utils.OwnerIDFromClaims(claims)
			if err != nil {
				http.Error(w, "Invalid token claims", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), OwnerContextKey, ownerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OwnerID extracts the authenticated owner id placed by Auth. The second
// return is false when the request did not pass through the middleware.
func OwnerID(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(OwnerContextKey).(uint)
	return id, ok
}
