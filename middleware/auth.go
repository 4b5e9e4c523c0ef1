package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"mybooks/models"
	"mybooks/services"
)

type contextKey string

const identityKey contextKey = "identity"

const (
	msgNotAuthenticated = "ログインされていません"
	msgNotAuthorized    = "管理者権限がありません"
)

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// RequireAuth rejects requests without a session identity and attaches
// the restored identity to the request context.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := services.SessionIdentity(r)
		if !ok {
			unauthorized(w, msgNotAuthenticated)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after RequireAuth. The rejection message is
// distinct from the unauthenticated case.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFrom(r.Context())
		if !ok {
			unauthorized(w, msgNotAuthenticated)
			return
		}
		if !identity.IsAdmin {
			unauthorized(w, msgNotAuthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// IdentityFrom returns the identity attached by RequireAuth.
func IdentityFrom(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*models.Identity)
	return identity, ok
}
