package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/GoldenRodger5/nutrivize-sub004/config"
	"github.com/GoldenRodger5/nutrivize-sub004/util"
)

type contextKey string

const UserContextKey contextKey = "user_id"

// AuthMiddleware validates the Bearer JWT and stores the user ID in
// the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Unauthorized: No Authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Unauthorized: Invalid Authorization format", http.StatusUnauthorized)
			return
		}

		secret := []byte(config.GetEnv("JWT_SECRET", "dev-secret"))
		claims, err := util.ValidateJWT(parts[1], secret)
		if err != nil {
			http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID extracts the authenticated user ID from the request context.
func UserID(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(UserContextKey).(uint)
	return id, ok
}
