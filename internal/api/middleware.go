package api

import (
	"context"
	"net/http"
	"strings"

	"assessment-portal/internal/auth"
)

type contextKey string

const adminContextKey = contextKey("admin")

// AuthMiddleware admits requests carrying a valid admin bearer token.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			respondError(w, http.StatusUnauthorized, "Invalid Authorization header format")
			return
		}

		claims, err := auth.VerifyJWT(headerParts[1], s.config.JWT.Secret)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		if claims.Role != auth.RoleAdmin {
			respondError(w, http.StatusForbidden, "Admin access required")
			return
		}

		ctx := context.WithValue(r.Context(), adminContextKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetAdminFromContext(ctx context.Context) *auth.AppClaims {
	if claims, ok := ctx.Value(adminContextKey).(*auth.AppClaims); ok {
		return claims
	}
	return nil
}
