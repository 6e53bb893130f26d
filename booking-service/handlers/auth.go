package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	userIDContextKey contextKey = "user_id"
	tokenContextKey  contextKey = "token"
)

// NewAuthMiddleware validates the bearer token with the shared HMAC secret
// and stores the user id and the raw Authorization header on the context.
// The raw header is kept so downstream service calls can forward it.
func NewAuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeUnauthorized(w, "Authorization header is required.")
				return
			}

			raw := strings.TrimPrefix(header, "Bearer ")
			token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				writeUnauthorized(w, "Invalid token.")
				return
			}

			userID := userIDFromClaims(token.Claims)
			if userID == "" {
				writeUnauthorized(w, "Token is missing user identification.")
				return
			}

			ctx := context.WithValue(r.Context(), userIDContextKey, userID)
			ctx = context.WithValue(ctx, tokenContextKey, header)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userIDFromClaims(claims jwt.Claims) string {
	mapClaims, ok := claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	for _, key := range []string{"user_id", "id", "sub"} {
		if value, ok := mapClaims[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

// UserIDFromContext returns the authenticated user id, empty when absent
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDContextKey).(string)
	return userID
}

// TokenFromContext returns the raw Authorization header, empty when absent
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

// ContextWithAuth injects auth values directly, used by tests and internal
// callers that bypass the middleware.
func ContextWithAuth(ctx context.Context, userID, token string) context.Context {
	ctx = context.WithValue(ctx, userIDContextKey, userID)
	return context.WithValue(ctx, tokenContextKey, token)
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
