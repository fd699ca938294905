package http

import (
	"context"
	"net"
	"net/http"

	"github.com/shelfwatch/inventory-screen/internal/auth"
	rl "github.com/shelfwatch/inventory-screen/internal/http/rate_limiter"
)

type contextKey string

const identityKey = contextKey("identity")

// Identity is the authenticated operator attached to a request context.
type Identity struct {
	Username    string
	DisplayName string
}

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		id := Identity{}
		if sub, ok := claims["sub"].(string); ok {
			id.Username = sub
		}
		if name, ok := claims["name"].(string); ok {
			id.DisplayName = name
		}
		if id.Username == "" {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity returns the operator attached by AuthMiddleware.
func GetIdentity(r *http.Request) (Identity, bool) {
	id, ok := r.Context().Value(identityKey).(Identity)
	return id, ok
}

var limiterRegistry *rl.Registry

func SetRateLimiter(r *rl.Registry) {
	limiterRegistry = r
}

func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limiterRegistry != nil {
			if !limiterRegistry.Visitor(clientIP(r)).Allow() {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
