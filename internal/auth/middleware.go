// Package auth provides HTTP middleware for bearer token authentication of
// MCP clients.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

const bearerPrefix = "Bearer "

// NewAuthMiddleware returns an HTTP middleware that enforces bearer token
// authentication. If the configured token is empty, authentication is disabled
// and all requests pass through to the next handler unconditionally.
//
// When enabled, the middleware requires the incoming request to carry an
// Authorization header with the exact format:
//
//	Authorization: Bearer <token>
//
// The "Bearer" prefix is case-sensitive and must be followed by exactly one
// space before the token value. A missing header, a wrong or empty token, a
// lowercase prefix or extra spaces all result in a 401 Unauthorized response.
// Rejections are logged at warn level on the request's zerolog logger.
func NewAuthMiddleware(token string) func(http.Handler) http.Handler {
	expected := []byte(token)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			provided, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
			if !ok || provided == "" || subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
				reason := "invalid token"
				if !ok {
					reason = "missing bearer credentials"
				}
				zerolog.Ctx(r.Context()).Warn().
					Str("remote", r.RemoteAddr).
					Str("path", r.URL.Path).
					Str("reason", reason).
					Msg("rejected unauthenticated request")
				w.Header().Set("WWW-Authenticate", `Bearer realm="zeabur-mcp"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
