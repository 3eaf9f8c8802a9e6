package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sandeepkv93/lost-and-found-backend/internal/http/response"
	"github.com/sandeepkv93/lost-and-found-backend/internal/observability"
	"github.com/sandeepkv93/lost-and-found-backend/internal/security"
)

type contextKey string

const (
	ClaimsContextKey contextKey = "claims"
)

// TokenParser verifies a raw bearer token. *security.JWTManager satisfies it.
type TokenParser interface {
	ParseAccessToken(raw string) (*security.Claims, error)
}

// AuthMiddleware only admits requests carrying a valid "Authorization: Bearer <token>" header.
// Verification is stateless: nothing is read from the database.
func AuthMiddleware(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := tokens.ParseAccessToken(bearerToken(r))
			if err != nil {
				if errors.Is(err, security.ErrMissingToken) {
					observability.RecordAccessTokenValidation(r.Context(), "missing", "bearer")
					response.Error(w, r, http.StatusUnauthorized, "MISSING_TOKEN", "missing access token", nil)
					return
				}
				observability.RecordAccessTokenValidation(r.Context(), "invalid", "bearer")
				response.Error(w, r, http.StatusUnauthorized, "INVALID_TOKEN", "invalid or expired access token", nil)
				return
			}
			observability.RecordAccessTokenValidation(r.Context(), "valid", "bearer")
			ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken returns "" unless the header uses the Bearer scheme.
func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func ClaimsFromContext(ctx context.Context) (*security.Claims, bool) {
	c, ok := ctx.Value(ClaimsContextKey).(*security.Claims)
	return c, ok
}
