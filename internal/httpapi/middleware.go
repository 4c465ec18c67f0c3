package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/benittaafriyie-svg/acity-eats/internal/auth"
)

type ctxKey string

const ctxClaims ctxKey = "auth_claims"

// Auth guards routes behind the bearer credential.
type Auth struct {
	tokens *auth.Tokens
}

func NewAuth(tokens *auth.Tokens) *Auth {
	return &Auth{tokens: tokens}
}

// Require rejects requests without a valid bearer token and stores the
// parsed claims in the request context.
func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			writeError(w, http.StatusUnauthorized, "missing or invalid authorization header")
			return
		}

		claims, err := a.tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ctxClaims, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin layers the admin check on top of Require.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return a.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFrom(r.Context())
		if claims == nil || !claims.IsAdmin {
			writeError(w, http.StatusForbidden, "admin privileges required")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func ClaimsFrom(ctx context.Context) *auth.Claims {
	if v := ctx.Value(ctxClaims); v != nil {
		if c, ok := v.(*auth.Claims); ok {
			return c
		}
	}
	return nil
}
