package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/02priyeshraj/HomePlate_Backend/helper"
	"github.com/02priyeshraj/HomePlate_Backend/models"
	"github.com/gorilla/mux"
)

type contextKey string

const principalKey contextKey = "principal"

// TokenValidator turns a bearer token into the principal it was issued for.
type TokenValidator interface {
	ValidateToken(signedToken string) (models.Principal, error)
}

// Authentication rejects requests without a valid bearer token and stores
// the caller's principal in the request context.
func Authentication(tokens TokenValidator) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientToken := r.Header.Get("Authorization")
			if clientToken == "" {
				helper.WriteError(w, http.StatusUnauthorized, "No Authorization header provided")
				return
			}

			// Token format should be "Bearer <token>"
			tokenParts := strings.Fields(clientToken)
			if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
				helper.WriteError(w, http.StatusUnauthorized, "Invalid Authorization format")
				return
			}

			principal, err := tokens.ValidateToken(tokenParts[1])
			if err != nil {
				helper.WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the authenticated caller, or the zero
// Principal on public routes.
func PrincipalFromContext(ctx context.Context) models.Principal {
	p, _ := ctx.Value(principalKey).(models.Principal)
	return p
}
