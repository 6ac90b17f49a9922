package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/itchan-dev/forum-api/shared/domain"
	"github.com/itchan-dev/forum-api/shared/utils"
)

// AccessVerifier checks an access token and returns its claims.
type AccessVerifier interface {
	VerifyAccessToken(token string) (domain.TokenPayload, error)
}

// Key to store the token payload in the request context
type key int

const UserClaimsKey key = 0

type Auth struct {
	verifier AccessVerifier
}

func NewAuth(verifier AccessVerifier) *Auth {
	return &Auth{verifier: verifier}
}

// NeedAuth returns middleware that rejects requests without a valid bearer token.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || strings.TrimSpace(token) == "" {
				utils.WriteFail(w, http.StatusUnauthorized, "Missing authentication")
				return
			}

			user, err := a.verifier.VerifyAccessToken(strings.TrimSpace(token))
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext retrieves the authenticated user, nil on public routes.
func GetUserFromContext(r *http.Request) *domain.TokenPayload {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.TokenPayload)
	if !ok {
		return nil
	}
	return user
}

// WithUser stores user in ctx the way NeedAuth does.
func WithUser(ctx context.Context, user domain.TokenPayload) context.Context {
	return context.WithValue(ctx, UserClaimsKey, &user)
}
