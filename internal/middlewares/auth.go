package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/bookmarker/internal/jwt"
	"github.com/sbilibin2017/bookmarker/internal/logger"
	"github.com/sbilibin2017/bookmarker/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	ParseAccess(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware returns a middleware that accepts only requests carrying a valid
// access token and stores the caller's identity in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, unauthorizedMessage(err))
				return
			}

			claims, err := tokener.ParseAccess(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, unauthorizedMessage(err))
				return
			}

			ctx = setAuthToContext(ctx, models.AuthContext{UserID: claims.UserID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorizedMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrMissingAuthHeader):
		return "Missing Authorization Header"
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	default:
		return "Invalid token"
	}
}

type authKey struct{}

func setAuthToContext(ctx context.Context, auth models.AuthContext) context.Context {
	return context.WithValue(ctx, authKey{}, auth)
}

// AuthFromContext returns the caller identity stored by AuthMiddleware.
func AuthFromContext(ctx context.Context) (models.AuthContext, bool) {
	auth, ok := ctx.Value(authKey{}).(models.AuthContext)
	return auth, ok
}
