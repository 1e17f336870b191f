package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/bookmarker/internal/logger"
	"github.com/sbilibin2017/bookmarker/internal/services"
)

//go:generate mockgen -source=refresh.go -destination=refresh_mock.go -package=handlers

// RefreshTokenGetter extracts the bearer token of a request.
type RefreshTokenGetter interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Refresher defines the interface that the service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// RefreshResponse carries a new access token
// swagger:model RefreshResponse
type RefreshResponse struct {
	// Access token
	Access string `json:"access"`
}

// NewRefreshHandler returns an HTTP handler exchanging a refresh token for an access token.
// @Summary Refresh access token
// @Description Issues a new access token for a valid refresh token sent as bearer. The refresh token is not rotated.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.RefreshResponse "New access token"
// @Failure 401 {object} handlers.ErrorResponse "Missing, invalid or expired refresh token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/auth/token/refresh [get]
// @Security BearerAuth
func NewRefreshHandler(tokens RefreshTokenGetter, svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := tokens.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Infow("refresh without token", "err", err)
			writeServiceError(w, r, services.ErrInvalidToken)
			return
		}

		access, err := svc.Refresh(ctx, token)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, RefreshResponse{Access: access})
	}
}
