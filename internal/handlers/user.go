package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/bookmarker/internal/models"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

// WhoAmIer defines the interface that the service must implement.
type WhoAmIer interface {
	WhoAmI(ctx context.Context, auth models.AuthContext) (*models.UserProfile, error)
}

// NewWhoAmIHandler returns an HTTP handler describing the authenticated user.
// @Summary Current user
// @Description Returns the profile of the owner of the access token
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserProfile "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/auth/user [get]
// @Security BearerAuth
func NewWhoAmIHandler(svc WhoAmIer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth, ok := authFromRequest(w, r)
		if !ok {
			return
		}

		user, err := svc.WhoAmI(r.Context(), auth)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
