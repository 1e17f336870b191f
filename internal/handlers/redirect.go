package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=redirect.go -destination=redirect_mock.go -package=handlers

// Resolver defines the interface that the service must implement.
type Resolver interface {
	Resolve(ctx context.Context, code string) (string, error)
}

// NewRedirectHandler returns an HTTP handler following a short code.
// @Summary Follow short code
// @Description Counts a visit and redirects to the bookmarked URL. No authentication.
// @Tags redirect
// @Param code path string true "3-character short code"
// @Success 302 "Redirect to the bookmarked URL"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /{code} [get]
func NewRedirectHandler(svc Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, err := svc.Resolve(r.Context(), chi.URLParam(r, "code"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		http.Redirect(w, r, url, http.StatusFound)
	}
}
