package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/bookmarker/internal/models"
)

//go:generate mockgen -source=bookmark_get.go -destination=bookmark_get_mock.go -package=handlers

// BookmarkGetter defines the interface that the service must implement.
type BookmarkGetter interface {
	Get(ctx context.Context, auth models.AuthContext, bookmarkID int64) (*models.BookmarkDB, error)
}

// NewGetBookmarkHandler returns an HTTP handler fetching one bookmark.
// @Summary Get bookmark
// @Tags bookmarks
// @Produce json
// @Param id path int true "Bookmark ID"
// @Success 200 {object} models.BookmarkDB "Bookmark"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Item not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/bookmarks/{id} [get]
// @Security BearerAuth
func NewGetBookmarkHandler(svc BookmarkGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth, ok := authFromRequest(w, r)
		if !ok {
			return
		}
		id, ok := bookmarkIDParam(w, r)
		if !ok {
			return
		}

		bm, err := svc.Get(r.Context(), auth, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, bm)
	}
}
