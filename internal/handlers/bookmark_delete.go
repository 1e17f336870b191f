package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/bookmarker/internal/models"
)

//go:generate mockgen -source=bookmark_delete.go -destination=bookmark_delete_mock.go -package=handlers

// BookmarkDeleter defines the interface that the service must implement.
type BookmarkDeleter interface {
	Delete(ctx context.Context, auth models.AuthContext, bookmarkID int64) error
}

// NewDeleteBookmarkHandler returns an HTTP handler deleting a bookmark.
// @Summary Delete bookmark
// @Tags bookmarks
// @Param id path int true "Bookmark ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Item not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/bookmarks/{id} [delete]
// @Security BearerAuth
func NewDeleteBookmarkHandler(svc BookmarkDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth, ok := authFromRequest(w, r)
		if !ok {
			return
		}
		id, ok := bookmarkIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), auth, id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
