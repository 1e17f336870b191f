package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/bookmarker/internal/models"
)

//go:generate mockgen -source=bookmark_update.go -destination=bookmark_update_mock.go -package=handlers

// BookmarkUpdater defines the interface that the service must implement.
type BookmarkUpdater interface {
	Update(ctx context.Context, auth models.AuthContext, bookmarkID int64, url, body string) (*models.BookmarkDB, error)
}

// NewUpdateBookmarkHandler returns an HTTP handler replacing url and body of a bookmark.
// PUT and PATCH share it; both replace the two fields.
// @Summary Update bookmark
// @Description Replaces url and body. The short code and visit counter are kept.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param id path int true "Bookmark ID"
// @Param bookmarkRequest body handlers.BookmarkRequest true "Bookmark"
// @Success 200 {object} models.BookmarkDB "Updated bookmark"
// @Failure 400 {object} handlers.ErrorResponse "Enter a valid url"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Item not found"
// @Failure 409 {object} handlers.ErrorResponse "URL already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/bookmarks/{id} [put]
// @Router /api/bookmarks/{id} [patch]
// @Security BearerAuth
func NewUpdateBookmarkHandler(svc BookmarkUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth, ok := authFromRequest(w, r)
		if !ok {
			return
		}
		id, ok := bookmarkIDParam(w, r)
		if !ok {
			return
		}

		var req BookmarkRequest
		if !decodeBody(w, r, &req) {
			return
		}

		bm, err := svc.Update(r.Context(), auth, id, req.URL, req.Body)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, bm)
	}
}
