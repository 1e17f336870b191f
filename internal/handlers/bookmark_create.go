package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/bookmarker/internal/models"
)

//go:generate mockgen -source=bookmark_create.go -destination=bookmark_create_mock.go -package=handlers

// BookmarkCreator defines the interface that the service must implement.
type BookmarkCreator interface {
	Create(ctx context.Context, auth models.AuthContext, url, body string) (*models.BookmarkDB, error)
}

// NewCreateBookmarkHandler returns an HTTP handler creating a bookmark.
// @Summary Create bookmark
// @Description Stores a URL under a freshly generated 3-character short code
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param bookmarkRequest body handlers.BookmarkRequest true "Bookmark"
// @Success 201 {object} models.BookmarkDB "Created bookmark"
// @Failure 400 {object} handlers.ErrorResponse "Enter a valid url"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "URL already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/bookmarks [post]
// @Security BearerAuth
func NewCreateBookmarkHandler(svc BookmarkCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth, ok := authFromRequest(w, r)
		if !ok {
			return
		}

		var req BookmarkRequest
		if !decodeBody(w, r, &req) {
			return
		}

		bm, err := svc.Create(r.Context(), auth, req.URL, req.Body)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, bm)
	}
}
