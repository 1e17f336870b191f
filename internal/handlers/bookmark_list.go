package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/bookmarker/internal/models"
)

//go:generate mockgen -source=bookmark_list.go -destination=bookmark_list_mock.go -package=handlers

// BookmarkLister defines the interface that the service must implement.
type BookmarkLister interface {
	List(ctx context.Context, auth models.AuthContext, page, perPage int) (*models.BookmarkPage, error)
}

// BookmarkListResponse is one page of bookmarks
// swagger:model BookmarkListResponse
type BookmarkListResponse struct {
	Data []models.BookmarkDB `json:"data"`
	Meta models.PageMeta     `json:"meta"`
}

// NewListBookmarksHandler returns an HTTP handler listing the caller's bookmarks.
// @Summary List bookmarks
// @Description Returns one page of the caller's bookmarks in creation order
// @Tags bookmarks
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page, at most 100" default(5)
// @Success 200 {object} handlers.BookmarkListResponse "Page of bookmarks"
// @Failure 400 {object} handlers.ErrorResponse "Invalid page or per_page"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Page past the end"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/bookmarks [get]
// @Security BearerAuth
func NewListBookmarksHandler(svc BookmarkLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth, ok := authFromRequest(w, r)
		if !ok {
			return
		}

		page := queryInt(r, "page", models.DefaultPage)
		perPage := queryInt(r, "per_page", models.DefaultPerPage)

		res, err := svc.List(r.Context(), auth, page, perPage)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		items := res.Items
		if items == nil {
			items = []models.BookmarkDB{}
		}
		writeJSON(w, http.StatusOK, BookmarkListResponse{Data: items, Meta: res.Meta})
	}
}

// queryInt returns def when the parameter is absent or not an integer.
func queryInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return def
	}
	return v
}
