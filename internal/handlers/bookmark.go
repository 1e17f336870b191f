package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/bookmarker/internal/services"
)

// BookmarkRequest represents the JSON body for creating or editing a bookmark
// swagger:model BookmarkRequest
type BookmarkRequest struct {
	// Target URL, absolute http or https
	// required: true
	// default: https://example.com
	URL string `json:"url"`

	// Free-text note
	// default: read later
	Body string `json:"body"`
}

// bookmarkIDParam reads the {id} route parameter. Anything but a positive
// integer is answered the same way as a bookmark that does not exist.
func bookmarkIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeServiceError(w, r, services.ErrBookmarkNotFound)
		return 0, false
	}
	return id, true
}
