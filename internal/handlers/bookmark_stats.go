package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/bookmarker/internal/models"
)

//go:generate mockgen -source=bookmark_stats.go -destination=bookmark_stats_mock.go -package=handlers

// StatsReader defines the interface that the service must implement.
type StatsReader interface {
	Stats(ctx context.Context, auth models.AuthContext) ([]models.BookmarkStat, error)
}

// StatsResponse lists visit counters of the caller's bookmarks
// swagger:model StatsResponse
type StatsResponse struct {
	Data []models.BookmarkStat `json:"data"`
}

// NewStatsHandler returns an HTTP handler reporting visit statistics.
// @Summary Bookmark statistics
// @Description Returns id, url, short code and visit count of every bookmark of the caller
// @Tags bookmarks
// @Produce json
// @Success 200 {object} handlers.StatsResponse "Statistics"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/bookmarks/stats [get]
// @Security BearerAuth
func NewStatsHandler(svc StatsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth, ok := authFromRequest(w, r)
		if !ok {
			return
		}

		stats, err := svc.Stats(r.Context(), auth)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if stats == nil {
			stats = []models.BookmarkStat{}
		}

		writeJSON(w, http.StatusOK, StatsResponse{Data: stats})
	}
}
