package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/bookmarker/internal/logger"
	"github.com/sbilibin2017/bookmarker/internal/models"
	"github.com/sbilibin2017/bookmarker/internal/repositories"
	"github.com/sbilibin2017/bookmarker/internal/shortcode"
)

//go:generate mockgen -source=redirect.go -destination=redirect_mock.go -package=services

// VisitRecorder counts a visit of the bookmark behind a short code.
type VisitRecorder interface {
	IncrementVisits(ctx context.Context, shortURL string) (*models.BookmarkDB, error)
}

// RedirectService resolves public short codes.
type RedirectService struct {
	visits    VisitRecorder
	publisher eventPublisher
}

// NewRedirectService creates a new RedirectService instance.
// kafkaWriter may be nil, in which case no events are published.
func NewRedirectService(visits VisitRecorder, kafkaWriter KafkaWriter, opts ...PublishOpt) *RedirectService {
	return &RedirectService{
		visits:    visits,
		publisher: newEventPublisher(kafkaWriter, opts...),
	}
}

// Resolve records a visit and returns the target URL of code.
// Malformed codes never reach storage.
func (svc *RedirectService) Resolve(ctx context.Context, code string) (string, error) {
	if !shortcode.IsValid(code) {
		return "", ErrShortURLNotFound
	}

	bm, err := svc.visits.IncrementVisits(ctx, code)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", ErrShortURLNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to record visit", "short_url", code, "err", err)
		return "", err
	}

	svc.publisher.publish(ctx, newBookmarkEvent(models.EventBookmarkVisited, bm))
	return bm.URL, nil
}
