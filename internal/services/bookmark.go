package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/bookmarker/internal/logger"
	"github.com/sbilibin2017/bookmarker/internal/models"
	"github.com/sbilibin2017/bookmarker/internal/repositories"
)

//go:generate mockgen -source=bookmark.go -destination=bookmark_mock.go -package=services

// BookmarkReader defines read-only operations for bookmarks.
type BookmarkReader interface {
	GetByIDForUser(ctx context.Context, bookmarkID, userID int64) (*models.BookmarkDB, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.BookmarkDB, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
	StatsByUser(ctx context.Context, userID int64) ([]models.BookmarkStat, error)
	ExistsByURL(ctx context.Context, url string, excludeID int64) (bool, error)
}

// BookmarkWriter defines write operations for bookmarks.
type BookmarkWriter interface {
	Save(ctx context.Context, userID int64, url, body, shortURL string) (*models.BookmarkDB, error)
	Update(ctx context.Context, bookmarkID, userID int64, url, body string) (*models.BookmarkDB, error)
	Delete(ctx context.Context, bookmarkID, userID int64) error
}

// ShortCodeGenerator draws a short code not yet used by any bookmark.
type ShortCodeGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// BookmarkService handles owner-scoped bookmark operations.
type BookmarkService struct {
	reader    BookmarkReader
	writer    BookmarkWriter
	codes     ShortCodeGenerator
	publisher eventPublisher
}

// NewBookmarkService creates a new BookmarkService instance.
// kafkaWriter may be nil, in which case no events are published.
func NewBookmarkService(
	reader BookmarkReader,
	writer BookmarkWriter,
	codes ShortCodeGenerator,
	kafkaWriter KafkaWriter,
	opts ...PublishOpt,
) *BookmarkService {
	return &BookmarkService{
		reader:    reader,
		writer:    writer,
		codes:     codes,
		publisher: newEventPublisher(kafkaWriter, opts...),
	}
}

// Create stores a new bookmark under a freshly generated short code.
func (svc *BookmarkService) Create(ctx context.Context, auth models.AuthContext, url, body string) (*models.BookmarkDB, error) {
	if err := validateURL(url); err != nil {
		return nil, err
	}
	if err := validateBody(body); err != nil {
		return nil, err
	}

	exists, err := svc.reader.ExistsByURL(ctx, url, 0)
	if err != nil {
		logger.Log.Errorw("failed to check url", "err", err)
		return nil, err
	}
	if exists {
		return nil, ErrURLExists
	}

	code, err := svc.codes.Generate(ctx)
	if err != nil {
		logger.Log.Errorw("failed to generate short code", "err", err)
		return nil, err
	}

	bm, err := svc.writer.Save(ctx, auth.UserID, url, body, code)
	if repositories.IsDuplicateOf(err, repositories.ConstraintBookmarkURL) {
		return nil, ErrURLExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save bookmark", "user_id", auth.UserID, "short_url", code, "err", err)
		return nil, err
	}

	logger.Log.Infow("bookmark created", "bookmark_id", bm.BookmarkID, "user_id", auth.UserID, "short_url", bm.ShortURL)
	svc.publisher.publish(ctx, newBookmarkEvent(models.EventBookmarkCreated, bm))

	return bm, nil
}

// List returns one page of the caller's bookmarks in insertion order.
// perPage is capped at models.MaxPerPage.
func (svc *BookmarkService) List(ctx context.Context, auth models.AuthContext, page, perPage int) (*models.BookmarkPage, error) {
	if page < 1 || perPage < 1 {
		return nil, ErrInvalidPage
	}
	if perPage > models.MaxPerPage {
		perPage = models.MaxPerPage
	}

	total, err := svc.reader.CountByUser(ctx, auth.UserID)
	if err != nil {
		logger.Log.Errorw("failed to count bookmarks", "user_id", auth.UserID, "err", err)
		return nil, err
	}

	pages := (total + perPage - 1) / perPage
	if page > 1 && page > pages {
		return nil, ErrPageNotFound
	}
	offset := (page - 1) * perPage

	items, err := svc.reader.ListByUser(ctx, auth.UserID, perPage, offset)
	if err != nil {
		logger.Log.Errorw("failed to list bookmarks", "user_id", auth.UserID, "err", err)
		return nil, err
	}

	return &models.BookmarkPage{
		Items: items,
		Meta:  models.NewPageMeta(page, perPage, total),
	}, nil
}

// Get returns a bookmark owned by the caller.
func (svc *BookmarkService) Get(ctx context.Context, auth models.AuthContext, bookmarkID int64) (*models.BookmarkDB, error) {
	bm, err := svc.reader.GetByIDForUser(ctx, bookmarkID, auth.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrBookmarkNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get bookmark", "bookmark_id", bookmarkID, "err", err)
		return nil, err
	}
	return bm, nil
}

// Update replaces url and body of a bookmark owned by the caller.
func (svc *BookmarkService) Update(ctx context.Context, auth models.AuthContext, bookmarkID int64, url, body string) (*models.BookmarkDB, error) {
	if _, err := svc.Get(ctx, auth, bookmarkID); err != nil {
		return nil, err
	}

	if err := validateURL(url); err != nil {
		return nil, err
	}
	if err := validateBody(body); err != nil {
		return nil, err
	}

	exists, err := svc.reader.ExistsByURL(ctx, url, bookmarkID)
	if err != nil {
		logger.Log.Errorw("failed to check url", "err", err)
		return nil, err
	}
	if exists {
		return nil, ErrURLExists
	}

	bm, err := svc.writer.Update(ctx, bookmarkID, auth.UserID, url, body)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil, ErrBookmarkNotFound
	case repositories.IsDuplicateOf(err, repositories.ConstraintBookmarkURL):
		return nil, ErrURLExists
	case err != nil:
		logger.Log.Errorw("failed to update bookmark", "bookmark_id", bookmarkID, "err", err)
		return nil, err
	}

	logger.Log.Infow("bookmark updated", "bookmark_id", bm.BookmarkID, "user_id", auth.UserID)
	return bm, nil
}

// Delete removes a bookmark owned by the caller.
func (svc *BookmarkService) Delete(ctx context.Context, auth models.AuthContext, bookmarkID int64) error {
	err := svc.writer.Delete(ctx, bookmarkID, auth.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrBookmarkNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete bookmark", "bookmark_id", bookmarkID, "err", err)
		return err
	}

	logger.Log.Infow("bookmark deleted", "bookmark_id", bookmarkID, "user_id", auth.UserID)
	return nil
}

// Stats returns visit counters of all the caller's bookmarks.
func (svc *BookmarkService) Stats(ctx context.Context, auth models.AuthContext) ([]models.BookmarkStat, error) {
	stats, err := svc.reader.StatsByUser(ctx, auth.UserID)
	if err != nil {
		logger.Log.Errorw("failed to load stats", "user_id", auth.UserID, "err", err)
		return nil, err
	}
	return stats, nil
}
