package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/bookmarker/internal/models"
)

const bookmarkColumns = `id, user_id, url, body, short_url, visits, created_at, updated_at`

// BookmarkReadRepository handles bookmark lookups.
type BookmarkReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBookmarkReadRepository(db *sqlx.DB, txGetter TxGetter) *BookmarkReadRepository {
	return &BookmarkReadRepository{db: db, txGetter: txGetter}
}

// GetByIDForUser returns the bookmark only when userID owns it.
func (r *BookmarkReadRepository) GetByIDForUser(ctx context.Context, bookmarkID, userID int64) (*models.BookmarkDB, error) {
	query := `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE id = $1 AND user_id = $2`

	var bm models.BookmarkDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &bm, query, bookmarkID, userID)

	logQuery(query, []any{bookmarkID, userID}, bm.BookmarkID, err)

	if err != nil {
		return nil, translate(err)
	}
	return &bm, nil
}

// ListByUser returns one page of the user's bookmarks in insertion order.
func (r *BookmarkReadRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.BookmarkDB, error) {
	query := `
		SELECT ` + bookmarkColumns + `
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY id ASC
		LIMIT $2 OFFSET $3
	`

	bookmarks := []models.BookmarkDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &bookmarks, query, userID, limit, offset)

	logQuery(query, []any{userID, limit, offset}, len(bookmarks), err)

	if err != nil {
		return nil, translate(err)
	}
	return bookmarks, nil
}

// CountByUser returns the number of bookmarks userID owns.
func (r *BookmarkReadRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM bookmarks WHERE user_id = $1`

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, userID)

	logQuery(query, []any{userID}, count, err)

	return count, translate(err)
}

// StatsByUser returns visit counters for every bookmark userID owns.
func (r *BookmarkReadRepository) StatsByUser(ctx context.Context, userID int64) ([]models.BookmarkStat, error) {
	const query = `
		SELECT id, url, short_url, visits
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY id ASC
	`

	stats := []models.BookmarkStat{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &stats, query, userID)

	logQuery(query, []any{userID}, len(stats), err)

	if err != nil {
		return nil, translate(err)
	}
	return stats, nil
}

// ExistsByShortCode reports whether any bookmark already uses code.
func (r *BookmarkReadRepository) ExistsByShortCode(ctx context.Context, code string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM bookmarks WHERE short_url = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, code)

	logQuery(query, []any{code}, exists, err)

	return exists, translate(err)
}

// ExistsByURL reports whether a bookmark other than excludeID already stores url.
// Pass 0 to check against every bookmark.
func (r *BookmarkReadRepository) ExistsByURL(ctx context.Context, url string, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM bookmarks WHERE url = $1 AND id <> $2)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, url, excludeID)

	logQuery(query, []any{url, excludeID}, exists, err)

	return exists, translate(err)
}

// BookmarkWriteRepository handles bookmark mutations.
type BookmarkWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBookmarkWriteRepository(db *sqlx.DB, txGetter TxGetter) *BookmarkWriteRepository {
	return &BookmarkWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a bookmark with zero visits and returns the stored row.
func (r *BookmarkWriteRepository) Save(ctx context.Context, userID int64, url, body, shortURL string) (*models.BookmarkDB, error) {
	query := `
		INSERT INTO bookmarks (user_id, url, body, short_url, visits, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, NOW(), NOW())
		RETURNING ` + bookmarkColumns

	var bm models.BookmarkDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &bm, query, userID, url, body, shortURL)

	logQuery(query, []any{userID, url, body, shortURL}, bm.BookmarkID, err)

	if err != nil {
		return nil, translate(err)
	}
	return &bm, nil
}

// Update replaces url and body of a bookmark owned by userID.
// The short code and visit counter are left as they are.
func (r *BookmarkWriteRepository) Update(ctx context.Context, bookmarkID, userID int64, url, body string) (*models.BookmarkDB, error) {
	query := `
		UPDATE bookmarks
		SET url = $3, body = $4, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + bookmarkColumns

	var bm models.BookmarkDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &bm, query, bookmarkID, userID, url, body)

	logQuery(query, []any{bookmarkID, userID, url, body}, bm.BookmarkID, err)

	if err != nil {
		return nil, translate(err)
	}
	return &bm, nil
}

// Delete removes a bookmark owned by userID.
func (r *BookmarkWriteRepository) Delete(ctx context.Context, bookmarkID, userID int64) error {
	const query = `DELETE FROM bookmarks WHERE id = $1 AND user_id = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, bookmarkID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{bookmarkID, userID}, rowsAffected, err)

	if err != nil {
		return translate(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementVisits bumps the counter of the bookmark with shortURL by one
// and returns the updated row.
func (r *BookmarkWriteRepository) IncrementVisits(ctx context.Context, shortURL string) (*models.BookmarkDB, error) {
	query := `
		UPDATE bookmarks
		SET visits = visits + 1
		WHERE short_url = $1
		RETURNING ` + bookmarkColumns

	var bm models.BookmarkDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &bm, query, shortURL)

	logQuery(query, []any{shortURL}, bm.Visits, err)

	if err != nil {
		return nil, translate(err)
	}
	return &bm, nil
}
