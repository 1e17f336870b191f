package services_test

import (
	"context"
	"sort"
	"sync"

	"github.com/sbilibin2017/bookmarker/internal/models"
	"github.com/sbilibin2017/bookmarker/internal/repositories"
)

// memStore is an in-memory bookmarks table honoring the same ownership
// and uniqueness rules as the SQL repositories.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*models.BookmarkDB
}

func newMemStore() *memStore {
	return &memStore{rows: map[int64]*models.BookmarkDB{}}
}

func (s *memStore) GetByIDForUser(_ context.Context, bookmarkID, userID int64) (*models.BookmarkDB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bm, ok := s.rows[bookmarkID]
	if !ok || bm.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	cp := *bm
	return &cp, nil
}

func (s *memStore) owned(userID int64) []models.BookmarkDB {
	var out []models.BookmarkDB
	for _, bm := range s.rows {
		if bm.UserID == userID {
			out = append(out, *bm)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookmarkID < out[j].BookmarkID })
	return out
}

func (s *memStore) ListByUser(_ context.Context, userID int64, limit, offset int) ([]models.BookmarkDB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.owned(userID)
	if offset >= len(all) {
		return []models.BookmarkDB{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *memStore) CountByUser(_ context.Context, userID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.owned(userID)), nil
}

func (s *memStore) StatsByUser(_ context.Context, userID int64) ([]models.BookmarkStat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := []models.BookmarkStat{}
	for _, bm := range s.owned(userID) {
		stats = append(stats, models.BookmarkStat{BookmarkID: bm.BookmarkID, URL: bm.URL, ShortURL: bm.ShortURL, Visits: bm.Visits})
	}
	return stats, nil
}

func (s *memStore) ExistsByURL(_ context.Context, url string, excludeID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, bm := range s.rows {
		if bm.URL == url && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) ExistsByShortCode(_ context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, bm := range s.rows {
		if bm.ShortURL == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) Save(_ context.Context, userID int64, url, body, shortURL string) (*models.BookmarkDB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, bm := range s.rows {
		if bm.URL == url {
			return nil, &repositories.DuplicateError{Constraint: repositories.ConstraintBookmarkURL}
		}
		if bm.ShortURL == shortURL {
			return nil, &repositories.DuplicateError{Constraint: repositories.ConstraintBookmarkShort}
		}
	}
	s.nextID++
	bm := &models.BookmarkDB{BookmarkID: s.nextID, UserID: userID, URL: url, Body: body, ShortURL: shortURL}
	s.rows[bm.BookmarkID] = bm
	cp := *bm
	return &cp, nil
}

func (s *memStore) Update(_ context.Context, bookmarkID, userID int64, url, body string) (*models.BookmarkDB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bm, ok := s.rows[bookmarkID]
	if !ok || bm.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	bm.URL, bm.Body = url, body
	cp := *bm
	return &cp, nil
}

func (s *memStore) Delete(_ context.Context, bookmarkID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bm, ok := s.rows[bookmarkID]
	if !ok || bm.UserID != userID {
		return repositories.ErrNotFound
	}
	delete(s.rows, bookmarkID)
	return nil
}

func (s *memStore) IncrementVisits(_ context.Context, shortURL string) (*models.BookmarkDB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, bm := range s.rows {
		if bm.ShortURL == shortURL {
			bm.Visits++
			cp := *bm
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}
