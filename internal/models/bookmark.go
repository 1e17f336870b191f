package models

import (
	"time"
)

// BookmarkDB represents a bookmark row in the database
type BookmarkDB struct {
	BookmarkID int64     `json:"id" db:"id"`                 // Primary key
	UserID     int64     `json:"-" db:"user_id"`             // Owner
	URL        string    `json:"url" db:"url"`               // Target URL, unique across all bookmarks
	Body       string    `json:"body" db:"body"`             // Free-text note
	ShortURL   string    `json:"short_url" db:"short_url"`   // Immutable 3-character redirect code
	Visits     int64     `json:"visits" db:"visits"`         // Redirect counter
	CreatedAt  time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// BookmarkStat is a single row of the per-user visit statistics.
type BookmarkStat struct {
	BookmarkID int64  `json:"id" db:"id"`
	URL        string `json:"url" db:"url"`
	ShortURL   string `json:"short_url" db:"short_url"`
	Visits     int64  `json:"visits" db:"visits"`
}
