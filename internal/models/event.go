package models

// Bookmark event types.
const (
	EventBookmarkCreated = "bookmark.created"
	EventBookmarkVisited = "bookmark.visited"
)

// BookmarkEvent is published whenever a bookmark is created or visited.
type BookmarkEvent struct {
	EventID    string `json:"event_id"`    // Unique identifier of the event
	Type       string `json:"type"`        // One of the Event* constants
	Timestamp  int64  `json:"timestamp"`   // Unix seconds
	BookmarkID int64  `json:"bookmark_id"` // Bookmark the event is about
	UserID     int64  `json:"user_id"`     // Owner of the bookmark
	ShortURL   string `json:"short_url"`   // Short code
	URL        string `json:"url"`         // Target URL
}
