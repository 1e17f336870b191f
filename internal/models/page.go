package models

// Pagination defaults.
const (
	DefaultPage    = 1
	DefaultPerPage = 5
	MaxPerPage     = 100
)

// PageMeta describes one page of a paginated listing.
type PageMeta struct {
	Page       int  `json:"page"`
	Pages      int  `json:"pages"`
	TotalCount int  `json:"total_count"`
	PrevPage   *int `json:"prev_page"`
	NextPage   *int `json:"next_page"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewPageMeta computes pagination metadata for a 1-indexed page.
func NewPageMeta(page, perPage, total int) PageMeta {
	pages := 0
	if perPage > 0 && total > 0 {
		pages = (total + perPage - 1) / perPage
	}

	meta := PageMeta{
		Page:       page,
		Pages:      pages,
		TotalCount: total,
		HasPrev:    page > 1,
		HasNext:    page < pages,
	}
	if meta.HasPrev {
		prev := page - 1
		meta.PrevPage = &prev
	}
	if meta.HasNext {
		next := page + 1
		meta.NextPage = &next
	}
	return meta
}

// BookmarkPage is a page of bookmarks owned by one user.
type BookmarkPage struct {
	Items []BookmarkDB
	Meta  PageMeta
}
