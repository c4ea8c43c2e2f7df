// Package usecase defines the application's use-case interfaces and their
// input/output types.
package usecase

// PageInfo describes one page of a listing.
type PageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Paged bundles a page of results with its pagination metadata.
type Paged[T any] struct {
	Data       []T      `json:"data"`
	Pagination PageInfo `json:"pagination"`
}

// NewPageInfo normalizes page/limit and derives the page count.
func NewPageInfo(page, limit int, total int64) PageInfo {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return PageInfo{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

const (
	// DefaultPageLimit is applied when a listing request omits the limit.
	DefaultPageLimit = 20
	// MaxPageLimit caps the page size of any listing.
	MaxPageLimit = 100
)
