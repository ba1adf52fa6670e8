package domain

import "time"

// BaseModel is the common base struct for all domain models.
// It replaces gorm.Model to avoid the implicit soft delete behavior of DeletedAt.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SortDirection is an ORDER BY direction, normalized to upper case.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// OrderSpec is one decoded ordering clause. Specs are applied in sequence,
// first-listed takes precedence.
type OrderSpec struct {
	Column    string
	Direction SortDirection
}

// PageRequest holds pagination, sorting, filtering, and search parameters
// for a single list call.
//
// String filter values match as substrings; any other scalar matches by
// equality. Empty values are skipped, not applied as "match nothing".
type PageRequest struct {
	Page      int
	PageSize  int
	Filter    map[string]any
	Search    string
	Order     []OrderSpec
	RouteBase string
}

// PageInfo describes the position of a page within the full result set.
type PageInfo struct {
	CurrentPage     int   `json:"current_page"`
	TotalPages      int   `json:"total_pages"`
	HasNextPage     bool  `json:"has_next_page"`
	HasPreviousPage bool  `json:"has_previous_page"`
	TotalCount      int64 `json:"total_count"`
}

// Navigation holds ready-to-use URLs for moving between pages. URLs are
// omitted where navigation is not possible (e.g. no next page).
type Navigation struct {
	NextPageURL  string `json:"next_page_url,omitempty"`
	PrevPageURL  string `json:"prev_page_url,omitempty"`
	FirstPageURL string `json:"first_page_url,omitempty"`
	LastPageURL  string `json:"last_page_url,omitempty"`
}

// PageResult is one bounded, ordered page of records plus metadata.
type PageResult[T any] struct {
	Data       []T        `json:"data"`
	PageInfo   PageInfo   `json:"page_info"`
	Navigation Navigation `json:"navigation"`
}
