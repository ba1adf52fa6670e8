package pkg

import (
	"math"
	"net/url"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/membercore/membercore/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100

	// defaultSortColumn orders lists by last modification when the caller
	// supplies no sort token.
	defaultSortColumn = "updated_at"
)

// reservedParams lists query parameter names used for pagination, sorting,
// and search, not for filtering.
var reservedParams = map[string]bool{
	"page":      true,
	"page_size": true,
	"sort":      true,
	"search":    true,
}

// ListOptions confines which columns callers may filter and sort by.
// Free-text search is not confined: it spans every column of the model.
type ListOptions struct {
	FilterFields []string
	SortFields   []string
}

// ParsePageRequest extracts pagination, sorting, search, and filtering
// parameters from the request query string. Malformed sort tokens fail with
// a validation error; out-of-range page values are coerced to defaults.
func ParsePageRequest(c *gin.Context) (domain.PageRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))

	order, err := ParseSortTokens(c.Query("sort"))
	if err != nil {
		return domain.PageRequest{}, err
	}

	filter := make(map[string]any)
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] {
			continue
		}
		if len(values) > 0 && values[0] != "" {
			filter[key] = values[0]
		}
	}

	return normalize(domain.PageRequest{
		Page:      page,
		PageSize:  pageSize,
		Filter:    filter,
		Search:    c.Query("search"),
		Order:     order,
		RouteBase: c.Request.URL.Path,
	}), nil
}

// normalize coerces page and page size to defaults when absent or
// non-positive and caps the page size.
func normalize(req domain.PageRequest) domain.PageRequest {
	if req.Page < 1 {
		req.Page = defaultPage
	}
	if req.PageSize < 1 {
		req.PageSize = defaultPageSize
	}
	if req.PageSize > maxPageSize {
		req.PageSize = maxPageSize
	}
	return req
}

// Paginate runs the base query through the filter/search predicate, issues
// one count query and one data query, and assembles the page with metadata
// and navigation URLs.
//
// base must already carry the model (db.Model(&T{})) and may be pre-filtered
// or pre-joined by the caller; the engine assumes nothing about the record
// shape beyond its column names.
func Paginate[T any](base *gorm.DB, req domain.PageRequest, opts ListOptions) (*domain.PageResult[T], error) {
	req = normalize(req)

	q := base.Scopes(Filter(req.Filter, opts.FilterFields))

	if req.Search != "" {
		columns, err := ModelColumns(base, new(T))
		if err != nil {
			return nil, err
		}
		q = q.Scopes(Search(req.Search, columns))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, mapQueryError(err)
	}

	var rows []T
	if err := q.Scopes(Order(req.Order, opts.SortFields), Page(req)).Find(&rows).Error; err != nil {
		return nil, mapQueryError(err)
	}
	if rows == nil {
		rows = []T{}
	}

	totalPages := int(math.Ceil(float64(total) / float64(req.PageSize)))

	return &domain.PageResult[T]{
		Data: rows,
		PageInfo: domain.PageInfo{
			CurrentPage:     req.Page,
			TotalPages:      totalPages,
			HasNextPage:     req.Page < totalPages,
			HasPreviousPage: req.Page > 1 && totalPages > 0,
			TotalCount:      total,
		},
		Navigation: buildNavigation(req.RouteBase, req.Page, req.PageSize, totalPages),
	}, nil
}

// Page returns a GORM scope that applies LIMIT and OFFSET for the request.
func Page(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (req.Page - 1) * req.PageSize
		return db.Offset(offset).Limit(req.PageSize)
	}
}

// Filter returns a GORM scope that applies WHERE conditions for each filter
// entry. String values produce a substring LIKE match; any other scalar an
// exact match. Empty strings and nils are skipped. Only columns present in
// the allowed list are applied; others are silently ignored.
func Filter(filter map[string]any, allowed []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for column, value := range filter {
			if !validFieldName.MatchString(column) || !isAllowed(column, allowed) {
				continue
			}
			switch v := value.(type) {
			case nil:
				continue
			case string:
				if v == "" {
					continue
				}
				db = db.Where(column+" LIKE ?", "%"+v+"%")
			default:
				db = db.Where(column+" = ?", v)
			}
		}
		return db
	}
}

// Search returns a GORM scope that ORs a substring match across the given
// columns. Columns are cast to text so non-string columns remain searchable
// on PostgreSQL.
func Search(term string, columns []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" || len(columns) == 0 {
			return db
		}
		cond := db.Session(&gorm.Session{NewDB: true})
		for i, column := range columns {
			if !validFieldName.MatchString(column) {
				continue
			}
			clause := "CAST(" + column + " AS TEXT) LIKE ?"
			if i == 0 {
				cond = cond.Where(clause, "%"+term+"%")
			} else {
				cond = cond.Or(clause, "%"+term+"%")
			}
		}
		return db.Where(cond)
	}
}

// Order returns a GORM scope that applies each ordering clause in sequence,
// first-listed taking precedence. Columns not in the allowed list are
// silently ignored. When nothing applies, lists fall back to ascending
// last-modified order.
func Order(specs []domain.OrderSpec, allowed []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		applied := false
		for _, spec := range specs {
			if !validFieldName.MatchString(spec.Column) || !isAllowed(spec.Column, allowed) {
				continue
			}
			db = db.Order(spec.Column + " " + string(spec.Direction))
			applied = true
		}
		if !applied {
			db = db.Order(defaultSortColumn + " " + string(domain.SortAsc))
		}
		return db
	}
}

// buildNavigation computes page navigation URLs from the route base alone.
// All URLs are omitted when the route base is empty or there are no pages;
// next/prev are omitted where that move is not possible.
func buildNavigation(routeBase string, page, pageSize, totalPages int) domain.Navigation {
	if routeBase == "" || totalPages == 0 {
		return domain.Navigation{}
	}

	nav := domain.Navigation{
		FirstPageURL: pageURL(routeBase, 1, pageSize),
		LastPageURL:  pageURL(routeBase, totalPages, pageSize),
	}
	if page < totalPages {
		nav.NextPageURL = pageURL(routeBase, page+1, pageSize)
	}
	if page > 1 {
		nav.PrevPageURL = pageURL(routeBase, page-1, pageSize)
	}
	return nav
}

// pageURL substitutes page and page_size query parameters into the route base.
func pageURL(routeBase string, page, pageSize int) string {
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	v.Set("page_size", strconv.Itoa(pageSize))
	return routeBase + "?" + v.Encode()
}

// mapQueryError wraps store-level failures as internal errors; the page
// engine surfaces no database detail of its own.
func mapQueryError(err error) error {
	return domain.NewAppError(domain.CodeInternal, "query error", err)
}

// isAllowed checks if a field name is in the allowed list.
func isAllowed(field string, allowed []string) bool {
	return slices.Contains(allowed, field)
}
