package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params holds the page window requested by the client.
type Params struct {
	Page     int
	PageSize int
}

// FromRequest reads page and page_size query parameters, falling back to
// sane defaults on missing or unparseable values.
func FromRequest(c echo.Context) Params {
	page := 1
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}

	pageSize := DefaultPageSize
	if v, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && v > 0 {
		pageSize = v
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return Params{Page: page, PageSize: pageSize}
}

// Offset returns the row offset for the requested page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Scope returns a GORM scope applying the page window to a query.
func (p Params) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.PageSize)
	}
}

// Response is the paginated list envelope returned to clients.
type Response struct {
	Count    int64       `json:"count"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Results  interface{} `json:"results"`
}

// NewResponse wraps a page of results with its metadata.
func NewResponse(p Params, count int64, results interface{}) Response {
	return Response{
		Count:    count,
		Page:     p.Page,
		PageSize: p.PageSize,
		Results:  results,
	}
}
