package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageQuery is a normalized list request. Limit has no upper bound.
type PageQuery struct {
	Page      int
	Limit     int
	Offset    int
	Search    string
	SortBy    string
	SortOrder string
}

type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type Page[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}

// ParsePageQuery reads page, limit, search, sort_by and sort_order from the query string.
func ParsePageQuery(c *gin.Context) PageQuery {
	q := NormalizePageQuery(c.Query("page"), c.Query("limit"), c.Query("search"))
	q.SortBy = strings.TrimSpace(c.Query("sort_by"))
	q.SortOrder = strings.ToLower(strings.TrimSpace(c.Query("sort_order")))
	return q
}

// NormalizePageQuery turns raw query values into bounded integers.
// Non-numeric or non-positive values fall back to the defaults.
func NormalizePageQuery(page, limit, search string) PageQuery {
	p := positiveOr(page, DefaultPage)
	l := positiveOr(limit, DefaultLimit)
	return PageQuery{
		Page:   p,
		Limit:  l,
		Offset: offset(p, l),
		Search: strings.TrimSpace(search),
	}
}

// TotalPages is ceil(total/limit), and 1 for an empty result set.
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		limit = DefaultLimit
	}
	if total <= 0 {
		return 1
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}

// offset saturates at math.MaxInt, which still selects an empty page.
func offset(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

func NewPage[T any](items []T, q PageQuery, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items: items,
		Meta: PageMeta{
			Page:       q.Page,
			Limit:      q.Limit,
			Total:      total,
			TotalPages: TotalPages(total, q.Limit),
		},
	}
}

func positiveOr(raw string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 {
		return def
	}
	return v
}
