package repository

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PerPageAll requests every matching row in a single page.
const PerPageAll = "all"

// PageRequest carries the pagination and sorting query parameters.
type PageRequest struct {
	Page      int
	PerPage   int
	All       bool
	SortBy    string
	SortOrder string
}

// ParsePageRequest reads page, per_page, sort_by and sort_order. Missing or
// invalid numbers fall back to page 1 and defaultPerPage.
func ParsePageRequest(values url.Values, defaultPerPage int) PageRequest {
	req := PageRequest{
		Page:      1,
		PerPage:   defaultPerPage,
		SortBy:    strings.TrimSpace(values.Get("sort_by")),
		SortOrder: strings.ToLower(strings.TrimSpace(values.Get("sort_order"))),
	}

	if p, err := strconv.Atoi(values.Get("page")); err == nil && p > 0 {
		req.Page = p
	}

	perPage := strings.TrimSpace(values.Get("per_page"))
	if strings.EqualFold(perPage, PerPageAll) {
		req.All = true
	} else if n, err := strconv.Atoi(perPage); err == nil && n > 0 {
		req.PerPage = n
	}
	return req
}

// Desc reports whether results should be sorted descending. Anything other
// than "asc" is descending.
func (r PageRequest) Desc() bool {
	return r.SortOrder != "asc"
}

func (r PageRequest) offset() int {
	return (r.Page - 1) * r.PerPage
}

// SortSpec lists the sortable columns of an entity. Columns maps the public
// sort_by name to the qualified column. Default orders results when sort_by is
// empty or not allow-listed; when nil, DefaultColumn is used.
type SortSpec struct {
	Columns       map[string]string
	DefaultColumn string
	Default       func(db *gorm.DB, desc bool) *gorm.DB
}

// Apply adds the ORDER BY clause for req to db.
func (s SortSpec) Apply(db *gorm.DB, req PageRequest) *gorm.DB {
	desc := req.Desc()
	if column, ok := s.Columns[req.SortBy]; ok && req.SortBy != "" {
		return db.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})
	}
	if s.Default != nil {
		return s.Default(db, desc)
	}
	column := s.DefaultColumn
	if column == "" {
		column = "created_at"
	}
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})
}

// PageMeta describes the page returned.
type PageMeta struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
}

// Page is one page of results.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// Paginate counts and fetches the rows matched by query. The query is cloned,
// so callers may reuse it afterwards.
func Paginate[T any](ctx context.Context, query *gorm.DB, req PageRequest, sort SortSpec) (*Page[T], error) {
	data := make([]T, 0)

	if req.All {
		q := sort.Apply(query.Session(&gorm.Session{}).WithContext(ctx), req)
		if err := q.Find(&data).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch rows: %w", err)
		}
		return &Page[T]{
			Data: data,
			Meta: PageMeta{
				Total:       int64(len(data)),
				CurrentPage: 1,
				LastPage:    1,
				PerPage:     len(data),
			},
		}, nil
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 15
	}

	var total int64
	if err := query.Session(&gorm.Session{}).WithContext(ctx).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count rows: %w", err)
	}

	if total > 0 {
		q := sort.Apply(query.Session(&gorm.Session{}).WithContext(ctx), req)
		if err := q.Offset(req.offset()).Limit(req.PerPage).Find(&data).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch rows: %w", err)
		}
	}

	lastPage := int(math.Ceil(float64(total) / float64(req.PerPage)))
	if lastPage < 1 {
		lastPage = 1
	}

	return &Page[T]{
		Data: data,
		Meta: PageMeta{
			Total:       total,
			CurrentPage: req.Page,
			LastPage:    lastPage,
			PerPage:     req.PerPage,
		},
	}, nil
}
