package helpers

import (
	"net/http"
	"strconv"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PaginationParams is a validated page selection.
type PaginationParams struct {
	Page     int
	PageSize int
}

// ParsePagination reads page and page_size from the request query string
// and clamps them to valid ranges. Invalid or missing values fall back
// to defaults.
func ParsePagination(r *http.Request) PaginationParams {
	page := DefaultPage
	if s := r.URL.Query().Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			page = v
		}
	}
	pageSize := DefaultPageSize
	if s := r.URL.Query().Get("page_size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			pageSize = v
			if pageSize > MaxPageSize {
				pageSize = MaxPageSize
			}
		}
	}
	return PaginationParams{Page: page, PageSize: pageSize}
}

// Slice returns the sub-range of a list selected by the params.
func Slice[T any](list []T, params PaginationParams) []T {
	from := (params.Page - 1) * params.PageSize
	if from >= len(list) {
		return []T{}
	}
	to := from + params.PageSize
	if to > len(list) {
		to = len(list)
	}
	return list[from:to]
}

// PaginationMeta is the pagination metadata included in paginated list responses.
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta builds PaginationMeta from the current page, page size, and total count.
// TotalPages is computed as ceiling(total / pageSize); if pageSize is 0, TotalPages is 0.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return PaginationMeta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
