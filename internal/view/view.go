// Package view holds the pure screen-state logic: filtering, pagination and
// selection are plain functions of their inputs so they can be tested without
// a running backend.
package view

import (
	"strings"

	"github.com/shelfwatch/inventory-screen/internal/models"
)

// StatusFilter narrows the list by derived stock status.
type StatusFilter string

const (
	FilterAll  StatusFilter = "all"
	FilterLow  StatusFilter = "low"
	FilterOut  StatusFilter = "out"
	FilterHigh StatusFilter = "high"
)

func (f StatusFilter) Valid() bool {
	switch f {
	case FilterAll, FilterLow, FilterOut, FilterHigh:
		return true
	}
	return false
}

// Matches reports whether a product quantity passes the filter.
func (f StatusFilter) Matches(quantity int) bool {
	switch f {
	case FilterLow:
		return quantity > 0 && quantity <= 10
	case FilterOut:
		return quantity == 0
	case FilterHigh:
		return quantity > 10
	default:
		return true
	}
}

// PageSizes are the only page sizes the screen offers.
var PageSizes = []int{10, 20, 40, 80, 100}

func ValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Query is the operator-controlled part of the view state.
type Query struct {
	Search   string
	Status   StatusFilter
	Page     int
	PageSize int
}

func DefaultQuery(pageSize int) Query {
	if !ValidPageSize(pageSize) {
		pageSize = PageSizes[0]
	}
	return Query{Status: FilterAll, Page: 1, PageSize: pageSize}
}

// WithSearch returns the query with a new search term. Changing the term
// jumps back to page 1 so the view never lands on an out-of-range page.
func (q Query) WithSearch(term string) Query {
	if term != q.Search {
		q.Search = term
		q.Page = 1
	}
	return q
}

// WithStatus behaves like WithSearch for the status filter.
func (q Query) WithStatus(f StatusFilter) Query {
	if f != q.Status {
		q.Status = f
		q.Page = 1
	}
	return q
}

func (q Query) WithPage(page int) Query {
	q.Page = page
	return q
}

func (q Query) WithPageSize(size int) Query {
	q.PageSize = size
	return q
}

// Page is the derived, renderable slice of the product list.
type Page struct {
	Items      []models.Product
	TotalCount int
	TotalPages int
}

// Filter keeps products whose name or description contains the search term
// (case-insensitive) and whose quantity passes the status filter.
func Filter(products []models.Product, term string, status StatusFilter) []models.Product {
	term = strings.ToLower(term)
	filtered := []models.Product{}
	for _, p := range products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if !status.Matches(p.Quantity) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// TotalPages is never below 1, even for an empty list.
func TotalPages(count, pageSize int) int {
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate slices the filtered list for one page. A page beyond the end
// yields an empty slice rather than an error.
func Paginate(filtered []models.Product, page, pageSize int) Page {
	result := Page{
		TotalCount: len(filtered),
		TotalPages: TotalPages(len(filtered), pageSize),
	}
	start := (page - 1) * pageSize
	if start < 0 || start >= len(filtered) {
		result.Items = []models.Product{}
		return result
	}
	end := min(start+pageSize, len(filtered))
	result.Items = filtered[start:end]
	return result
}

// Apply runs the whole reducer: filter then paginate.
func Apply(products []models.Product, q Query) Page {
	return Paginate(Filter(products, q.Search, q.Status), q.Page, q.PageSize)
}
