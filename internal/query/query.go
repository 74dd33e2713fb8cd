// Package query implements the list-query contract shared by every paged
// collection endpoint: canonical request parameters, paged-response
// normalization and the page-number window shown by listing views.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

// SortField enumerates the sortable columns a collection endpoint accepts.
type SortField string

const (
	SortCreatedAt SortField = "createdAt"
	SortPrice     SortField = "price"
	SortName      SortField = "name"
	SortRating    SortField = "rating"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	Asc  SortOrder = "ASC"
	Desc SortOrder = "DESC"
)

// ListParams describes one page of a collection. The zero value means
// "first page, no filters, newest first". Optional numeric bounds are
// pointers: nil means no constraint, never "match zero".
type ListParams struct {
	Page     int
	Keyword  string
	Category string

	SortBy    SortField
	SortOrder SortOrder

	MinPrice *float64
	MaxPrice *float64
	MinAge   *int
	MaxAge   *int

	Featured bool
}

// withDefaults resolves unset fields to their documented defaults.
func (p ListParams) withDefaults() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.SortBy == "" {
		p.SortBy = SortCreatedAt
	}
	if p.SortOrder == "" {
		p.SortOrder = Desc
	}
	return p
}

// Values builds the canonical wire representation. Fields at their
// "no constraint" default are omitted entirely; page, sortBy, sortOrder
// and featured are always sent because their defaults are meaningful
// values rather than absence.
func (p ListParams) Values() url.Values {
	p = p.withDefaults()

	v := url.Values{}
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("sortBy", string(p.SortBy))
	v.Set("sortOrder", string(p.SortOrder))
	v.Set("featured", strconv.FormatBool(p.Featured))

	if kw := strings.TrimSpace(p.Keyword); kw != "" {
		v.Set("keyword", kw)
	}
	if p.Category != "" {
		v.Set("category", p.Category)
	}
	if p.MinPrice != nil {
		v.Set("minPrice", strconv.FormatFloat(*p.MinPrice, 'f', -1, 64))
	}
	if p.MaxPrice != nil {
		v.Set("maxPrice", strconv.FormatFloat(*p.MaxPrice, 'f', -1, 64))
	}
	if p.MinAge != nil {
		v.Set("minAge", strconv.Itoa(*p.MinAge))
	}
	if p.MaxAge != nil {
		v.Set("maxAge", strconv.Itoa(*p.MaxAge))
	}
	return v
}

// Number coerces a user-supplied string to an optional price bound.
// Empty or non-numeric input yields nil (the constraint is dropped,
// never sent as NaN).
func Number(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Age coerces a user-supplied string to an optional age bound.
func Age(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
