package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PageSize is the fixed number of users requested per page.
const PageSize = 10

// FilterField selects the attribute a search term is matched against.
type FilterField int

const (
	FilterNone FilterField = iota
	FilterEmail
	FilterPhone
)

// ParseFilterField accepts the wire names ("email", "phone") and "none" or
// the empty string for no filter.
func ParseFilterField(s string) (FilterField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return FilterNone, nil
	case "email":
		return FilterEmail, nil
	case "phone":
		return FilterPhone, nil
	}
	return FilterNone, fmt.Errorf("unknown filter field %q", s)
}

// String returns the wire name of the field; FilterNone has none.
func (f FilterField) String() string {
	switch f {
	case FilterEmail:
		return "email"
	case FilterPhone:
		return "phone"
	}
	return ""
}

// Next cycles None -> Email -> Phone -> None.
func (f FilterField) Next() FilterField {
	switch f {
	case FilterNone:
		return FilterEmail
	case FilterEmail:
		return FilterPhone
	}
	return FilterNone
}

// PageQuery identifies one page of the collection plus an optional filter.
type PageQuery struct {
	Page  int
	Field FilterField
	Text  string
}

// Normalize clamps Page to the first page.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	return q
}

// Filtered reports whether the query carries filter parameters. Text is
// ignored when Field is FilterNone.
func (q PageQuery) Filtered() bool {
	return q.Field != FilterNone && q.Text != ""
}

// Values encodes the query string of a list request. Unfiltered queries
// carry no field/search parameters at all.
func (q PageQuery) Values() url.Values {
	q = q.Normalize()

	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(PageSize))
	if !q.Filtered() {
		return v
	}
	v.Set("field", q.Field.String())
	v.Set("search", q.Text)
	return v
}

// PageResult is one server-paginated slice of the directory. Users keep the
// order the server returned them in.
type PageResult struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
}

// TotalPages returns the number of pages for total records, at least one.
func TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + PageSize - 1) / PageSize
}
