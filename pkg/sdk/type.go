package sdk

import (
	"net/url"
	"strconv"
	"time"

	"adminboard/pkg/paginator"
)

// Status string values accepted by the API.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusAll      = "all"
)

// Group is a group membership as returned by the API.
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is a user as returned by the API.
type User struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	Groups      []Group   `json:"groups"`
}

// UsersPage is one page of a user listing plus its pagination metadata.
type UsersPage struct {
	Items     []User                      `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

// ListParams fully determine a list result. The canonical form (Key) is
// both the cache key and the fetch identity: two equal keys always name
// the same logical page.
type ListParams struct {
	Page     int
	PageSize int
	Query    string
	Status   string
}

// normalized fills in defaults so equivalent parameter sets share one
// canonical form.
func (p ListParams) normalized() ListParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.Status == "" {
		p.Status = StatusAll
	}
	return p
}

// Key returns the canonical cache key for the parameters.
func (p ListParams) Key() string {
	p = p.normalized()
	return "page=" + strconv.Itoa(p.Page) +
		"&pageSize=" + strconv.Itoa(p.PageSize) +
		"&query=" + url.QueryEscape(p.Query) +
		"&status=" + p.Status
}

// values returns the explicit query string sent to the API.
func (p ListParams) values() url.Values {
	p = p.normalized()
	v := url.Values{}
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("pageSize", strconv.Itoa(p.PageSize))
	if p.Query != "" {
		v.Set("query", p.Query)
	}
	v.Set("status", p.Status)
	return v
}
