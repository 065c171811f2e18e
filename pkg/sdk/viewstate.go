package sdk

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/friendsofgo/errors"
)

// View state defaults. A missing URL parameter always means its default.
const (
	DefaultPage     = 1
	DefaultPageSize = 15
)

// State is the shareable view state of the user list: pagination,
// status filter and search text. It round-trips through a URL query
// string so a link reproduces the view.
type State struct {
	Page     int
	PageSize int
	Status   string
	Query    string
}

// DefaultState returns the initial view: first page, all statuses,
// empty search.
func DefaultState() State {
	return State{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Status:   StatusAll,
	}
}

// WithPage returns the state moved to the given page.
func (s State) WithPage(page int) State {
	if page < 1 {
		page = DefaultPage
	}
	s.Page = page
	return s
}

// WithQuery returns the state with new search text. Changing the filter
// resets pagination to the first page.
func (s State) WithQuery(query string) State {
	s.Query = query
	s.Page = DefaultPage
	return s
}

// WithStatus returns the state with a new status filter. Changing the
// filter resets pagination to the first page.
func (s State) WithStatus(status string) State {
	s.Status = status
	s.Page = DefaultPage
	return s
}

// WithPageSize returns the state with a new page size, back on page one.
func (s State) WithPageSize(size int) State {
	if size < 1 {
		size = DefaultPageSize
	}
	s.PageSize = size
	s.Page = DefaultPage
	return s
}

// ListParams converts the view state to fetch parameters.
func (s State) ListParams() ListParams {
	return ListParams{
		Page:     s.Page,
		PageSize: s.PageSize,
		Query:    s.Query,
		Status:   s.Status,
	}
}

// Values encodes the state as URL query parameters with defaults
// omitted: page=1, status=all, the default page size and an empty query
// are never written.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Page > DefaultPage {
		v.Set("page", strconv.Itoa(s.Page))
	}
	if s.PageSize > 0 && s.PageSize != DefaultPageSize {
		v.Set("pageSize", strconv.Itoa(s.PageSize))
	}
	if s.Status != "" && s.Status != StatusAll {
		v.Set("status", s.Status)
	}
	if s.Query != "" {
		v.Set("query", s.Query)
	}
	return v
}

// Encode returns the canonical query-string form of the state.
func (s State) Encode() string {
	return s.Values().Encode()
}

// ParseState reads a state back from URL query parameters. Missing
// parameters mean defaults.
func ParseState(v url.Values) (State, error) {
	s := DefaultState()

	if raw := v.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return State{}, errors.Errorf("invalid page %q", raw)
		}
		s.Page = page
	}
	if raw := v.Get("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return State{}, errors.Errorf("invalid pageSize %q", raw)
		}
		s.PageSize = size
	}
	if raw := v.Get("status"); raw != "" {
		switch raw {
		case StatusAll, StatusActive, StatusInactive:
			s.Status = raw
		default:
			return State{}, errors.Errorf("invalid status %q", raw)
		}
	}
	s.Query = v.Get("query")

	return s, nil
}

// ParseLink accepts a full URL or a bare query string and restores the
// view state embedded in it.
func ParseLink(link string) (State, error) {
	raw := link
	if strings.Contains(link, "?") || strings.Contains(link, "://") {
		u, err := url.Parse(link)
		if err != nil {
			return State{}, errors.Wrap(err, "parsing share link")
		}
		raw = u.RawQuery
	}

	v, err := url.ParseQuery(raw)
	if err != nil {
		return State{}, errors.Wrap(err, "parsing share link query")
	}
	return ParseState(v)
}
