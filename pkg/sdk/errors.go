package sdk

import (
	"context"
	"net"
	"net/http"
	"net/url"

	"github.com/friendsofgo/errors"
)

// Category buckets every failure the client can surface so callers can
// pick the right presentation and recovery path.
type Category string

const (
	CategoryNetwork  Category = "network"
	CategoryServer   Category = "server"
	CategoryTimeout  Category = "timeout"
	CategoryNotFound Category = "notfound"
	CategoryUnknown  Category = "unknown"
)

// APIError is a non-2xx response from the API, carrying the envelope's
// error code and message.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode)
}

// Presentation is what a user should see for a failure category.
type Presentation struct {
	Icon        string
	Title       string
	Description string
	Severity    string
}

var presentations = map[Category]Presentation{
	CategoryNetwork: {
		Icon:        "📡",
		Title:       "Connection problem",
		Description: "Could not reach the server. Check your connection and try again.",
		Severity:    "warning",
	},
	CategoryServer: {
		Icon:        "🔥",
		Title:       "Server error",
		Description: "The server hit an internal error. Please try again shortly.",
		Severity:    "error",
	},
	CategoryTimeout: {
		Icon:        "⏱",
		Title:       "Request timed out",
		Description: "The server took too long to respond. Try again.",
		Severity:    "warning",
	},
	CategoryNotFound: {
		Icon:        "🔍",
		Title:       "Not found",
		Description: "The requested resource does not exist. It may have been removed.",
		Severity:    "info",
	},
	CategoryUnknown: {
		Icon:        "❓",
		Title:       "Something went wrong",
		Description: "An unexpected error occurred. Please try again.",
		Severity:    "error",
	},
}

// Present returns the user-facing presentation for a category. Unknown
// categories fall back to the generic one.
func Present(cat Category) Presentation {
	if p, ok := presentations[cat]; ok {
		return p
	}
	return presentations[CategoryUnknown]
}

// Classify maps an error from the client into a failure category.
//
// Timeouts are checked before generic network failures: a timed-out
// connection is a *url.Error too, and the more specific bucket wins.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusNotFound:
			return CategoryNotFound
		case apiErr.StatusCode == http.StatusGatewayTimeout:
			return CategoryTimeout
		case apiErr.StatusCode >= 500:
			return CategoryServer
		default:
			return CategoryUnknown
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CategoryTimeout
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return CategoryNetwork
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return CategoryNetwork
	}

	return CategoryUnknown
}

// retryable reports whether a failure is transient. Not-found and
// malformed-request failures never heal on retry.
func retryable(err error) bool {
	switch Classify(err) {
	case CategoryNetwork, CategoryServer, CategoryTimeout:
		return true
	default:
		return false
	}
}
