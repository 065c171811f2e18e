package response

import "adminboard/pkg/errors"

// Resp is the common JSON envelope for every API response.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain errors to HTTP errors.
type ErrorMapping map[error]*errors.HTTPError
