package errors

import "net/http"

// NewHTTPError returns a new HTTPError with the given code, message, and status code.
// If statusCode is 0, it defaults to http.StatusBadRequest.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewNotFoundHTTPError returns a new not found HTTP error.
func NewNotFoundHTTPError(message string) *HTTPError {
	return &HTTPError{
		Code:       http.StatusNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// Error returns the error message.
func (e *HTTPError) Error() string {
	return e.Message
}
