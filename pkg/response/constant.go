package response

const (
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"
	// DefaultErrorMessage is returned for unexpected internal errors.
	DefaultErrorMessage = "Something went wrong"
	// ValidationErrorMsg is the message for validation error responses.
	ValidationErrorMsg = "Validation error"
)

const (
	// InternalServerErrorCode is the error code for internal server errors.
	InternalServerErrorCode = 500
	// ValidationErrorCode is the error code for validation errors.
	ValidationErrorCode = 400
)
