package response

import (
	"fmt"
	"net/http"

	"adminboard/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

func parseError(err error) (int, Resp) {
	switch parsedErr := err.(type) {
	case *errors.ValidationError:
		return http.StatusBadRequest, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Error(),
		}
	case *errors.ValidationErrorCollector:
		return http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   ValidationErrorMsg,
			Errors:    parsedErr.Errors(),
		}
	case *errors.HTTPError:
		statusCode := parsedErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Message,
		}
	default:
		return http.StatusInternalServerError, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
}

// Error sends error response (status + JSON from parseError).
func Error(c *gin.Context, err error) {
	statusCode, resp := parseError(err)
	c.JSON(statusCode, resp)
}

// HttpError sends response for *errors.HTTPError.
func HttpError(c *gin.Context, err *errors.HTTPError) {
	statusCode, resp := parseError(err)
	c.JSON(statusCode, resp)
}

// ErrorWithMap looks up err in eMap and sends corresponding HTTPError, else Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping) {
	if httpErr, ok := eMap[err]; ok {
		Error(c, httpErr)
		return
	}
	Error(c, err)
}

// PanicError handles panic recovery and sends error response.
func PanicError(c *gin.Context, err any) {
	if err == nil {
		statusCode, resp := parseError(nil)
		c.JSON(statusCode, resp)
		return
	}
	if errVal, ok := err.(error); ok {
		statusCode, resp := parseError(errVal)
		c.JSON(statusCode, resp)
	} else {
		statusCode, resp := parseError(fmt.Errorf("%v", err))
		c.JSON(statusCode, resp)
	}
}
