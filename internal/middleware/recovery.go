package middleware

import (
	"adminboard/pkg/log"
	"adminboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery is the server-side crash boundary: a panic anywhere below is
// logged and turned into a JSON 500 instead of taking the process down.
func Recovery(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err)
				c.Abort()
			}
		}()
		c.Next()
	}
}
