package middleware

import (
	"net/http"

	"adminboard/internal/simulation"
	"adminboard/pkg/errors"
	"adminboard/pkg/log"
	"adminboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// Simulate injects the configured latency window and transient failures
// into every request passing through it. A valid X-Simulate-Failure
// header forces a specific mode for deterministic resilience testing.
func Simulate(logger log.Logger, in *simulation.Injector) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		mode := simulation.ModeNone
		if header := c.GetHeader(simulation.Header); header != "" {
			forced, ok := simulation.ParseMode(header)
			if !ok {
				response.Error(c, errors.NewValidationError(400, simulation.Header, "unknown failure mode"))
				c.Abort()
				return
			}
			mode = forced
		} else {
			mode = in.NextFailure()
		}

		if err := in.Latency(ctx); err != nil {
			// Client went away while we were "working".
			c.Abort()
			return
		}

		switch mode {
		case simulation.ModeNetwork:
			logger.Warnf(ctx, "simulating network failure: %s %s", c.Request.Method, c.Request.URL.Path)
			observeSimulatedFailure(mode)
			dropConnection(c)
		case simulation.ModeServer:
			logger.Warnf(ctx, "simulating server failure: %s %s", c.Request.Method, c.Request.URL.Path)
			observeSimulatedFailure(mode)
			response.Error(c, errors.NewHTTPError(http.StatusInternalServerError, "Simulated internal server error", http.StatusInternalServerError))
			c.Abort()
		case simulation.ModeTimeout:
			logger.Warnf(ctx, "simulating timeout: %s %s", c.Request.Method, c.Request.URL.Path)
			observeSimulatedFailure(mode)
			response.Error(c, errors.NewHTTPError(http.StatusGatewayTimeout, "Simulated upstream timeout", http.StatusGatewayTimeout))
			c.Abort()
		case simulation.ModeNotFound:
			observeSimulatedFailure(mode)
			response.Error(c, errors.NewNotFoundHTTPError("Simulated missing resource"))
			c.Abort()
		default:
			c.Next()
		}
	}
}

// dropConnection closes the underlying TCP connection without writing a
// response, so the client sees a transport-level error rather than an
// HTTP status.
func dropConnection(c *gin.Context) {
	c.Abort()
	conn, _, err := c.Writer.Hijack()
	if err != nil {
		// Not hijackable (e.g. HTTP/2); a bare 500 is the closest we get.
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	_ = conn.Close()
}
