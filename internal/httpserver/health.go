package httpserver

import (
	"adminboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck handles health check requests.
// @Summary Health Check
// @Description Check if the mock API service is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":      "healthy",
		"service":     "adminboard-api",
		"version":     "1.0.0",
		"environment": srv.environment,
	})
}

// readyCheck handles readiness check requests.
// @Summary Readiness Check
// @Description Check if the mock API service is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"service": "adminboard-api",
		"version": "1.0.0",
	})
}

// liveCheck handles liveness check requests.
// @Summary Liveness Check
// @Description Check if the mock API service is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "adminboard-api",
		"version": "1.0.0",
	})
}
