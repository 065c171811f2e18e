package httpserver

import (
	"adminboard/internal/middleware"

	// Import this to execute the init function in docs.go which sets up the Swagger docs.
	_ "adminboard/docs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const Api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger))
	srv.gin.Use(middleware.Metrics())

	corsConfig := middleware.DefaultCORSConfig()
	srv.gin.Use(middleware.CORS(corsConfig))

	// Health check endpoints (never simulated)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Operational endpoints
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes run behind the latency/failure simulation.
	api := srv.gin.Group(Api)
	api.Use(middleware.Simulate(srv.logger, srv.injector))
	srv.userHandler.RegisterRoutes(api)

	return nil
}
