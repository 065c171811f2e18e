package httpserver

import (
	"errors"

	"adminboard/internal/simulation"
	userhttp "adminboard/internal/user/delivery/http"
	"adminboard/pkg/log"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for starting the listener.
type HTTPServer struct {
	// Server configuration
	gin         *gin.Engine
	logger      log.Logger
	host        string
	port        int
	environment string

	// Request simulation
	injector *simulation.Injector

	// Domain handlers
	userHandler *userhttp.Handler
}

// Config is the constructor input for HTTPServer.
// Keep this minimal: only fields really needed by HTTPServer.
type Config struct {
	// Server configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Request simulation
	Injector *simulation.Injector

	// Domain handlers
	UserHandler *userhttp.Handler
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: this does NOT start listening. Use (*HTTPServer).Run().
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(ginMode(cfg.Mode))

	srv := &HTTPServer{
		gin:         gin.New(),
		logger:      logger,
		host:        cfg.Host,
		port:        cfg.Port,
		environment: cfg.Environment,
		injector:    cfg.Injector,
		userHandler: cfg.UserHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.injector == nil {
		return errors.New("simulation injector is required")
	}
	if srv.userHandler == nil {
		return errors.New("user handler is required")
	}
	return nil
}

func ginMode(mode string) string {
	switch mode {
	case gin.DebugMode, gin.TestMode:
		return mode
	default:
		return gin.ReleaseMode
	}
}
