package httpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server, then blocks until a shutdown signal.
//  1. Map HTTP handlers and routes
//  2. Start HTTP server
//  3. Wait for shutdown signal
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.logger.Fatalf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	go func() {
		if err := srv.gin.Run(fmt.Sprintf("%s:%d", srv.host, srv.port)); err != nil {
			srv.logger.Errorf(ctx, "HTTP server error: %v", err)
		}
	}()

	srv.logger.Infof(ctx, "HTTP server started on %s:%d", srv.host, srv.port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	srv.logger.Info(ctx, <-ch)
	srv.logger.Info(ctx, "Stopping mock API service...")

	return nil
}

// Engine maps the handlers and exposes the underlying gin engine.
// Used by tests to serve requests without binding a port.
func (srv *HTTPServer) Engine() (*gin.Engine, error) {
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}
	return srv.gin, nil
}
