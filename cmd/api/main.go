package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"adminboard/config"
	"adminboard/internal/httpserver"
	"adminboard/internal/simulation"
	userhttp "adminboard/internal/user/delivery/http"
	"adminboard/internal/user/repository/inmem"
	"adminboard/internal/user/usecase"
	"adminboard/pkg/log"
)

// seedUserCount is how many users the mock API starts with. Enough for
// several pages at the default page size.
const seedUserCount = 57

// @Name Adminboard API
// @description Simulated REST API backing the adminboard user dashboard.
// @version 1
// @host localhost:8080
// @schemes http
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Register graceful shutdown
	registerGracefulShutdown(logger)

	ctx := context.Background()

	// Wire the seeded in-memory store through the domain layers.
	repo := inmem.New(logger, inmem.SeedUsers(seedUserCount))
	uc := usecase.New(logger, repo)
	userHandler := userhttp.New(uc, logger)

	// Latency and failure injection for the whole API surface.
	injector := simulation.New(simulation.Config{
		MinLatency:  cfg.Simulation.MinLatency,
		MaxLatency:  cfg.Simulation.MaxLatency,
		FailureRate: cfg.Simulation.FailureRate,
		Seed:        cfg.Simulation.Seed,
	})
	logger.Infof(ctx, "simulation: latency %s..%s, failure rate %.2f",
		cfg.Simulation.MinLatency, cfg.Simulation.MaxLatency, cfg.Simulation.FailureRate)

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Injector:    injector,
		UserHandler: userHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")
		os.Exit(0)
	}()
}
