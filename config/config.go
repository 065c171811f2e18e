package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Mock API behavior
	Simulation SimulationConfig

	// Dashboard client configuration
	Client ClientConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode string `env:"HTTP_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string `env:"LOG_LEVEL" envDefault:"info"`
	Mode         string `env:"LOG_MODE" envDefault:"production"`
	Encoding     string `env:"LOG_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOG_COLOR_ENABLED" envDefault:"false"`
}

// SimulationConfig controls the simulated latency and failure behavior
// of the mock API. FailureRate is a probability in [0, 1).
type SimulationConfig struct {
	MinLatency  time.Duration `env:"SIM_MIN_LATENCY" envDefault:"100ms"`
	MaxLatency  time.Duration `env:"SIM_MAX_LATENCY" envDefault:"600ms"`
	FailureRate float64       `env:"SIM_FAILURE_RATE" envDefault:"0"`
	Seed        int64         `env:"SIM_SEED" envDefault:"0"`
}

// ClientConfig is the configuration for the dashboard data client.
type ClientConfig struct {
	BaseURL          string        `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	RequestTimeout   time.Duration `env:"API_REQUEST_TIMEOUT" envDefault:"10s"`
	RetryBudget      int           `env:"API_RETRY_BUDGET" envDefault:"3"`
	RetryMaxInterval time.Duration `env:"API_RETRY_MAX_INTERVAL" envDefault:"2s"`
	CacheTTL         time.Duration `env:"API_CACHE_TTL" envDefault:"30s"`
	DebounceInterval time.Duration `env:"SEARCH_DEBOUNCE_INTERVAL" envDefault:"300ms"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port == 0 {
		return fmt.Errorf("HTTP_PORT is required")
	}
	if cfg.Simulation.FailureRate < 0 || cfg.Simulation.FailureRate >= 1 {
		return fmt.Errorf("SIM_FAILURE_RATE must be in [0, 1)")
	}
	if cfg.Simulation.MinLatency > cfg.Simulation.MaxLatency {
		return fmt.Errorf("SIM_MIN_LATENCY must not exceed SIM_MAX_LATENCY")
	}
	if cfg.Client.RetryBudget < 0 {
		return fmt.Errorf("API_RETRY_BUDGET must not be negative")
	}
	return nil
}
