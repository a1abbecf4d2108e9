// Package config provides runtime configuration values for the service.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DotenvFile is read, when present, before the environment is parsed.
// Variables already set in the process environment win.
const DotenvFile = ".env"

// Config holds configuration knobs for the HTTP server, the catalog sources
// and the review workers.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	CatalogPath string `env:"CATALOG_PATH"`
	GuidesPath  string `env:"GUIDES_PATH"`

	ReviewsURL     string        `env:"REVIEWS_URL"`
	ReviewsTimeout time.Duration `env:"REVIEWS_TIMEOUT" envDefault:"0s"`

	ReviewWorkers      int `env:"REVIEW_WORKERS" envDefault:"2"`
	ReviewQueueBuffer  int `env:"REVIEW_QUEUE_BUFFER" envDefault:"64"`
	QueueHighWatermark int `env:"QUEUE_HIGH_WATERMARK" envDefault:"1000"`

	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`

	OTelEndpoint string `env:"OTEL_ENDPOINT"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"tour-catalog-service"`
}

// Load collects configuration from DotenvFile and the environment with
// defaults.
func Load() (Config, error) {
	if err := loadDotenv(DotenvFile); err != nil {
		return Config{}, err
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, c.validate()
}

func (c Config) validate() error {
	switch {
	case c.ReviewWorkers < 1:
		return fmt.Errorf("REVIEW_WORKERS must be at least 1, got %d", c.ReviewWorkers)
	case c.ReviewQueueBuffer < 0:
		return fmt.Errorf("REVIEW_QUEUE_BUFFER must not be negative, got %d", c.ReviewQueueBuffer)
	case c.QueueHighWatermark < 1:
		return fmt.Errorf("QUEUE_HIGH_WATERMARK must be at least 1, got %d", c.QueueHighWatermark)
	case c.ReviewsTimeout < 0:
		return fmt.Errorf("REVIEWS_TIMEOUT must not be negative, got %s", c.ReviewsTimeout)
	}
	return nil
}

func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
