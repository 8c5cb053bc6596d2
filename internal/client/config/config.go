package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the client configuration, read from the environment (a .env file
// is loaded first when present).
type Config struct {
	// APIBaseURL is the API root every request path is appended to.
	APIBaseURL string `env:"WORKLANE_API_URL, default=http://localhost:8000/api"`

	// DBPath is the location of the local credential database.
	DBPath string `env:"WORKLANE_DB, default=worklane.db"`

	LogLevel string        `env:"WORKLANE_LOG_LEVEL, default=info"`
	Timeout  time.Duration `env:"WORKLANE_HTTP_TIMEOUT, default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}
