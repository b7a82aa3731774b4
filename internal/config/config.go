package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/genex/internal/adapters/otel"
	"github.com/emiliopalmerini/genex/internal/util"
)

// API holds backend client configuration.
type API struct {
	URL          string        `envconfig:"GENEX_API_URL" default:"http://localhost:8000"`
	Timeout      time.Duration `envconfig:"GENEX_API_TIMEOUT" default:"30s"`
	DiscardStale bool          `envconfig:"GENEX_DISCARD_STALE" default:"false"`
}

// History holds analysis history storage configuration.
type History struct {
	Enabled     bool   `envconfig:"GENEX_HISTORY_ENABLED" default:"true"`
	DatabaseURL string `envconfig:"GENEX_DATABASE_URL"`
	AuthToken   string `envconfig:"GENEX_DATABASE_AUTH_TOKEN"`
}

// Logging holds the log file location. The TUI owns the terminal, so logs go to a file.
type Logging struct {
	File  string `envconfig:"GENEX_LOG_FILE"`
	Debug bool   `envconfig:"GENEX_DEBUG" default:"false"`
}

// Config is the full client configuration.
type Config struct {
	API       API
	History   History
	Telemetry otel.Config
	Logging   Logging
}

// Load reads .env (if present) and the environment. Each section is
// processed on its own so envconfig does not prefix nested field names.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg.API); err != nil {
		return nil, fmt.Errorf("api config: %w", err)
	}
	if err := envconfig.Process("", &cfg.History); err != nil {
		return nil, fmt.Errorf("history config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Telemetry); err != nil {
		return nil, fmt.Errorf("telemetry config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Logging); err != nil {
		return nil, fmt.Errorf("logging config: %w", err)
	}

	if cfg.History.DatabaseURL == "" || cfg.Logging.File == "" {
		dataDir, err := util.GetXDGDataDir()
		if err != nil {
			return nil, err
		}
		if cfg.History.DatabaseURL == "" {
			cfg.History.DatabaseURL = "file:" + filepath.Join(dataDir, "history.db")
		}
		if cfg.Logging.File == "" {
			cfg.Logging.File = filepath.Join(dataDir, "genex.log")
		}
	}

	return &cfg, nil
}
