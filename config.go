package payzcore

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

// Default configuration values applied by New when not overridden.
const (
	DefaultBaseURL    = "https://api.payzcore.com"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 2
)

// Config holds the immutable client configuration. It is fixed at
// construction and shared read-only by every request the client issues.
type Config struct {
	// APIKey is the project API key (pk_live_xxx) or master key (mk_xxx).
	APIKey string `env:"PAYZCORE_API_KEY,required"`
	// BaseURL is the API origin, without a trailing slash.
	BaseURL string `env:"PAYZCORE_BASE_URL" envDefault:"https://api.payzcore.com"`
	// Timeout is the hard per-attempt request deadline.
	Timeout time.Duration `env:"PAYZCORE_TIMEOUT" envDefault:"30s"`
	// MaxRetries is the number of retries on 5xx or network errors.
	// Total attempts per call is 1 + MaxRetries.
	MaxRetries int `env:"PAYZCORE_MAX_RETRIES" envDefault:"2"`
	// MasterKey selects master-key authentication (x-master-key header)
	// for project-management operations.
	MasterKey bool `env:"PAYZCORE_MASTER_KEY" envDefault:"false"`
}

// LoadConfig reads the client configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("%w: max retries cannot be negative", ErrInvalidConfig)
	}
	return nil
}
