package payzcore

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Version is the SDK release version, reported in the User-Agent header.
const Version = "1.0.0"

// Client is the PayzCore API client. It is immutable after construction and
// safe for unlimited concurrent use; independent requests share nothing but
// the read-only configuration and the pooled HTTP transport.
type Client struct {
	cfg        Config
	httpClient *http.Client
	backoff    BackoffStrategy
	log        *slog.Logger
	userAgent  string
	validate   *validator.Validate

	// Payments manages payment monitoring requests.
	Payments *PaymentsService
	// Projects manages projects; the server requires master-key auth.
	Projects *ProjectsService
}

// New creates a PayzCore client.
//
//	// Project API (payment monitoring)
//	client, err := payzcore.New("pk_live_xxx")
//
//	// Admin API (project management)
//	admin, err := payzcore.New("mk_xxx", payzcore.WithMasterKey())
func New(apiKey string, opts ...Option) (*Client, error) {
	return newClient(Config{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		Timeout:    DefaultTimeout,
		MaxRetries: DefaultMaxRetries,
	}, opts...)
}

// NewFromEnv creates a client configured from PAYZCORE_* environment
// variables. Options are applied on top of the environment values.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return newClient(cfg, opts...)
}

// NewWithConfig creates a client from an explicit configuration value.
func NewWithConfig(cfg Config, opts ...Option) (*Client, error) {
	return newClient(cfg, opts...)
}

func newClient(cfg Config, opts ...Option) (*Client, error) {
	c := &Client{
		cfg:       cfg,
		backoff:   DefaultBackoffStrategy(),
		log:       slog.New(slog.DiscardHandler),
		userAgent: "payzcore-go/" + Version,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	c.cfg.BaseURL = strings.TrimRight(c.cfg.BaseURL, "/")

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			// No client-level timeout; each attempt carries its own
			// context deadline so cancellation stays per-attempt.
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	c.Payments = &PaymentsService{client: c}
	c.Projects = &ProjectsService{client: c}

	return c, nil
}

// authHeader returns the single authentication header for this client:
// x-master-key in master-key mode, x-api-key otherwise. Never both.
func (c *Client) authHeader() (name, value string) {
	if c.cfg.MasterKey {
		return "x-master-key", c.cfg.APIKey
	}
	return "x-api-key", c.cfg.APIKey
}

// validateParams runs client-side validation before any request is sent,
// so obviously invalid parameters fail without a network round trip.
func (c *Client) validateParams(params any) error {
	if err := c.validate.Struct(params); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return nil
}
