package payzcore

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Client at construction time. The resulting client is
// immutable; options have no effect after New returns.
type Option func(*Client)

// WithBaseURL overrides the API origin. A trailing slash is trimmed.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.cfg.BaseURL = baseURL
		}
	}
}

// WithTimeout sets the hard per-attempt request deadline.
// Default is 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.cfg.Timeout = timeout
		}
	}
}

// WithMaxRetries sets the number of retries on 5xx or network errors.
// Default is 2. Set to 0 to disable retries.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.cfg.MaxRetries = n
		}
	}
}

// WithMasterKey switches the client to master-key authentication
// (x-master-key header), required for project management.
func WithMasterKey() Option {
	return func(c *Client) {
		c.cfg.MasterKey = true
	}
}

// WithHTTPClient replaces the underlying HTTP client. Useful for custom
// transports, proxies, or testing.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBackoff replaces the retry backoff strategy.
// Default is exponential backoff capped at 5 seconds.
func WithBackoff(strategy BackoffStrategy) Option {
	return func(c *Client) {
		if strategy != nil {
			c.backoff = strategy
		}
	}
}

// WithLogger attaches a structured logger. Retry attempts are logged at
// debug level. Logging is disabled by default.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}
