package webhook

import (
	"log/slog"
	"time"
)

// verifyOptions hold the tunable parts of verification.
type verifyOptions struct {
	tolerance time.Duration
	log       *slog.Logger
}

func defaultVerifyOptions() *verifyOptions {
	return &verifyOptions{
		tolerance: 5 * time.Minute,
		log:       slog.New(slog.DiscardHandler),
	}
}

// Option configures signature verification.
type Option func(*verifyOptions)

// WithTolerance sets the maximum accepted age of a webhook timestamp.
// Default is 5 minutes. Stale and far-future timestamps both fail
// verification.
func WithTolerance(d time.Duration) Option {
	return func(o *verifyOptions) {
		if d > 0 {
			o.tolerance = d
		}
	}
}

// WithLogger attaches a structured logger. Unknown network or token values
// in an authenticated payload are logged at warn level. Logging is disabled
// by default.
func WithLogger(log *slog.Logger) Option {
	return func(o *verifyOptions) {
		if log != nil {
			o.log = log
		}
	}
}
