package payzcore

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// Sentinel errors for classifying API and transport failures with errors.Is.
// Status-derived failures additionally carry structured detail in *APIError,
// reachable with errors.As.
var (
	// ErrAPI is the generic failure for any non-2xx status without a more
	// specific classification.
	ErrAPI = errors.New("payzcore: api error")
	// ErrAuthentication indicates an invalid or missing API key (HTTP 401).
	ErrAuthentication = errors.New("payzcore: authentication failed")
	// ErrForbidden indicates access was denied (HTTP 403).
	ErrForbidden = errors.New("payzcore: access denied")
	// ErrNotFound indicates the requested resource does not exist (HTTP 404).
	ErrNotFound = errors.New("payzcore: resource not found")
	// ErrValidation indicates the server rejected request parameters (HTTP 400).
	ErrValidation = errors.New("payzcore: validation failed")
	// ErrIdempotencyConflict indicates an external_order_id conflict with a
	// different external_ref (HTTP 409).
	ErrIdempotencyConflict = errors.New("payzcore: idempotency conflict")
	// ErrRateLimited indicates the rate limit was exceeded (HTTP 429).
	ErrRateLimited = errors.New("payzcore: rate limit exceeded")

	// ErrNetwork indicates no response could be obtained (DNS failure,
	// connection refused, broken connection).
	ErrNetwork = errors.New("payzcore: network error")
	// ErrTimeout indicates the per-attempt deadline was exceeded.
	ErrTimeout = errors.New("payzcore: request timeout")

	// ErrInvalidParams indicates client-side parameter validation failed
	// before any request was sent.
	ErrInvalidParams = errors.New("payzcore: invalid parameters")
	// ErrInvalidConfig indicates the client configuration is unusable.
	ErrInvalidConfig = errors.New("payzcore: invalid configuration")
)

// FieldError describes a single field-level validation failure reported by
// the API on HTTP 400 responses.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// APIError is the structured form of every status-derived failure. It wraps
// one of the sentinel errors above so callers can classify with errors.Is and
// extract detail with errors.As:
//
//	var apiErr *payzcore.APIError
//	if errors.As(err, &apiErr) && errors.Is(err, payzcore.ErrRateLimited) {
//	    wait(apiErr.RetryAfter)
//	}
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int
	// Code is a stable machine-readable error code.
	Code string
	// Message is the human-readable error message from the response body.
	Message string
	// Details carries per-field validation errors on HTTP 400 responses.
	Details []FieldError
	// RetryAfter is the number of seconds until the rate limit resets,
	// when the server reported one (HTTP 429 only).
	RetryAfter *int64
	// IsDaily reports whether a daily quota, rather than a burst limit,
	// was exhausted (HTTP 429 only).
	IsDaily bool

	kind error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v: %s (status %d)", e.kind, e.Message, e.Status)
}

func (e *APIError) Unwrap() error { return e.kind }

// errorBody is the wire shape of API error responses.
type errorBody struct {
	Error      string       `json:"error"`
	Details    []FieldError `json:"details"`
	IsDaily    *bool        `json:"is_daily"`
	RetryAfter *int64       `json:"retry_after"`
}

// newAPIError maps a completed non-2xx response to a typed failure. A body
// that is not valid JSON still yields a usable generic error; the mapper
// never surfaces a decoding failure to the caller.
func newAPIError(status int, body errorBody, ok bool, header http.Header) *APIError {
	msg := body.Error
	if !ok || msg == "" {
		msg = http.StatusText(status)
		if msg == "" {
			msg = "unknown error"
		}
	}

	e := &APIError{Status: status, Message: msg}

	switch status {
	case http.StatusBadRequest:
		e.kind = ErrValidation
		e.Code = "validation_error"
		e.Details = body.Details
	case http.StatusUnauthorized:
		e.kind = ErrAuthentication
		e.Code = "authentication_error"
	case http.StatusForbidden:
		e.kind = ErrForbidden
		e.Code = "forbidden"
	case http.StatusNotFound:
		e.kind = ErrNotFound
		e.Code = "not_found"
	case http.StatusConflict:
		e.kind = ErrIdempotencyConflict
		e.Code = "idempotency_error"
	case http.StatusTooManyRequests:
		e.kind = ErrRateLimited
		e.Code = "rate_limit_error"
		e.IsDaily, e.RetryAfter = rateLimitMeta(body, header)
	default:
		e.kind = ErrAPI
		e.Code = "api_error"
	}

	return e
}

// rateLimitMeta prefers body fields and falls back to the rate-limit
// response headers when the body omits them.
func rateLimitMeta(body errorBody, header http.Header) (isDaily bool, retryAfter *int64) {
	if body.IsDaily != nil {
		isDaily = *body.IsDaily
	} else {
		isDaily = header.Get("X-RateLimit-Daily") == "true"
	}

	if body.RetryAfter != nil {
		retryAfter = body.RetryAfter
	} else if reset := header.Get("X-RateLimit-Reset"); reset != "" {
		if secs, err := strconv.ParseInt(reset, 10, 64); err == nil {
			retryAfter = &secs
		}
	}
	return isDaily, retryAfter
}
