package payzcore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// maxResponseBytes caps how much of a response body is read, preventing
// memory exhaustion from a misbehaving endpoint.
const maxResponseBytes = 4 << 20

// do runs one logical API call: it executes attempts under the retry
// policy, maps the final response through the error mapper, and decodes a
// 2xx payload into out. Only 5xx responses and transport failures are
// retried; every 4xx response is terminal on the first attempt.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.cfg.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("payzcore: encode request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.backoff.NextInterval(attempt)
			c.log.DebugContext(ctx, "retrying request",
				slog.String("method", method),
				slog.String("path", path),
				slog.Int("attempt", attempt+1),
				slog.Duration("delay", delay),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		status, respBody, header, err := c.attempt(ctx, method, endpoint, payload)
		if err != nil {
			lastErr = err
			continue
		}

		if status >= 200 && status < 300 {
			if out != nil {
				if err := json.Unmarshal(respBody, out); err != nil {
					return fmt.Errorf("payzcore: decode response: %w", err)
				}
			}
			return nil
		}

		apiErr := mapError(status, respBody, header)
		if status >= 500 {
			lastErr = apiErr
			continue
		}
		return apiErr
	}

	return lastErr
}

// attempt performs exactly one network call. It never retries; the retry
// policy lives in do. Transport failures are classified as ErrTimeout when
// the per-attempt deadline expired and ErrNetwork otherwise.
func (c *Client) attempt(ctx context.Context, method, endpoint string, payload []byte) (int, []byte, http.Header, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(reqCtx, method, endpoint, bodyReader)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("payzcore: build request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.New().String())
	name, value := c.authHeader()
	req.Header.Set(name, value)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, nil, nil, ctx.Err()
		}
		if reqCtx.Err() == context.DeadlineExceeded {
			return 0, nil, nil, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return 0, nil, nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	return resp.StatusCode, respBody, resp.Header, nil
}

// mapError turns a completed non-2xx response into a typed *APIError.
// An unparsable body still produces a usable generic failure.
func mapError(status int, body []byte, header http.Header) *APIError {
	var eb errorBody
	ok := json.Unmarshal(body, &eb) == nil
	return newAPIError(status, eb, ok, header)
}

// get issues a GET request.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post issues a POST request with a JSON body.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// patch issues a PATCH request with a JSON body.
func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}
