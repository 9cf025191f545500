package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Header names carrying the webhook signature material. HTTP header lookup
// is case-insensitive; use ExtractHeaders rather than reading the map
// directly.
const (
	SignatureHeader = "X-PayzCore-Signature"
	TimestampHeader = "X-PayzCore-Timestamp"
)

// Sign computes the hex-encoded HMAC-SHA256 signature over
// timestamp + "." + body. The timestamp binding ties the signature to a
// moment in time so replayed payloads with a rewritten timestamp fail
// verification. This is the exact scheme the service uses; Sign exists so
// integrators can produce valid signatures in their own tests.
func Sign(secret, timestamp string, body []byte) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("%w: secret is required", ErrSignatureInvalid)
	}
	if timestamp == "" {
		return "", fmt.Errorf("%w: timestamp is required", ErrSignatureInvalid)
	}
	if len(body) == 0 {
		return "", fmt.Errorf("%w: body cannot be empty", ErrSignatureInvalid)
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(timestamp))
	h.Write([]byte("."))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// VerifySignature checks the authenticity of a raw webhook body. It fails
// closed: an empty secret, empty body, missing or undecodable signature,
// or a timestamp outside the tolerance window all return
// ErrSignatureInvalid. The comparison is constant-time over the raw
// signature bytes; no case normalization is applied to secrets or
// signatures.
func VerifySignature(secret string, body []byte, signature, timestamp string, opts ...Option) error {
	options := defaultVerifyOptions()
	for _, opt := range opts {
		opt(options)
	}

	if secret == "" {
		return fmt.Errorf("%w: secret is required", ErrSignatureInvalid)
	}
	if len(body) == 0 {
		return fmt.Errorf("%w: body cannot be empty", ErrSignatureInvalid)
	}
	if signature == "" {
		return fmt.Errorf("%w: signature is missing", ErrSignatureInvalid)
	}
	if timestamp == "" {
		return fmt.Errorf("%w: timestamp is missing", ErrSignatureInvalid)
	}

	// The wire signature must be valid hex before any comparison; reject
	// unsupported encodings outright.
	provided, err := hex.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("%w: signature is not hex encoded", ErrSignatureInvalid)
	}

	// Replay protection: reject timestamps outside the tolerance window
	// in either direction.
	ts, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return fmt.Errorf("%w: invalid timestamp format", ErrSignatureInvalid)
	}
	if age := time.Since(ts); age > options.tolerance || age < -options.tolerance {
		return fmt.Errorf("%w: timestamp outside tolerance window", ErrSignatureInvalid)
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(timestamp))
	h.Write([]byte("."))
	h.Write(body)
	expected := h.Sum(nil)

	if !hmac.Equal(provided, expected) {
		return fmt.Errorf("%w: signature mismatch", ErrSignatureInvalid)
	}

	return nil
}

// ExtractHeaders pulls the signature and timestamp values from inbound
// request headers, tolerating any header-name casing.
func ExtractHeaders(h http.Header) (signature, timestamp string, err error) {
	signature = headerLookup(h, SignatureHeader)
	timestamp = headerLookup(h, TimestampHeader)
	if signature == "" {
		return "", "", fmt.Errorf("%w: %s header is missing", ErrSignatureInvalid, SignatureHeader)
	}
	if timestamp == "" {
		return "", "", fmt.Errorf("%w: %s header is missing", ErrSignatureInvalid, TimestampHeader)
	}
	return signature, timestamp, nil
}

// headerLookup matches header names case-insensitively even when the map
// was populated with non-canonical keys, which Header.Get alone misses.
func headerLookup(h http.Header, name string) string {
	if v := h.Get(name); v != "" {
		return v
	}
	for k, vs := range h {
		if strings.EqualFold(k, name) && len(vs) > 0 {
			return vs[0]
		}
	}
	return ""
}
