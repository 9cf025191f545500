package webhook

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"

	payzcore "github.com/payzcore/payzcore-go"
)

// EventType identifies what happened to a monitored payment.
type EventType string

const (
	EventPaymentCompleted EventType = "payment.completed"
	EventPaymentOverpaid  EventType = "payment.overpaid"
	EventPaymentPartial   EventType = "payment.partial"
	EventPaymentExpired   EventType = "payment.expired"
	EventPaymentCancelled EventType = "payment.cancelled"
)

// Event is a verified, fully parsed webhook notification. Events only ever
// come out of ConstructEvent, after the signature check has passed; there
// is no way to obtain one from an unverified body.
type Event struct {
	Type            EventType              `json:"event"`
	PaymentID       string                 `json:"payment_id"`
	ExternalRef     string                 `json:"external_ref"`
	ExternalOrderID string                 `json:"external_order_id,omitempty"`
	Network         payzcore.Network       `json:"network"`
	Token           payzcore.Token         `json:"token"`
	Address         string                 `json:"address"`
	ExpectedAmount  decimal.Decimal        `json:"expected_amount"`
	PaidAmount      decimal.Decimal        `json:"paid_amount"`
	TxHash          string                 `json:"tx_hash,omitempty"`
	Status          payzcore.PaymentStatus `json:"status"`
	// PaidAt is only set for payment.completed and payment.overpaid.
	PaidAt    string         `json:"paid_at,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Timestamp string         `json:"timestamp"`

	// Buyer fields, only present for payment-link payments.
	BuyerEmail      string `json:"buyer_email,omitempty"`
	BuyerName       string `json:"buyer_name,omitempty"`
	BuyerNote       string `json:"buyer_note,omitempty"`
	PaymentLinkID   string `json:"payment_link_id,omitempty"`
	PaymentLinkSlug string `json:"payment_link_slug,omitempty"`

	// Raw holds every field of the original payload, including ones this
	// SDK version does not model.
	Raw map[string]any `json:"-"`
}

// ConstructEvent verifies the signature over the exact raw body bytes and,
// only on success, parses the body into an Event.
//
// The two failure modes are distinct: ErrSignatureInvalid means the payload
// did not come from the service and was not parsed at all;
// ErrMalformedPayload means the payload is authentic but not valid JSON.
//
//	body, _ := io.ReadAll(r.Body)
//	sig, ts, err := webhook.ExtractHeaders(r.Header)
//	if err != nil {
//	    // reject
//	}
//	event, err := webhook.ConstructEvent(body, sig, ts, secret)
func ConstructEvent(body []byte, signature, timestamp, secret string, opts ...Option) (Event, error) {
	if err := VerifySignature(secret, body, signature, timestamp, opts...); err != nil {
		return Event{}, err
	}
	return parseEvent(body, opts...)
}

// parseEvent decodes an already-verified body. Unknown network or token
// values are accepted and logged at warn level, so new server-side values
// do not break existing integrations.
func parseEvent(body []byte, opts ...Option) (Event, error) {
	options := defaultVerifyOptions()
	for _, opt := range opts {
		opt(options)
	}

	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return Event{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if err := json.Unmarshal(body, &event.Raw); err != nil {
		return Event{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	if event.Token == "" {
		event.Token = payzcore.TokenUSDT
	}

	if event.Network != "" && !slices.Contains(payzcore.SupportedNetworks, event.Network) {
		options.log.Warn("unknown network in webhook", slog.String("network", string(event.Network)))
	}
	if !slices.Contains(payzcore.SupportedTokens, event.Token) {
		options.log.Warn("unknown token in webhook", slog.String("token", string(event.Token)))
	}

	return event, nil
}
