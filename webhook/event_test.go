package webhook_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	payzcore "github.com/payzcore/payzcore-go"
	"github.com/payzcore/payzcore-go/webhook"
)

func TestConstructEvent(t *testing.T) {
	t.Parallel()

	secret := "whsec_test"
	body := []byte(`{"event":"payment.completed","payment_id":"p1","paid_amount":"50","token":"USDT","network":"TRC20"}`)
	sig, ts := signedAt(t, secret, body, time.Now())

	event, err := webhook.ConstructEvent(body, sig, ts, secret)
	require.NoError(t, err)

	assert.Equal(t, webhook.EventPaymentCompleted, event.Type)
	assert.Equal(t, "p1", event.PaymentID)
	assert.Equal(t, payzcore.TokenUSDT, event.Token)
	assert.Equal(t, payzcore.NetworkTRC20, event.Network)
	assert.True(t, event.PaidAmount.Equal(decimal.NewFromInt(50)))
}

func TestConstructEvent_BadSignature(t *testing.T) {
	t.Parallel()

	secret := "whsec_test"
	body := []byte(`{"event":"payment.completed","payment_id":"p1","paid_amount":"50","token":"USDT","network":"TRC20"}`)
	sig, ts := signedAt(t, secret, body, time.Now())

	// One flipped character in the signature.
	flipped := []byte(sig)
	if flipped[0] == '0' {
		flipped[0] = '1'
	} else {
		flipped[0] = '0'
	}

	_, err := webhook.ConstructEvent(body, string(flipped), ts, secret)
	require.ErrorIs(t, err, webhook.ErrSignatureInvalid)
	assert.NotErrorIs(t, err, webhook.ErrMalformedPayload)
}

func TestConstructEvent_MalformedPayload(t *testing.T) {
	t.Parallel()

	// Authentic but syntactically invalid JSON: the caller must be able
	// to tell this apart from a forged payload.
	secret := "whsec_test"
	body := []byte(`{"event":"payment.completed",`)
	sig, ts := signedAt(t, secret, body, time.Now())

	_, err := webhook.ConstructEvent(body, sig, ts, secret)
	require.ErrorIs(t, err, webhook.ErrMalformedPayload)
	assert.NotErrorIs(t, err, webhook.ErrSignatureInvalid)
}

func TestConstructEvent_UnverifiedBodyNeverParsed(t *testing.T) {
	t.Parallel()

	// A body that is both forged and malformed must report the signature
	// failure: parsing never happens before verification.
	secret := "whsec_test"
	body := []byte(`{"event":"payment.completed",`)

	_, err := webhook.ConstructEvent(body, "00", time.Now().UTC().Format(time.RFC3339), secret)
	require.ErrorIs(t, err, webhook.ErrSignatureInvalid)
	assert.NotErrorIs(t, err, webhook.ErrMalformedPayload)
}

func TestConstructEvent_FullPayload(t *testing.T) {
	t.Parallel()

	secret := "whsec_test"
	body := []byte(`{
		"event": "payment.overpaid",
		"payment_id": "p42",
		"external_ref": "user-9",
		"external_order_id": "order-77",
		"network": "BEP20",
		"token": "USDC",
		"address": "0xabc",
		"expected_amount": "100",
		"paid_amount": "100.5",
		"tx_hash": "0xdeadbeef",
		"status": "overpaid",
		"paid_at": "2026-01-01T10:00:00Z",
		"metadata": {"plan": "pro"},
		"timestamp": "2026-01-01T10:00:01Z",
		"buyer_email": "buyer@example.com",
		"buyer_name": "Ada",
		"payment_link_id": "pl_1",
		"payment_link_slug": "pro-plan",
		"some_future_field": "kept"
	}`)
	sig, ts := signedAt(t, secret, body, time.Now())

	event, err := webhook.ConstructEvent(body, sig, ts, secret)
	require.NoError(t, err)

	assert.Equal(t, webhook.EventPaymentOverpaid, event.Type)
	assert.Equal(t, "p42", event.PaymentID)
	assert.Equal(t, "user-9", event.ExternalRef)
	assert.Equal(t, "order-77", event.ExternalOrderID)
	assert.Equal(t, payzcore.NetworkBEP20, event.Network)
	assert.Equal(t, payzcore.TokenUSDC, event.Token)
	assert.Equal(t, "0xabc", event.Address)
	assert.True(t, event.ExpectedAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, event.PaidAmount.Equal(decimal.RequireFromString("100.5")))
	assert.Equal(t, "0xdeadbeef", event.TxHash)
	assert.Equal(t, payzcore.StatusOverpaid, event.Status)
	assert.Equal(t, "2026-01-01T10:00:00Z", event.PaidAt)
	assert.Equal(t, "pro", event.Metadata["plan"])
	assert.Equal(t, "buyer@example.com", event.BuyerEmail)
	assert.Equal(t, "Ada", event.BuyerName)
	assert.Equal(t, "pl_1", event.PaymentLinkID)

	// Unmodeled fields stay reachable through the raw payload.
	assert.Equal(t, "kept", event.Raw["some_future_field"])
}

func TestConstructEvent_TokenDefaultsToUSDT(t *testing.T) {
	t.Parallel()

	secret := "whsec_test"
	body := []byte(`{"event":"payment.completed","payment_id":"p1","network":"TRC20"}`)
	sig, ts := signedAt(t, secret, body, time.Now())

	event, err := webhook.ConstructEvent(body, sig, ts, secret)
	require.NoError(t, err)
	assert.Equal(t, payzcore.TokenUSDT, event.Token)
}

func TestConstructEvent_UnknownNetworkAccepted(t *testing.T) {
	t.Parallel()

	// Forward compatibility: unknown networks and tokens are logged, not
	// rejected.
	secret := "whsec_test"
	body := []byte(`{"event":"payment.completed","payment_id":"p1","network":"SOLANA","token":"DAI"}`)
	sig, ts := signedAt(t, secret, body, time.Now())

	event, err := webhook.ConstructEvent(body, sig, ts, secret,
		webhook.WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)
	assert.Equal(t, payzcore.Network("SOLANA"), event.Network)
	assert.Equal(t, payzcore.Token("DAI"), event.Token)
}
