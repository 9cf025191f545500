// Package webhook verifies inbound PayzCore webhook notifications and
// constructs typed events from verified payloads.
//
// Verification is HMAC-SHA256 over timestamp + "." + body, hex encoded,
// carried in the X-PayzCore-Signature and X-PayzCore-Timestamp headers.
// The timestamp binding plus a tolerance window (default 5 minutes) gives
// replay resistance; comparison is constant-time.
//
// # Usage
//
//	func handleWebhook(w http.ResponseWriter, r *http.Request) {
//	    body, err := io.ReadAll(r.Body)
//	    if err != nil {
//	        w.WriteHeader(http.StatusBadRequest)
//	        return
//	    }
//
//	    sig, ts, err := webhook.ExtractHeaders(r.Header)
//	    if err != nil {
//	        w.WriteHeader(http.StatusUnauthorized)
//	        return
//	    }
//
//	    event, err := webhook.ConstructEvent(body, sig, ts, webhookSecret)
//	    switch {
//	    case errors.Is(err, webhook.ErrSignatureInvalid):
//	        // Not from PayzCore. Discard without processing.
//	        w.WriteHeader(http.StatusUnauthorized)
//	        return
//	    case errors.Is(err, webhook.ErrMalformedPayload):
//	        // Authentic but corrupt. Log and discard.
//	        w.WriteHeader(http.StatusBadRequest)
//	        return
//	    }
//
//	    process(event)
//	    w.WriteHeader(http.StatusOK)
//	}
//
// The raw body bytes must be passed exactly as received; re-serializing the
// JSON changes the bytes and breaks the signature.
//
// Verification is a pure function of its inputs, holds no state, and is
// safe under unlimited concurrent use. It fails closed: an empty secret is
// a verification failure, never a skip.
package webhook
