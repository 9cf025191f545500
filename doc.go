// Package payzcore provides a typed Go client for the PayzCore
// blockchain-payment-monitoring API: creating and inspecting payment
// monitoring requests, managing projects, and handling the failure modes of
// a remote HTTP service with retries and structured errors.
//
// Inbound webhook verification lives in the webhook subpackage.
//
// # Basic Usage
//
//	client, err := payzcore.New("pk_live_xxx")
//	if err != nil {
//	    return err
//	}
//
//	resp, err := client.Payments.Create(ctx, payzcore.CreatePaymentParams{
//	    Amount:      decimal.NewFromInt(50),
//	    ExternalRef: "user-123",
//	    Network:     payzcore.NetworkTRC20, // optional
//	})
//
// Project management requires the master key:
//
//	admin, err := payzcore.New("mk_xxx", payzcore.WithMasterKey())
//	projects, err := admin.Projects.List(ctx)
//
// # Configuration
//
// Clients can also be built from PAYZCORE_* environment variables:
//
//	client, err := payzcore.NewFromEnv()
//
// Functional options override defaults in either mode: WithBaseURL,
// WithTimeout, WithMaxRetries, WithMasterKey, WithHTTPClient, WithBackoff,
// WithLogger, WithUserAgent.
//
// # Retries
//
// Each call makes up to 1 + MaxRetries attempts. Only 5xx responses and
// transport failures are retried, with exponential backoff between
// attempts; 4xx responses, including 429, are terminal. Server-side
// idempotency via external_ref makes payment creation safe to retry.
//
// # Errors
//
// Every API failure is a *APIError wrapping a sentinel error, so callers
// can classify with errors.Is and extract structure with errors.As:
//
//	var apiErr *payzcore.APIError
//	switch {
//	case errors.Is(err, payzcore.ErrRateLimited):
//	    errors.As(err, &apiErr)
//	    wait(apiErr.RetryAfter)
//	case errors.Is(err, payzcore.ErrValidation):
//	    errors.As(err, &apiErr)
//	    inspect(apiErr.Details)
//	case errors.Is(err, payzcore.ErrTimeout), errors.Is(err, payzcore.ErrNetwork):
//	    // transport-level failure, already retried per policy
//	}
package payzcore
