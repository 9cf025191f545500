package payzcore

import (
	"context"
	"net/url"
	"strconv"
)

// PaymentsService manages payment monitoring requests.
type PaymentsService struct {
	client *Client
}

// Create registers a new payment monitoring request. When params.ExternalRef
// matches an existing payment, the server returns that payment with
// Existing set instead of creating a duplicate; this makes Create safe to
// retry.
func (s *PaymentsService) Create(ctx context.Context, params CreatePaymentParams) (*CreatePaymentResponse, error) {
	if err := s.client.validateParams(params); err != nil {
		return nil, err
	}

	var resp CreatePaymentResponse
	if err := s.client.post(ctx, "/v1/payments", params, &resp); err != nil {
		return nil, err
	}
	resp.Success = true
	return &resp, nil
}

// List returns payments for the project, optionally filtered by status and
// paginated with limit/offset.
func (s *PaymentsService) List(ctx context.Context, params ListPaymentsParams) (*ListPaymentsResponse, error) {
	if err := s.client.validateParams(params); err != nil {
		return nil, err
	}

	query := url.Values{}
	if params.Status != "" {
		query.Set("status", string(params.Status))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}

	var resp ListPaymentsResponse
	if err := s.client.get(ctx, "/v1/payments", query, &resp); err != nil {
		return nil, err
	}
	resp.Success = true
	return &resp, nil
}

// Get returns the payment's latest cached status, including all observed
// on-chain transactions.
func (s *PaymentsService) Get(ctx context.Context, paymentID string) (*GetPaymentResponse, error) {
	var resp GetPaymentResponse
	if err := s.client.get(ctx, "/v1/payments/"+url.PathEscape(paymentID), nil, &resp); err != nil {
		return nil, err
	}
	resp.Success = true
	return &resp, nil
}

// Cancel cancels a payment that is still in pending status.
func (s *PaymentsService) Cancel(ctx context.Context, paymentID string) (*CancelPaymentResponse, error) {
	body := map[string]string{"status": "cancelled"}

	var resp CancelPaymentResponse
	if err := s.client.patch(ctx, "/v1/payments/"+url.PathEscape(paymentID), body, &resp); err != nil {
		return nil, err
	}
	resp.Success = true
	return &resp, nil
}

// Confirm submits a transaction hash for verification. Only used in
// pool+txid mode, where the customer reports their own transaction.
func (s *PaymentsService) Confirm(ctx context.Context, paymentID, txHash string) (*ConfirmPaymentResponse, error) {
	body := map[string]string{"tx_hash": txHash}

	var resp ConfirmPaymentResponse
	if err := s.client.post(ctx, "/v1/payments/"+url.PathEscape(paymentID)+"/confirm", body, &resp); err != nil {
		return nil, err
	}
	resp.Success = true
	return &resp, nil
}
