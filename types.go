package payzcore

import (
	"github.com/shopspring/decimal"
)

// Network is a supported blockchain network.
type Network string

const (
	NetworkTRC20    Network = "TRC20"
	NetworkBEP20    Network = "BEP20"
	NetworkERC20    Network = "ERC20"
	NetworkPolygon  Network = "POLYGON"
	NetworkArbitrum Network = "ARBITRUM"
)

// Token is a supported stablecoin token.
type Token string

const (
	TokenUSDT Token = "USDT"
	TokenUSDC Token = "USDC"
)

// PaymentStatus is the lifecycle state of a monitored payment.
type PaymentStatus string

const (
	StatusPending    PaymentStatus = "pending"
	StatusConfirming PaymentStatus = "confirming"
	StatusPartial    PaymentStatus = "partial"
	StatusPaid       PaymentStatus = "paid"
	StatusOverpaid   PaymentStatus = "overpaid"
	StatusExpired    PaymentStatus = "expired"
	StatusCancelled  PaymentStatus = "cancelled"
)

// SupportedNetworks lists the blockchain networks the service monitors.
var SupportedNetworks = []Network{
	NetworkTRC20, NetworkBEP20, NetworkERC20, NetworkPolygon, NetworkArbitrum,
}

// SupportedTokens lists the stablecoin tokens the service monitors.
var SupportedTokens = []Token{TokenUSDT, TokenUSDC}

// CreatePaymentParams are the parameters for PaymentsService.Create.
// Amount and ExternalRef are required; omit Network to let the customer
// choose on the hosted payment page.
type CreatePaymentParams struct {
	// Amount is the expected payment amount in stablecoin units.
	Amount decimal.Decimal `json:"amount" validate:"required"`
	// ExternalRef is the caller-supplied idempotency key correlating the
	// payment to the caller's own order or user record.
	ExternalRef string `json:"external_ref" validate:"required"`
	// Network selects the blockchain network. Optional.
	Network Network `json:"network,omitempty" validate:"omitempty,oneof=TRC20 BEP20 ERC20 POLYGON ARBITRUM"`
	// Token selects the stablecoin. Defaults to USDT server-side.
	Token Token `json:"token,omitempty" validate:"omitempty,oneof=USDT USDC"`
	// ExternalOrderID is an optional order identifier for idempotency.
	ExternalOrderID string `json:"external_order_id,omitempty"`
	// Address pre-assigns a static deposit address (dedicated mode only).
	Address string `json:"address,omitempty"`
	// ExpiresIn is the payment expiry in seconds, between 300 and 86400.
	ExpiresIn int `json:"expires_in,omitempty" validate:"omitempty,min=300,max=86400"`
	// Metadata is attached to the payment and echoed in webhooks.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ListPaymentsParams filter and paginate PaymentsService.List.
type ListPaymentsParams struct {
	Status PaymentStatus `validate:"omitempty,oneof=pending confirming partial paid overpaid expired cancelled"`
	Limit  int           `validate:"omitempty,min=1,max=100"`
	Offset int           `validate:"omitempty,min=0"`
}

// AvailableNetwork describes a network the customer may choose on the
// hosted payment page, with the tokens it supports.
type AvailableNetwork struct {
	Network Network `json:"network"`
	Name    string  `json:"name"`
	Tokens  []Token `json:"tokens"`
}

// Payment is the payment record returned by PaymentsService.Create.
type Payment struct {
	ID              string          `json:"id"`
	Address         string          `json:"address,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Network         Network         `json:"network,omitempty"`
	Token           Token           `json:"token,omitempty"`
	Status          PaymentStatus   `json:"status"`
	ExpiresAt       string          `json:"expires_at"`
	ExternalOrderID string          `json:"external_order_id,omitempty"`
	QRCode          string          `json:"qr_code,omitempty"`
	Notice          string          `json:"notice,omitempty"`
	OriginalAmount  string          `json:"original_amount,omitempty"`
	RequiresTxID    bool            `json:"requires_txid,omitempty"`
	ConfirmEndpoint string          `json:"confirm_endpoint,omitempty"`
	AwaitingNetwork bool            `json:"awaiting_network,omitempty"`
	PaymentURL      string          `json:"payment_url,omitempty"`

	AvailableNetworks []AvailableNetwork `json:"available_networks,omitempty"`
}

// PaymentListItem is one row of PaymentsService.List.
type PaymentListItem struct {
	ID              string          `json:"id"`
	ExternalRef     string          `json:"external_ref"`
	ExternalOrderID string          `json:"external_order_id,omitempty"`
	Network         Network         `json:"network,omitempty"`
	Token           Token           `json:"token,omitempty"`
	Address         string          `json:"address,omitempty"`
	ExpectedAmount  decimal.Decimal `json:"expected_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	Status          PaymentStatus   `json:"status"`
	TxHash          string          `json:"tx_hash,omitempty"`
	ExpiresAt       string          `json:"expires_at"`
	PaidAt          string          `json:"paid_at,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

// Transaction is one observed on-chain transfer toward a payment.
type Transaction struct {
	TxHash        string          `json:"tx_hash"`
	Amount        decimal.Decimal `json:"amount"`
	FromAddress   string          `json:"from"`
	Confirmed     bool            `json:"confirmed"`
	Confirmations int             `json:"confirmations"`
}

// PaymentDetail is the full payment record returned by PaymentsService.Get,
// including all observed transactions.
type PaymentDetail struct {
	ID              string          `json:"id"`
	Status          PaymentStatus   `json:"status"`
	ExpectedAmount  decimal.Decimal `json:"expected_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	Address         string          `json:"address,omitempty"`
	Network         Network         `json:"network,omitempty"`
	Token           Token           `json:"token,omitempty"`
	TxHash          string          `json:"tx_hash,omitempty"`
	ExpiresAt       string          `json:"expires_at"`
	Transactions    []Transaction   `json:"transactions"`
	AwaitingNetwork bool            `json:"awaiting_network,omitempty"`
}

// CreatePaymentResponse is returned by PaymentsService.Create. Existing is
// true when the external_ref matched a previously created payment and that
// payment was returned instead of a new one.
type CreatePaymentResponse struct {
	Success  bool    `json:"success"`
	Existing bool    `json:"existing"`
	Payment  Payment `json:"payment"`
}

// ListPaymentsResponse is returned by PaymentsService.List.
type ListPaymentsResponse struct {
	Success  bool              `json:"success"`
	Payments []PaymentListItem `json:"payments"`
}

// GetPaymentResponse is returned by PaymentsService.Get.
type GetPaymentResponse struct {
	Success bool          `json:"success"`
	Payment PaymentDetail `json:"payment"`
}

// CancelPaymentResponse is returned by PaymentsService.Cancel.
type CancelPaymentResponse struct {
	Success bool           `json:"success"`
	Payment map[string]any `json:"payment"`
}

// ConfirmPaymentResponse is returned by PaymentsService.Confirm.
type ConfirmPaymentResponse struct {
	Success        bool          `json:"success"`
	Status         PaymentStatus `json:"status"`
	Verified       bool          `json:"verified"`
	AmountReceived string        `json:"amount_received,omitempty"`
	AmountExpected string        `json:"amount_expected,omitempty"`
	Message        string        `json:"message,omitempty"`
}

// CreateProjectParams are the parameters for ProjectsService.Create.
type CreateProjectParams struct {
	// Name is the project display name.
	Name string `json:"name" validate:"required"`
	// Slug is the URL-friendly project identifier.
	Slug string `json:"slug" validate:"required"`
	// WebhookURL is the endpoint that receives payment event notifications.
	WebhookURL string `json:"webhook_url,omitempty" validate:"omitempty,url"`
	// Metadata is arbitrary project metadata.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Project is the full project record, including credentials, returned on
// creation. The webhook secret is only ever returned here; store it.
type Project struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	APIKey        string `json:"api_key"`
	WebhookSecret string `json:"webhook_secret"`
	WebhookURL    string `json:"webhook_url,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// ProjectListItem is one row of ProjectsService.List.
type ProjectListItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	APIKey     string `json:"api_key"`
	WebhookURL string `json:"webhook_url,omitempty"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
}

// CreateProjectResponse is returned by ProjectsService.Create.
type CreateProjectResponse struct {
	Success bool    `json:"success"`
	Project Project `json:"project"`
}

// ListProjectsResponse is returned by ProjectsService.List.
type ListProjectsResponse struct {
	Success  bool              `json:"success"`
	Projects []ProjectListItem `json:"projects"`
}
