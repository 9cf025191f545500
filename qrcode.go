package payzcore

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRCodePNG renders a QR code PNG for the payment, sized size x size pixels.
// It encodes the hosted payment URL when present, falling back to the
// deposit address, so integrators can embed a scannable code without a
// round trip to the QR endpoint.
func (p Payment) QRCodePNG(size int) ([]byte, error) {
	content := p.PaymentURL
	if content == "" {
		content = p.Address
	}
	if content == "" {
		return nil, fmt.Errorf("%w: payment has no payment URL or address", ErrInvalidParams)
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
