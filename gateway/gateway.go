package gateway

import "context"

// InitRequest is the handoff payload to the payment gateway. Amount is
// the server-authoritative charge in the smallest currency unit.
type InitRequest struct {
	PublicKey string
	Email     string
	Amount    int64
	Currency  string
	Reference string
	Metadata  map[string]any
}

// Handoff is where the gateway takes over the payment. The host sends
// the customer to AuthorizationURL; everything after that arrives as
// the gateway's own success or close signal.
type Handoff struct {
	AuthorizationURL string
	AccessCode       string
}

// PaymentGateway initiates one payment attempt. Outcomes are reported
// back asynchronously by the gateway itself (success callback with a
// reference, or a close signal with no payload), never polled.
type PaymentGateway interface {
	Initiate(ctx context.Context, req InitRequest) (Handoff, error)
}
