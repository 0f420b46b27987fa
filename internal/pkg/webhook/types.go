package webhook

import "errors"

// Canonical event types produced by the normalizer. The payment provider
// sends more, but only these drive fulfillment or revocation.
const (
	EventOrderApproved        = "order_approved"
	EventOrderRefunded        = "order_refunded"
	EventChargeback           = "chargeback"
	EventSubscriptionCanceled = "subscription_canceled"
	EventUnknown              = "unknown"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw request body.
const SignatureHeader = "X-Webhook-Signature"

// UnknownField is the placeholder the normalizer emits when a customer email
// cannot be extracted from any known payload shape.
const UnknownField = "unknown"

var (
	ErrIntegrationInactive = errors.New("integration not active")
	ErrIncompleteData      = errors.New("incomplete webhook data")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
)

// Event is the provider-agnostic shape extracted from one delivery payload.
// No field is mandatory here; the handlers decide what is fatal.
type Event struct {
	Type          string
	CustomerEmail string
	CustomerName  string
	OrderID       string
	ProductID     string
	RawPayload    string
}

// IsRevocation reports whether the event belongs to the refund family.
func (e Event) IsRevocation() bool {
	switch e.Type {
	case EventOrderRefunded, EventChargeback, EventSubscriptionCanceled:
		return true
	default:
		return false
	}
}

// Outcome summarizes a fully processed delivery for the HTTP layer.
type Outcome struct {
	DeliveryID uint
	EventType  string
	Handled    bool
	Message    string
}
