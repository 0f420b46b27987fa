package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEventTypeChain(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name:    "webhook_event_type wins",
			payload: `{"webhook_event_type": "order_approved", "event": "something_else"}`,
			want:    EventOrderApproved,
		},
		{
			name:    "event as fallback",
			payload: `{"event": "order_refunded"}`,
			want:    EventOrderRefunded,
		},
		{
			name:    "missing type",
			payload: `{"order_id": "o1"}`,
			want:    EventUnknown,
		},
		{
			name:    "invalid json",
			payload: `{not json`,
			want:    EventUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Normalize([]byte(tt.payload))
			assert.Equal(t, tt.want, ev.Type)
		})
	}
}

func TestNormalizeCustomerFields(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantEmail string
		wantName  string
	}{
		{
			name:      "capitalized customer object",
			payload:   `{"Customer": {"email": "a@x.com", "full_name": "A B"}}`,
			wantEmail: "a@x.com",
			wantName:  "A B",
		},
		{
			name:      "lowercase customer object",
			payload:   `{"customer": {"email": "b@x.com", "name": "B"}}`,
			wantEmail: "b@x.com",
			wantName:  "B",
		},
		{
			name:      "first_name as last resort",
			payload:   `{"Customer": {"email": "c@x.com", "first_name": "C"}}`,
			wantEmail: "c@x.com",
			wantName:  "C",
		},
		{
			name:      "full_name beats name",
			payload:   `{"Customer": {"email": "d@x.com", "full_name": "Full", "name": "Short"}}`,
			wantEmail: "d@x.com",
			wantName:  "Full",
		},
		{
			name:      "missing customer falls back to unknown email",
			payload:   `{"order_id": "o1"}`,
			wantEmail: UnknownField,
			wantName:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Normalize([]byte(tt.payload))
			assert.Equal(t, tt.wantEmail, ev.CustomerEmail)
			assert.Equal(t, tt.wantName, ev.CustomerName)
		})
	}
}

func TestNormalizeOrderIDChain(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name:    "order_id wins",
			payload: `{"webhook_event_type": "order_approved", "order_id": "o1", "id": "x"}`,
			want:    "o1",
		},
		{
			name:    "id as fallback",
			payload: `{"webhook_event_type": "order_approved", "id": "x1"}`,
			want:    "x1",
		},
		{
			name:    "numeric id accepted",
			payload: `{"webhook_event_type": "order_approved", "id": 12345}`,
			want:    "12345",
		},
		{
			name:    "transaction_id only for revocation events",
			payload: `{"webhook_event_type": "subscription_canceled", "transaction_id": "t1"}`,
			want:    "t1",
		},
		{
			name:    "chargeback resolves transaction_id",
			payload: `{"webhook_event_type": "chargeback", "transaction_id": "t2"}`,
			want:    "t2",
		},
		{
			name:    "transaction_id ignored for purchases",
			payload: `{"webhook_event_type": "order_approved", "transaction_id": "t1"}`,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Normalize([]byte(tt.payload))
			assert.Equal(t, tt.want, ev.OrderID)
		})
	}
}

func TestNormalizeProductIDChain(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name:    "nested product object",
			payload: `{"Product": {"product_id": "p1"}}`,
			want:    "p1",
		},
		{
			name:    "lowercase product object",
			payload: `{"product": {"product_id": "p2"}}`,
			want:    "p2",
		},
		{
			name:    "top-level fallback",
			payload: `{"product_id": "p3"}`,
			want:    "p3",
		},
		{
			name:    "nested beats top-level",
			payload: `{"Product": {"product_id": "p1"}, "product_id": "p3"}`,
			want:    "p1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Normalize([]byte(tt.payload))
			assert.Equal(t, tt.want, ev.ProductID)
		})
	}
}

func TestNormalizeKeepsRawPayload(t *testing.T) {
	payload := `{"webhook_event_type": "order_approved", "order_id": "o1"}`
	ev := Normalize([]byte(payload))
	assert.Equal(t, payload, ev.RawPayload)
}

func TestEventIsRevocation(t *testing.T) {
	assert.True(t, Event{Type: EventOrderRefunded}.IsRevocation())
	assert.True(t, Event{Type: EventChargeback}.IsRevocation())
	assert.True(t, Event{Type: EventSubscriptionCanceled}.IsRevocation())
	assert.False(t, Event{Type: EventOrderApproved}.IsRevocation())
	assert.False(t, Event{Type: EventUnknown}.IsRevocation())
}
