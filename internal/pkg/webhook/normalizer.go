package webhook

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Normalize extracts the canonical event fields from an arbitrary provider
// payload. The provider varies its payload shape by event family, so every
// field is resolved through an ordered fallback chain instead of a fixed
// struct. Extraction never fails; missing fields surface as zero values
// (email falls back to the provider's literal "unknown").
func Normalize(raw []byte) Event {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		payload = map[string]any{}
	}

	ev := Event{RawPayload: string(raw)}

	ev.Type = firstString(payload, "webhook_event_type", "event")
	if ev.Type == "" {
		ev.Type = EventUnknown
	}

	customer := firstObject(payload, "Customer", "customer")
	ev.CustomerEmail = firstString(customer, "email")
	if ev.CustomerEmail == "" {
		ev.CustomerEmail = UnknownField
	}
	ev.CustomerName = firstString(customer, "full_name", "name", "first_name")

	ev.OrderID = firstString(payload, "order_id", "id")
	if ev.OrderID == "" && ev.IsRevocation() {
		// Chargebacks sometimes arrive without an order reference but carry
		// the original transaction id.
		ev.OrderID = firstString(payload, "transaction_id")
	}

	product := firstObject(payload, "Product", "product")
	ev.ProductID = firstString(product, "product_id")
	if ev.ProductID == "" {
		ev.ProductID = firstString(payload, "product_id")
	}

	return ev
}

// firstString walks the keys in order and returns the first non-empty
// string-ish value. Numbers are accepted because providers are inconsistent
// about quoting ids.
func firstString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := obj[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return v.String()
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func firstObject(obj map[string]any, keys ...string) map[string]any {
	for _, key := range keys {
		if nested, ok := obj[key].(map[string]any); ok {
			return nested
		}
	}
	return map[string]any{}
}
