package controllers

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campfirehq/campfire/internal/pkg/webhook"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProcessor struct {
	outcome *webhook.Outcome
	err     error

	gotBody      []byte
	gotSignature string
}

func (s *stubProcessor) Process(ctx context.Context, rawBody []byte, signatureHeader string) (*webhook.Outcome, error) {
	s.gotBody = rawBody
	s.gotSignature = signatureHeader
	return s.outcome, s.err
}

func newWebhookTestApp(stub *stubProcessor) *fiber.App {
	app := fiber.New()
	app.Post("/api/webhooks/payment", func(c *fiber.Ctx) error {
		return processPaymentWebhook(c, stub)
	})
	return app
}

func TestPaymentWebhookSuccessResponse(t *testing.T) {
	stub := &stubProcessor{outcome: &webhook.Outcome{Handled: true}}
	app := newWebhookTestApp(stub)

	body := `{"webhook_event_type":"order_approved","order_id":"o1"}`
	req := httptest.NewRequest("POST", "/api/webhooks/payment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(webhook.SignatureHeader, "abc123")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	payload, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"success":true}`, string(payload))

	assert.Equal(t, body, string(stub.gotBody))
	assert.Equal(t, "abc123", stub.gotSignature)
}

func TestPaymentWebhookErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "integration inactive",
			err:        webhook.ErrIntegrationInactive,
			wantStatus: fiber.StatusBadRequest,
			wantError:  "integration not active",
		},
		{
			name:       "incomplete data",
			err:        webhook.ErrIncompleteData,
			wantStatus: fiber.StatusBadRequest,
			wantError:  "incomplete webhook data",
		},
		{
			name:       "invalid signature",
			err:        webhook.ErrInvalidSignature,
			wantStatus: fiber.StatusUnauthorized,
			wantError:  "invalid signature",
		},
		{
			name:       "unexpected handler error",
			err:        errors.New("db exploded"),
			wantStatus: fiber.StatusInternalServerError,
			wantError:  "Internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubProcessor{err: tt.err}
			app := newWebhookTestApp(stub)

			req := httptest.NewRequest("POST", "/api/webhooks/payment", strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			payload, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(payload), tt.wantError)
		})
	}
}

func TestPaymentWebhookWrappedErrorMapping(t *testing.T) {
	// Wrapped sentinels still map to their status codes.
	stub := &stubProcessor{err: errors.Join(errors.New("context"), webhook.ErrIncompleteData)}
	app := newWebhookTestApp(stub)

	req := httptest.NewRequest("POST", "/api/webhooks/payment", strings.NewReader(`{}`))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
