package controllers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/campfirehq/campfire/internal/pkg/database"
	"github.com/campfirehq/campfire/internal/pkg/webhook"
	"github.com/gofiber/fiber/v2"
)

// webhookProcessor is the slice of the pipeline service this controller
// needs; tests inject a stub.
type webhookProcessor interface {
	Process(ctx context.Context, rawBody []byte, signatureHeader string) (*webhook.Outcome, error)
}

// HandlePaymentWebhook receives one delivery from the payment provider and
// runs it through the fulfillment pipeline. The response status tells the
// provider whether to retry: 2xx acknowledges, anything else redelivers.
func HandlePaymentWebhook(c *fiber.Ctx) error {
	svc := webhook.NewServiceFromDB(database.GetDB())
	return processPaymentWebhook(c, svc)
}

func processPaymentWebhook(c *fiber.Ctx, svc webhookProcessor) error {
	rawBody := append([]byte(nil), c.BodyRaw()...)
	signature := strings.TrimSpace(c.Get(webhook.SignatureHeader))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	_, err := svc.Process(ctx, rawBody, signature)
	switch {
	case err == nil:
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
	case errors.Is(err, webhook.ErrIntegrationInactive):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": webhook.ErrIntegrationInactive.Error()})
	case errors.Is(err, webhook.ErrIncompleteData):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": webhook.ErrIncompleteData.Error()})
	case errors.Is(err, webhook.ErrInvalidSignature):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid signature"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal error"})
	}
}
