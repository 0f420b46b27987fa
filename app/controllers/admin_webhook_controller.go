package controllers

import (
	"strconv"

	"github.com/campfirehq/campfire/app/repository"
	"github.com/gofiber/fiber/v2"
)

const webhookListDefaultLimit = 100

// HandleListWebhookDeliveries exposes the audit log for inspection and
// replay debugging. Raw payloads are included since this surface sits
// behind the service token.
func HandleListWebhookDeliveries(c *fiber.Ctx) error {
	limit := webhookListDefaultLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 500 {
		limit = v
	}

	repos := repository.GetGlobalRepositories()

	status := c.Query("status")
	var (
		deliveries interface{}
		err        error
	)
	if status != "" {
		deliveries, err = repos.Webhook.ListByStatus(status, limit)
	} else {
		deliveries, err = repos.Webhook.ListRecent(limit)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal error"})
	}

	return c.JSON(fiber.Map{"deliveries": deliveries})
}
