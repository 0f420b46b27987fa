package router

import (
	"time"

	"github.com/campfirehq/campfire/app/controllers"
	"github.com/campfirehq/campfire/internal/pkg/middleware"
	"github.com/campfirehq/campfire/internal/pkg/ratelimit"
	"github.com/gofiber/fiber/v2"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", controllers.HandleHealth)

	// Payment provider deliveries. The limiter is a shared Redis counter so
	// the window holds across instances.
	api.Post("/webhooks/payment",
		ratelimit.New("payment-webhook", 120, time.Minute),
		controllers.HandlePaymentWebhook,
	)

	internal := api.Group("", middleware.RequireServiceToken())
	internal.Get("/notifications", controllers.HandleListNotifications)
	internal.Post("/notifications/:id/read", controllers.HandleMarkNotificationRead)
	internal.Get("/admin/webhooks", controllers.HandleListWebhookDeliveries)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
