package controllers

import (
	"strconv"

	"github.com/campfirehq/campfire/app/repository"
	"github.com/gofiber/fiber/v2"
)

const notificationPageSize = 50

// HandleListNotifications returns the newest notifications for a user.
// Guarded by the service token middleware; the community frontend proxies
// through its own session layer.
func HandleListNotifications(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil || userID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	repos := repository.GetGlobalRepositories()
	notifications, err := repos.Notification.GetByUserID(uint(userID), 0, notificationPageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal error"})
	}
	unread, err := repos.Notification.CountUnread(uint(userID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal error"})
	}

	return c.JSON(fiber.Map{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// HandleMarkNotificationRead flags one notification as read.
func HandleMarkNotificationRead(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid notification id"})
	}
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil || userID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	if err := repository.GetGlobalRepositories().Notification.MarkRead(uint(id), uint(userID)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal error"})
	}
	return c.JSON(fiber.Map{"success": true})
}
