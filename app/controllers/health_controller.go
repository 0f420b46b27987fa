package controllers

import (
	"github.com/campfirehq/campfire/internal/pkg/cache"
	"github.com/campfirehq/campfire/internal/pkg/database"
	"github.com/gofiber/fiber/v2"
)

// HandleHealth reports reachability of the service's dependencies.
func HandleHealth(c *fiber.Ctx) error {
	dbStatus := "ok"
	if db := database.GetDB(); db == nil {
		dbStatus = "down"
	} else if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	cacheStatus := "ok"
	if err := cache.Ping(); err != nil {
		cacheStatus = "down"
	}

	status := fiber.StatusOK
	overall := "ok"
	if dbStatus != "ok" {
		status = fiber.StatusServiceUnavailable
		overall = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":   overall,
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
