package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/campfirehq/campfire/app/repository"
	"github.com/campfirehq/campfire/internal/pkg/cache"
	"github.com/campfirehq/campfire/internal/pkg/database"
	"github.com/campfirehq/campfire/internal/pkg/env"
	"github.com/campfirehq/campfire/internal/pkg/router"
	"github.com/campfirehq/campfire/internal/pkg/webhook"
)

const (
	staleSweepInterval = 10 * time.Minute
	staleSweepMaxAge   = 30 * time.Minute
)

func main() {
	app := NewApplication()

	startStaleDeliverySweep()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	repository.InitializeFactory(database.GetDB())

	app := fiber.New(fiber.Config{
		AppName: "campfire",
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// SWAGGER / OPENAPI
	if basePath := findBasePath(); basePath != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/docs/api/",
			FilePath: basePath + "public/docs/v1/openapi.yml",
			Path:     "v1",
		}))
	}

	// ROUTER
	router.InstallRouter(app)

	return app
}

// startStaleDeliverySweep periodically fails audit rows stuck in
// "processing", so a crash mid-handler never leaves them open forever.
func startStaleDeliverySweep() {
	svc := webhook.NewServiceFromDB(database.GetDB())
	go func() {
		ticker := time.NewTicker(staleSweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			n, err := svc.ReconcileStale(staleSweepMaxAge)
			if err != nil {
				log.Printf("stale delivery sweep failed: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("stale delivery sweep marked %d deliveries as failed", n)
			}
		}
	}()
}

func findBasePath() string {
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/campfire to project root
		"../../../", // Fallback
	}
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public"); !os.IsNotExist(err) {
			return path
		}
	}
	return ""
}
