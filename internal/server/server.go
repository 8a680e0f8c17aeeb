package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/openfloor/planvec/internal/config"
)

// scanBodyLimit caps upload size. Large-format scans at 600dpi fit well
// inside this.
const scanBodyLimit = 64 << 20

// New builds the HTTP application with middleware and routes registered.
func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "planvec",
		BodyLimit:    scanBodyLimit,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	app.Get("/healthz", Healthz)
	app.Post("/vectorise", Vectorise)
	app.Post("/vectorise/svg", VectoriseSVG)

	return app
}
