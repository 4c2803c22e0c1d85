package server

import (
	"scdb-loader/core/logger"
	"scdb-loader/core/middleware/auth"
	"scdb-loader/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

// New builds the Fiber application serving the files named in files from
// dir. Anything else in dir, such as run logs, is answered with 404.
func New(cfg Config, dir string, files []string, logg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every log line of a request can be correlated
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		err := c.Next()
		l.Debug("Request served",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
		)
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowOrigins}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Use(auth.New(auth.Config{ApiKey: cfg.ApiKey}))

	served := make(map[string]bool, len(files))
	for _, f := range files {
		served["/"+f] = true
	}
	app.Use(func(c *fiber.Ctx) error {
		if !served[c.Path()] {
			return fiber.ErrNotFound
		}
		return c.Next()
	})

	app.Static("/", dir, fiber.Static{
		Browse: false,
		MaxAge: cfg.CacheSeconds,
	})

	return app
}
