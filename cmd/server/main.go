package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/example/corpweb/internal/config"
	"github.com/example/corpweb/internal/database"
	"github.com/example/corpweb/internal/logger"
	"github.com/example/corpweb/internal/routes"
)

func main() {
	cfg := config.Load()

	log := logger.Init(cfg.AppEnv)
	defer log.Sync()

	db := database.Connect(cfg.DatabaseURL)

	app := fiber.New(fiber.Config{
		AppName: "Corpweb Backend",
		// Fiber's default 4 MiB body cap would reject uploads before the
		// handler can apply its own size check; leave it headroom above the
		// configured ceiling so the handler decides.
		BodyLimit:    int(cfg.MaxUploadBytes) + 1<<20,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.RequestLogger())

	app.Static(cfg.PublicUploadPath, cfg.UploadDir)

	routes.Register(app, db, cfg)

	log.Info("starting server", zap.String("port", cfg.AppPort))
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal("fiber listen error", zap.Error(err))
	}
}

// errorHandler keeps fiber errors as-is and hides everything else behind
// a generic 500 after logging it.
func errorHandler(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return c.Status(fe.Code).JSON(fiber.Map{
			"success": false,
			"error":   fe.Message,
		})
	}

	logger.L.Error("unhandled error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "internal server error",
	})
}
