package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"youthcentre_backend/internals/configs"
	httpLogger "youthcentre_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the global chain; auth is mounted per group.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config) {
	app.Use(RequestID())
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(GlobalRateLimiter())
	app.Use(httpLogger.LoggerMiddleware())
}
