package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"schools24_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain in order:
// recovery → CORS → rate limiting → request logging.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(logger.LoggerMiddleware())
}
