package middlewares

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"youthcentre_backend/internals/logger"
)

// RecoveryMiddleware turns a panic into a 500 and logs the stack through zap.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logger.Named("http").Errorw("panic recovered",
				"path", c.Path(),
				"method", c.Method(),
				"panic", fmt.Sprint(e),
				"stack", string(debug.Stack()),
			)
		},
	})
}
