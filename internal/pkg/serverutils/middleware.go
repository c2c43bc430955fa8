package serverutils

import (
	"errors"
	"time"

	"helpdesk-assistant-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts uncaught errors into the JSON error
// envelope. Fiber errors keep their status code; everything else is a
// 500 with a generic message so internals never leak.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}

// AuditMiddleware logs every request with its status and latency.
func AuditMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		log.Info("http", "request completed", map[string]interface{}{
			"method":      ctx.Method(),
			"path":        ctx.Path(),
			"status":      ctx.Response().StatusCode(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return err
	}
}
