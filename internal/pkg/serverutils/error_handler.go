package serverutils

import (
	"errors"
	"fmt"

	"maverik-copilot-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "Internal server error"

// ErrorHandlerMiddleware turns returned errors and panics into the JSON error envelope.
// Only *fiber.Error messages reach the client; anything else is logged and answered
// with a generic 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error(logger.Errors, "Panic recovered", map[string]interface{}{
					"error":      fmt.Errorf("%v", r),
					"endpoint":   c.Path(),
					"request_id": RequestID(c),
				})
				err = c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, internalErrorMessage))
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}
		return writeError(c, log, err)
	}
}

// FiberErrorHandler is installed as fiber.Config.ErrorHandler for errors raised
// outside the middleware chain.
func FiberErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return writeError(c, log, err)
	}
}

func writeError(c *fiber.Ctx, log logger.ILogger, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
	}

	log.Error(logger.Errors, "Unhandled error", map[string]interface{}{
		"error":       err,
		"endpoint":    c.Path(),
		"http_method": c.Method(),
		"request_id":  RequestID(c),
	})
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, internalErrorMessage))
}
