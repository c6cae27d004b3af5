package serverutils

import (
	"time"

	"maverik-copilot-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestLogger assigns a request id and writes one maverik.requests record per request.
func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(LocalRequestID, requestID)
		c.Set(fiber.HeaderXRequestID, requestID)

		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		details := map[string]interface{}{
			"request_id":  requestID,
			"http_method": c.Method(),
			"endpoint":    c.Path(),
			"http_status": status,
			"duration_ms": float64(duration.Microseconds()) / 1000,
			"client_ip":   c.IP(),
		}
		if userID, ok := UserID(c); ok {
			details["user_id"] = userID
		}

		switch {
		case status >= 500:
			log.Error(logger.Requests, "Request failed", details)
		case status >= 400:
			log.Warn(logger.Requests, "Request completed with client error", details)
		default:
			log.Info(logger.Requests, "Request completed", details)
		}
		return err
	}
}

func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalRequestID).(string)
	return id
}
