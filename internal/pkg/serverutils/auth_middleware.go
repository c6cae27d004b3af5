package serverutils

import (
	"strings"

	"maverik-copilot-be/internal/pkg/logger"
	"maverik-copilot-be/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalUserID    = "user_id"
	LocalUserName  = "user_name"
	LocalRequestID = "request_id"
)

const (
	msgMissingAuthorization = "Invalid authorization code"
	msgInvalidScheme        = "Invalid authentication scheme"
	msgInvalidToken         = "Invalid token or expired token"
)

// BearerAuth requires "Authorization: Bearer <token>" and stores the verified claims
// in Locals. Every rejection is a 403 with a fixed message.
func BearerAuth(issuer *token.Issuer, log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if header == "" {
			return reject(c, log, msgMissingAuthorization)
		}

		scheme, credentials, _ := strings.Cut(header, " ")
		if scheme != "Bearer" {
			return reject(c, log, msgInvalidScheme)
		}
		credentials = strings.TrimSpace(credentials)
		if credentials == "" {
			return reject(c, log, msgMissingAuthorization)
		}

		claims, err := issuer.Verify(credentials)
		if err != nil {
			return reject(c, log, msgInvalidToken)
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserName, claims.UserName)
		return c.Next()
	}
}

func reject(c *fiber.Ctx, log logger.ILogger, message string) error {
	log.Warn(logger.Auth, "Request rejected by bearer auth", map[string]interface{}{
		"reason":     message,
		"endpoint":   c.Path(),
		"request_id": RequestID(c),
	})
	return c.Status(fiber.StatusForbidden).JSON(ErrorResponse(fiber.StatusForbidden, message))
}

// UserID returns the authenticated user id set by BearerAuth.
func UserID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(LocalUserID).(int64)
	return id, ok
}
