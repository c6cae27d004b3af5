package controller

import (
	"maverik-copilot-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// parseBody decodes the JSON body into req and runs its validate tags.
func parseBody(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return serverutils.ValidateRequest(req)
}

func sessionIDParam(ctx *fiber.Ctx) (int64, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "session id must be a positive integer")
	}
	return int64(id), nil
}

func currentUser(ctx *fiber.Ctx) (int64, error) {
	id, ok := serverutils.UserID(ctx)
	if !ok {
		return 0, fiber.NewError(fiber.StatusForbidden, "Invalid token or expired token")
	}
	return id, nil
}
