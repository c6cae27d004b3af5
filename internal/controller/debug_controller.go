package controller

import (
	"errors"

	"maverik-copilot-be/internal/pkg/serverutils"
	"maverik-copilot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDebugController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	InspectSession(ctx *fiber.Ctx) error
	PingRag(ctx *fiber.Ctx) error
	RagLatency(ctx *fiber.Ctx) error
}

type debugController struct {
	service service.IDebugService
}

func NewDebugController(service service.IDebugService) IDebugController {
	return &debugController{service: service}
}

func (c *debugController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/debug")
	h.Get("/sessions/:id", auth, c.InspectSession)
	h.Get("/rag/ping", c.PingRag)
	h.Get("/rag/latency", c.RagLatency)
}

func (c *debugController) InspectSession(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.InspectSession(ctx.UserContext(), userID, sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session inspection", res))
}

func (c *debugController) PingRag(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("RAG ping", c.service.PingRag(ctx.UserContext())))
}

func (c *debugController) RagLatency(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("RAG latency", c.service.MeasureRagLatency(ctx.UserContext())))
}
