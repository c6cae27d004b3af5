package controller

import (
	"errors"

	"maverik-copilot-be/internal/dto"
	"maverik-copilot-be/internal/pkg/serverutils"
	"maverik-copilot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICopilotController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	CreateSession(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	SendTurn(ctx *fiber.Ctx) error
	ListTurns(ctx *fiber.Ctx) error
}

type copilotController struct {
	advisoryService service.IAdvisoryService
	relayService    service.IChatRelayService
}

func NewCopilotController(advisoryService service.IAdvisoryService, relayService service.IChatRelayService) ICopilotController {
	return &copilotController{
		advisoryService: advisoryService,
		relayService:    relayService,
	}
}

func (c *copilotController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/copilot/sessions")
	h.Use(auth)
	h.Post("", c.CreateSession)
	h.Get("", c.ListSessions)
	h.Post("/:id", c.SendTurn)
	h.Get("/:id", c.ListTurns)
}

func (c *copilotController) CreateSession(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateSessionRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.advisoryService.CreateSession(ctx.UserContext(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrObjectiveRequired) || errors.Is(err, service.ErrUnknownLookup) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
		}
		return err
	}
	return ctx.JSON(res)
}

func (c *copilotController) ListSessions(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.advisoryService.ListSessions(ctx.UserContext(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// SendTurn answers 200 with null when the RAG service could not produce an answer.
func (c *copilotController) SendTurn(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.TurnRequest
	if len(ctx.Body()) > 0 {
		if err := parseBody(ctx, &req); err != nil {
			return err
		}
	}

	res, err := c.relayService.SendTurn(ctx.UserContext(), userID, sessionID, req.Input)
	if err != nil {
		return err
	}

	switch res.State {
	case service.TurnDelivered, service.TurnFallbackDelivered:
		return ctx.JSON(service.ToTurnResponse(res.Detail))
	}

	switch res.Reason {
	case service.RejectNotFound:
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, service.ErrSessionNotFound.Error()))
	case service.RejectMalformedSession:
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "session is missing its owner or survey answers"))
	default:
		return ctx.JSON(nil)
	}
}

func (c *copilotController) ListTurns(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.advisoryService.ListSessionDetails(ctx.UserContext(), userID, sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		return err
	}
	return ctx.JSON(res)
}
