package controller

import (
	"errors"

	"maverik-copilot-be/internal/dto"
	"maverik-copilot-be/internal/pkg/serverutils"
	"maverik-copilot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog")
	h.Get("", c.List)
	h.Get("/:name", c.Show)
}

func (c *catalogController) List(ctx *fiber.Ctx) error {
	res := dto.CatalogListResponse{Catalogs: c.service.ListCatalogs()}
	return ctx.JSON(serverutils.SuccessResponse("Success get catalogs", res))
}

func (c *catalogController) Show(ctx *fiber.Ctx) error {
	rows, err := c.service.GetCatalog(ctx.UserContext(), utils.CopyString(ctx.Params("name")))
	if err != nil {
		if errors.Is(err, service.ErrCatalogNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		return err
	}

	res := make([]dto.CatalogEntry, 0, len(rows))
	for _, r := range rows {
		res = append(res, dto.CatalogEntry{Id: r.Id, Desc: r.Desc})
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get catalog", res))
}
