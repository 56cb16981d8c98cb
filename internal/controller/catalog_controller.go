package controller

import (
	"github.com/abhi-r/verdant/internal/dto"
	"github.com/abhi-r/verdant/internal/pkg/serverutils"
	"github.com/abhi-r/verdant/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Suggest(ctx *fiber.Ctx) error
	Meta(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("products/:category/suggest", c.Suggest)
	h.Get("products/:category/meta", c.Meta)
	h.Get("products/:category/:id", c.Show)
	h.Get("products/:category", c.List)
}

func (c *catalogController) List(ctx *fiber.Ctx) error {
	var query dto.CatalogQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.catalogService.List(ctx.Context(), ctx.Params("category"), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list products", res))
}

func (c *catalogController) Suggest(ctx *fiber.Ctx) error {
	q := ctx.Query("q", "")

	res, err := c.catalogService.Suggest(ctx.Context(), ctx.Params("category"), q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success suggest products", res))
}

func (c *catalogController) Meta(ctx *fiber.Ctx) error {
	res, err := c.catalogService.Meta(ctx.Context(), ctx.Params("category"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success catalog metadata", res))
}

func (c *catalogController) Show(ctx *fiber.Ctx) error {
	res, err := c.catalogService.Show(ctx.Context(), ctx.Params("category"), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show product", res))
}
