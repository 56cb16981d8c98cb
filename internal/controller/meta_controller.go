package controller

import (
	"github.com/abhi-r/verdant/internal/constant"
	"github.com/abhi-r/verdant/internal/dto"
	"github.com/abhi-r/verdant/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IMetaController interface {
	RegisterRoutes(r fiber.Router)
	Version(ctx *fiber.Ctx) error
}

type metaController struct{}

func NewMetaController() IMetaController {
	return &metaController{}
}

func (c *metaController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/meta/v1")
	h.Get("version", c.Version)
}

func (c *metaController) Version(ctx *fiber.Ctx) error {
	res := dto.MetaVersionResponse{
		Version:  constant.AppVersion,
		Codename: constant.AppCodename,
	}
	return ctx.JSON(serverutils.SuccessResponse("App version", res))
}
