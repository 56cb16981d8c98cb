package controller

import (
	"github.com/abhi-r/verdant/internal/dto"
	"github.com/abhi-r/verdant/internal/pkg/serverutils"
	"github.com/abhi-r/verdant/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFlowController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Select(ctx *fiber.Ctx) error
	Advance(ctx *fiber.Ctx) error
	Retreat(ctx *fiber.Ctx) error
	Abandon(ctx *fiber.Ctx) error
}

type flowController struct {
	flowService service.IFlowService
}

func NewFlowController(flowService service.IFlowService) IFlowController {
	return &flowController{
		flowService: flowService,
	}
}

func (c *flowController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/flow/v1")
	h.Post("sessions", c.Start)
	h.Get("sessions/:id", c.Show)
	h.Post("sessions/:id/select", c.Select)
	h.Post("sessions/:id/advance", c.Advance)
	h.Post("sessions/:id/retreat", c.Retreat)
	h.Delete("sessions/:id", c.Abandon)
}

func (c *flowController) Start(ctx *fiber.Ctx) error {
	res, err := c.flowService.Start(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success start guided flow", res))
}

func (c *flowController) Show(ctx *fiber.Ctx) error {
	res, err := c.flowService.Show(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show guided flow", res))
}

func (c *flowController) Select(ctx *fiber.Ctx) error {
	var req dto.SelectOptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.flowService.Select(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success select option", res))
}

func (c *flowController) Advance(ctx *fiber.Ctx) error {
	res, err := c.flowService.Advance(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success advance guided flow", res))
}

func (c *flowController) Retreat(ctx *fiber.Ctx) error {
	res, err := c.flowService.Retreat(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success retreat guided flow", res))
}

func (c *flowController) Abandon(ctx *fiber.Ctx) error {
	if err := c.flowService.Abandon(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success abandon guided flow", nil))
}
