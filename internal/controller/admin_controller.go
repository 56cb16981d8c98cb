package controller

import (
	"strconv"

	"github.com/abhi-r/verdant/internal/constant"
	"github.com/abhi-r/verdant/internal/dto"
	"github.com/abhi-r/verdant/internal/pkg/serverutils"
	"github.com/abhi-r/verdant/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
	GetFlowStats(ctx *fiber.Ctx) error
	GetFlowEvents(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{
		adminService: adminService,
	}
}

// requireAdmin runs after JwtMiddleware and rejects non-admin tokens.
func (c *adminController) requireAdmin(ctx *fiber.Ctx) error {
	role, ok := ctx.Locals("role").(string)
	if !ok || role != constant.AdminRole {
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse("Access denied: Admins only"))
	}
	return ctx.Next()
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")

	h.Post("login", c.Login)

	h.Use(serverutils.JwtMiddleware)
	h.Use(c.requireAdmin)
	h.Get("logs", c.GetLogs)
	h.Get("logs/:id", c.GetLogDetail)
	h.Get("stats/flows", c.GetFlowStats)
	h.Get("stats/flows/events", c.GetFlowEvents)
}

func (c *adminController) Login(ctx *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level", "")
	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))
	offset, _ := strconv.Atoi(ctx.Query("offset", "0"))

	logs, err := c.adminService.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("System logs", logs))
}

func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	entry, err := c.adminService.GetLogById(ctx.Params("id"))
	if err != nil {
		return err
	}
	if entry == nil {
		return serverutils.NewHttpError(fiber.StatusNotFound, "log entry not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Log detail", entry))
}

func (c *adminController) GetFlowStats(ctx *fiber.Ctx) error {
	res, err := c.adminService.FlowStats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Guided flow stats", res))
}

func (c *adminController) GetFlowEvents(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))
	offset, _ := strconv.Atoi(ctx.Query("offset", "0"))

	res, err := c.adminService.RecentFlowEvents(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Guided flow events", res))
}
