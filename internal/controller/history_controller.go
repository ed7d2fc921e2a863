package controller

import (
	"research-gap-be/internal/pkg/serverutils"
	"research-gap-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHistoryController interface {
	RegisterRoutes(r fiber.Router)
	Recent(ctx *fiber.Ctx) error
}

type historyController struct {
	service service.IHistoryService
}

func NewHistoryController(service service.IHistoryService) IHistoryController {
	return &historyController{service: service}
}

func (c *historyController) RegisterRoutes(r fiber.Router) {
	r.Get("/history", c.Recent)
}

func (c *historyController) Recent(ctx *fiber.Ctx) error {
	res, err := c.service.Recent(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get recent topics", res))
}
