package controller

import (
	"research-gap-be/internal/dto"
	"research-gap-be/internal/pkg/serverutils"
	"research-gap-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISavedQueryController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type savedQueryController struct {
	service service.ISavedQueryService
}

func NewSavedQueryController(service service.ISavedQueryService) ISavedQueryController {
	return &savedQueryController{service: service}
}

func (c *savedQueryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/saved-queries")
	h.Get("", c.GetAll)
	h.Post("", c.Save)
	h.Get(":id", c.Show)
	h.Delete(":id", c.Delete)
}

func (c *savedQueryController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all saved queries", res))
}

func (c *savedQueryController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show saved query", res))
}

func (c *savedQueryController) Save(ctx *fiber.Ctx) error {
	var req dto.SaveResearchQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := c.service.Save(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save query", res))
}

func (c *savedQueryController) Delete(ctx *fiber.Ctx) error {
	if err := c.service.Delete(ctx.UserContext(), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete saved query", nil))
}
