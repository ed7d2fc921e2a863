package controller

import (
	"research-gap-be/internal/dto"
	"research-gap-be/internal/pkg/serverutils"
	"research-gap-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IResearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	GenerateInsights(ctx *fiber.Ctx) error
}

type researchController struct {
	service service.IResearchService
}

func NewResearchController(service service.IResearchService) IResearchController {
	return &researchController{service: service}
}

func (c *researchController) RegisterRoutes(r fiber.Router) {
	r.Get("/search", c.Search)
	r.Get("/generate-insights", c.GenerateInsights)
}

func parseTopic(ctx *fiber.Ctx) (string, error) {
	var q dto.TopicQuery
	if err := ctx.QueryParser(&q); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := serverutils.ValidateRequest(q); err != nil {
		return "", err
	}
	return q.Topic, nil
}

// Search answers with the bare ResearchResult; the explorer UI stores it as is.
func (c *researchController) Search(ctx *fiber.Ctx) error {
	topic, err := parseTopic(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Search(ctx.UserContext(), topic)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *researchController) GenerateInsights(ctx *fiber.Ctx) error {
	topic, err := parseTopic(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.RegenerateInsights(ctx.UserContext(), topic)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
