package handlers

import (
	"errors"

	"Reel-Food-Backend/domain"
	"Reel-Food-Backend/internal/api/presenters"
	"Reel-Food-Backend/pkg/ai"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AIHandler interface {
		GenerateReelMeta(c *fiber.Ctx) error
	}

	aiHandler struct {
		aiService ai.AIService
		validator *validator.Validate
	}
)

func NewAIHandler(aiService ai.AIService, validator *validator.Validate) AIHandler {
	return &aiHandler{
		aiService: aiService,
		validator: validator,
	}
}

func (h *aiHandler) GenerateReelMeta(c *fiber.Ctx) error {
	req := new(domain.GenerateReelMetaRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateReelMeta, err)
	}

	res, err := h.aiService.GenerateReelMeta(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrFoodTypeRequired) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateReelMeta, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGenerateReelMeta, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"content": res.Content,
		"meta":    res.Meta,
	}, fiber.StatusOK, domain.MessageSuccessGenerateReelMeta)
}
