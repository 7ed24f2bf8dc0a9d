package handlers

import (
	"errors"

	"Reel-Food-Backend/domain"
	"Reel-Food-Backend/internal/api/presenters"
	"Reel-Food-Backend/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		CreateFood(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		GetSavedFoodItems(c *fiber.Ctx) error
		GetMyFoodItems(c *fiber.Ctx) error
		ToggleLike(c *fiber.Ctx) error
		ToggleSave(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
		GetUploadCredentials(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

// CreateFood accepts either a multipart form with a video file or a JSON
// body carrying the URL of an already-uploaded video (the direct-upload
// flow).
func (h *foodHandler) CreateFood(c *fiber.Ctx) error {
	partnerID := c.Locals("identity_id").(string)
	req := new(domain.CreateFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if file, err := c.FormFile("video"); err == nil {
		req.Video = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFood, err)
	}

	res, err := h.foodService.CreateFood(c.Context(), *req, partnerID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFood, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"food": res}, fiber.StatusCreated, domain.MessageSuccessCreateFood)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	userID := c.Locals("identity_id").(string)

	items, err := h.foodService.GetFoodItems(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"foodItems": items}, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetSavedFoodItems(c *fiber.Ctx) error {
	userID := c.Locals("identity_id").(string)

	items, err := h.foodService.GetSavedFoodItems(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSavedFoods, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"foodItems": items}, fiber.StatusOK, domain.MessageSuccessGetSavedFoods)
}

func (h *foodHandler) GetMyFoodItems(c *fiber.Ctx) error {
	partnerID := c.Locals("identity_id").(string)

	items, err := h.foodService.GetMyFoodItems(c.Context(), partnerID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMyFoods, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"foodItems": items}, fiber.StatusOK, domain.MessageSuccessGetMyFoods)
}

func (h *foodHandler) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("identity_id").(string)
	req := new(domain.ToggleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleLike, err)
	}

	res, err := h.foodService.ToggleLike(c.Context(), userID, req.FoodID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedToggleLike, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleLike, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"toggle": res}, fiber.StatusOK, domain.MessageSuccessToggleLike)
}

func (h *foodHandler) ToggleSave(c *fiber.Ctx) error {
	userID := c.Locals("identity_id").(string)
	req := new(domain.ToggleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleSave, err)
	}

	res, err := h.foodService.ToggleSave(c.Context(), userID, req.FoodID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedToggleSave, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleSave, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"toggle": res}, fiber.StatusOK, domain.MessageSuccessToggleSave)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	partnerID := c.Locals("identity_id").(string)
	foodID := c.Params("id")

	if err := h.foodService.DeleteFood(c.Context(), foodID, partnerID); err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteFood, err)
		case errors.Is(err, domain.ErrNotFoodOwner):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedDeleteFood, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFood, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFood)
}

func (h *foodHandler) GetUploadCredentials(c *fiber.Ctx) error {
	creds, err := h.foodService.GetUploadCredentials(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadAuth, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"signature": creds.Signature,
		"token":     creds.Token,
		"expire":    creds.Expire,
		"publicKey": creds.PublicKey,
		"uploadUrl": creds.UploadURL,
	}, fiber.StatusOK, domain.MessageSuccessUploadAuth)
}
