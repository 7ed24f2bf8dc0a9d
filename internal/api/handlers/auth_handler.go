package handlers

import (
	"errors"
	"time"

	"Reel-Food-Backend/domain"
	"Reel-Food-Backend/internal/api/presenters"
	"Reel-Food-Backend/internal/middleware"
	"Reel-Food-Backend/pkg/jwt"
	"Reel-Food-Backend/pkg/partner"
	"Reel-Food-Backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		RegisterUser(c *fiber.Ctx) error
		LoginUser(c *fiber.Ctx) error
		LogoutUser(c *fiber.Ctx) error
		CurrentUser(c *fiber.Ctx) error
		RegisterPartner(c *fiber.Ctx) error
		LoginPartner(c *fiber.Ctx) error
		LogoutPartner(c *fiber.Ctx) error
		CurrentPartner(c *fiber.Ctx) error
		PartnerProfile(c *fiber.Ctx) error
	}

	authHandler struct {
		userService    user.UserService
		partnerService partner.PartnerService
		jwtService     jwt.JWTService
		validator      *validator.Validate
	}
)

func NewAuthHandler(
	userService user.UserService,
	partnerService partner.PartnerService,
	jwtService jwt.JWTService,
	validator *validator.Validate,
) AuthHandler {
	return &authHandler{
		userService:    userService,
		partnerService: partnerService,
		jwtService:     jwtService,
		validator:      validator,
	}
}

// setTokenCookie delivers the session token as an HTTP-only, secure,
// cross-site cookie so browser code never reads the raw token.
func (h *authHandler) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Expires:  time.Now().Add(h.jwtService.TokenTTL()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

func (h *authHandler) clearTokenCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

func (h *authHandler) RegisterUser(c *fiber.Ctx) error {
	req := new(domain.RegisterUserRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterUser, err)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterUser, err)
	}

	h.setTokenCookie(c, res.Token)
	return presenters.SuccessResponse(c, fiber.Map{"user": res.User}, fiber.StatusCreated, domain.MessageSuccessRegisterUser)
}

func (h *authHandler) LoginUser(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLoginUser, err)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLoginUser, err)
	}

	h.setTokenCookie(c, res.Token)
	return presenters.SuccessResponse(c, fiber.Map{"user": res.User}, fiber.StatusOK, domain.MessageSuccessLoginUser)
}

func (h *authHandler) LogoutUser(c *fiber.Ctx) error {
	h.clearTokenCookie(c)
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogoutUser)
}

func (h *authHandler) CurrentUser(c *fiber.Ctx) error {
	identityID := c.Locals("identity_id").(string)

	res, err := h.userService.Me(c.Context(), identityID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetCurrentUser, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCurrentUser, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"user": res}, fiber.StatusOK, domain.MessageSuccessGetCurrentUser)
}

func (h *authHandler) RegisterPartner(c *fiber.Ctx) error {
	req := new(domain.RegisterPartnerRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterPartner, err)
	}

	res, err := h.partnerService.Register(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterPartner, err)
	}

	h.setTokenCookie(c, res.Token)
	return presenters.SuccessResponse(c, fiber.Map{"foodPartner": res.FoodPartner}, fiber.StatusCreated, domain.MessageSuccessRegisterPartner)
}

func (h *authHandler) LoginPartner(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLoginPartner, err)
	}

	res, err := h.partnerService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLoginPartner, err)
	}

	h.setTokenCookie(c, res.Token)
	return presenters.SuccessResponse(c, fiber.Map{"foodPartner": res.FoodPartner}, fiber.StatusOK, domain.MessageSuccessLoginPartner)
}

func (h *authHandler) LogoutPartner(c *fiber.Ctx) error {
	h.clearTokenCookie(c)
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogoutPartner)
}

func (h *authHandler) CurrentPartner(c *fiber.Ctx) error {
	identityID := c.Locals("identity_id").(string)

	res, err := h.partnerService.Me(c.Context(), identityID)
	if err != nil {
		if errors.Is(err, domain.ErrPartnerNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPartner, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPartner, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"foodPartner": res}, fiber.StatusOK, domain.MessageSuccessGetPartner)
}

func (h *authHandler) PartnerProfile(c *fiber.Ctx) error {
	partnerID := c.Params("id")

	res, err := h.partnerService.Profile(c.Context(), partnerID)
	if err != nil {
		if errors.Is(err, domain.ErrPartnerNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPartner, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPartner, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"foodPartner": res.FoodPartner,
		"foodItems":   res.FoodItems,
	}, fiber.StatusOK, domain.MessageSuccessGetPartner)
}
