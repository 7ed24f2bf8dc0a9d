package middleware

import (
	"Reel-Food-Backend/domain"
	"Reel-Food-Backend/internal/api/presenters"
	"Reel-Food-Backend/internal/utils"
	"Reel-Food-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// TokenCookie is the HTTP-only session cookie carrying the signed token.
const TokenCookie = "token"

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService, requiredRole string) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	origin := utils.GetConfig("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	})
}

// AuthMiddleware resolves the session cookie to an identity and rejects
// tokens issued for the wrong identity kind. The resolved id and role
// are stored in locals for downstream handlers.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService, requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(TokenCookie)
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		identityID, role, err := jwtService.GetIdentityByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		if role != requiredRole {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrWrongIdentity)
		}

		c.Locals("identity_id", identityID)
		c.Locals("role", role)
		return c.Next()
	}
}
