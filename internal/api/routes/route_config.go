package routes

import (
	"time"

	"Reel-Food-Backend/domain"
	"Reel-Food-Backend/internal/api/handlers"
	"Reel-Food-Backend/internal/middleware"
	"Reel-Food-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

const (
	attemptLimit  = 5
	attemptWindow = 15 * time.Minute
)

type Config struct {
	App         *fiber.App
	AuthHandler handlers.AuthHandler
	FoodHandler handlers.FoodHandler
	AIHandler   handlers.AIHandler
	Middleware  middleware.Middleware
	JWTService  jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Food()
	c.Partner()
	c.AI()
	c.GuestRoute()
}

// attemptLimiter caps login/register attempts per client IP. Each call
// creates an independent window so login and register are limited
// separately.
func attemptLimiter(window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        attemptLimit,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": domain.MessageTooManyAttempts,
			})
		},
	})
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/user/register", attemptLimiter(attemptWindow), c.AuthHandler.RegisterUser)
		auth.Post("/user/login", attemptLimiter(attemptWindow), c.AuthHandler.LoginUser)
		auth.Get("/user/logout", c.AuthHandler.LogoutUser)
		auth.Get("/user/me", c.Middleware.AuthMiddleware(c.JWTService, domain.RoleUser), c.AuthHandler.CurrentUser)

		auth.Post("/food-partner/register", attemptLimiter(attemptWindow), c.AuthHandler.RegisterPartner)
		auth.Post("/food-partner/login", attemptLimiter(attemptWindow), c.AuthHandler.LoginPartner)
		auth.Get("/food-partner/logout", c.AuthHandler.LogoutPartner)
	}
}

func (c *Config) Food() {
	userAuth := c.Middleware.AuthMiddleware(c.JWTService, domain.RoleUser)
	partnerAuth := c.Middleware.AuthMiddleware(c.JWTService, domain.RoleFoodPartner)

	food := c.App.Group("/api/food")
	{
		food.Post("", partnerAuth, c.FoodHandler.CreateFood)
		food.Get("", userAuth, c.FoodHandler.GetFoodItems)
		food.Get("/saved", userAuth, c.FoodHandler.GetSavedFoodItems)
		food.Get("/my-foods", partnerAuth, c.FoodHandler.GetMyFoodItems)
		food.Get("/imagekit-auth", partnerAuth, c.FoodHandler.GetUploadCredentials)
		food.Post("/like", userAuth, c.FoodHandler.ToggleLike)
		food.Post("/save", userAuth, c.FoodHandler.ToggleSave)
		food.Delete("/:id", partnerAuth, c.FoodHandler.DeleteFood)
	}
}

func (c *Config) Partner() {
	partnerAuth := c.Middleware.AuthMiddleware(c.JWTService, domain.RoleFoodPartner)

	partner := c.App.Group("/api/food-partner")
	{
		partner.Get("/profile/me", partnerAuth, c.AuthHandler.CurrentPartner)
		partner.Get("/:id", c.AuthHandler.PartnerProfile)
	}
}

func (c *Config) AI() {
	partnerAuth := c.Middleware.AuthMiddleware(c.JWTService, domain.RoleFoodPartner)

	ai := c.App.Group("/api/ai")
	{
		ai.Post("/generate-reel-meta", partnerAuth, c.AIHandler.GenerateReelMeta)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
