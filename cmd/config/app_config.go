package config

import (
	"errors"
	"os"
	"time"

	"Reel-Food-Backend/internal/api/handlers"
	"Reel-Food-Backend/internal/api/routes"
	"Reel-Food-Backend/internal/middleware"
	"Reel-Food-Backend/internal/utils"
	"Reel-Food-Backend/internal/utils/mailing"
	"Reel-Food-Backend/internal/utils/storage"
	"Reel-Food-Backend/pkg/ai"
	"Reel-Food-Backend/pkg/food"
	"Reel-Food-Backend/pkg/jwt"
	"Reel-Food-Backend/pkg/partner"
	"Reel-Food-Backend/pkg/password"
	"Reel-Food-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		ErrorHandler:      globalErrorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	var uploadAuth storage.UploadAuthorizer = s3
	if utils.GetConfig("UPLOAD_PROVIDER") != "s3" {
		uploadAuth = storage.NewImageKit()
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	partnerRepository := partner.NewPartnerRepository(db)
	foodRepository := food.NewFoodRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	hasher := password.NewBcryptHasher()
	userService := user.NewUserService(userRepository, hasher, jwtService)
	partnerService := partner.NewPartnerService(partnerRepository, foodRepository, hasher, jwtService, mailing.SendMail)
	foodService := food.NewFoodService(foodRepository, s3, uploadAuth)
	aiService := ai.NewAIService(ai.NewGeminiGenerator())

	// Handler
	authHandler := handlers.NewAuthHandler(userService, partnerService, jwtService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	aiHandler := handlers.NewAIHandler(aiService, validator)

	// routes
	routesConfig := routes.Config{
		App:         app,
		AuthHandler: authHandler,
		FoodHandler: foodHandler,
		AIHandler:   aiHandler,
		Middleware:  middlewares,
		JWTService:  jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

// globalErrorHandler is the last stop for errors no handler mapped. The
// detail is only echoed outside production.
func globalErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	payload := fiber.Map{"message": message}
	if utils.GetConfig("APP_ENV") != "production" {
		payload["stack"] = err.Error()
	}
	return c.Status(code).JSON(payload)
}
