package presenters

import (
	"Reel-Food-Backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// SuccessResponse writes the uniform success envelope: the message plus
// the handler's payload fields merged at the top level.
func SuccessResponse(c *fiber.Ctx, data fiber.Map, status int, message string) error {
	payload := fiber.Map{
		"message": message,
	}
	for key, value := range data {
		payload[key] = value
	}
	return c.Status(status).JSON(payload)
}

// ErrorResponse writes the uniform error envelope. The underlying error
// detail is exposed only outside production.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	payload := fiber.Map{
		"message": message,
	}
	if err != nil && utils.GetConfig("APP_ENV") != "production" {
		payload["error"] = err.Error()
	}
	return c.Status(status).JSON(payload)
}
