package userValidator

import (
	"palpite/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetAdmin validator middleware
func SetAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			IsAdmin *bool `json:"isAdmin"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.IsAdmin == nil {
			errors["isAdmin"] = "isAdmin is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSetAdmin", reqData)
		return c.Next()
	}
}
