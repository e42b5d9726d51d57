package paymentValidator

import (
	"palpite/middleware"

	"github.com/gofiber/fiber/v2"
)

// Checkout validator middleware
func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PredictionID uint `json:"predictionId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PredictionID == 0 {
			errors["predictionId"] = "predictionId is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCheckout", reqData)
		return c.Next()
	}
}
