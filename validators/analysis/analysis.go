package analysisValidator

import (
	"palpite/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Generate validator middleware
func Generate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			MatchName string `json:"matchName"`
			League    string `json:"league"`
			TeamHome  string `json:"teamHome"`
			TeamAway  string `json:"teamAway"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.MatchName) == "" {
			errors["matchName"] = "matchName is required!"
		}
		if strings.TrimSpace(reqData.League) == "" {
			errors["league"] = "league is required!"
		}
		if strings.TrimSpace(reqData.TeamHome) == "" {
			errors["teamHome"] = "teamHome is required!"
		}
		if strings.TrimSpace(reqData.TeamAway) == "" {
			errors["teamAway"] = "teamAway is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAnalysis", reqData)
		return c.Next()
	}
}
