package analysisController

import (
	"palpite/middleware"
	"palpite/utils"

	"github.com/gofiber/fiber/v2"
)

// GenerateAnalysis produces AI analysis text for a match. The generator
// never fails: when the AI backend is unavailable the deterministic
// fallback text is returned with a 200.
func GenerateAnalysis(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAnalysis").(*struct {
		MatchName string `json:"matchName"`
		League    string `json:"league"`
		TeamHome  string `json:"teamHome"`
		TeamAway  string `json:"teamAway"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	analysis := utils.GenerateMatchAnalysis(reqData.MatchName, reqData.League, reqData.TeamHome, reqData.TeamAway)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analysis generated!", fiber.Map{
		"analysis": analysis,
	})
}
