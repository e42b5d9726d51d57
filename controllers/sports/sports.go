package sportsController

import (
	"palpite/middleware"
	"palpite/utils"

	"github.com/gofiber/fiber/v2"
)

// GetLeagues returns the fixed league catalog.
func GetLeagues(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leagues fetched!", utils.GetLeagues())
}

// GetUpcomingMatches returns scheduled fixtures, live or mocked. The
// caller cannot tell which source served the list.
func GetUpcomingMatches(c *fiber.Ctx) error {
	leagueId := c.QueryInt("leagueId", 0)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Matches fetched!", utils.GetUpcomingMatches(leagueId))
}
