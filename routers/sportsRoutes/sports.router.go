package sportsRoutes

import (
	sportsControllers "palpite/controllers/sports"

	"github.com/gofiber/fiber/v2"
)

func SetupSportsRoutes(app *fiber.App) {
	sportsGroup := app.Group("/sports")

	sportsGroup.Get("/leagues", sportsControllers.GetLeagues)
	sportsGroup.Get("/matches", sportsControllers.GetUpcomingMatches)
}
