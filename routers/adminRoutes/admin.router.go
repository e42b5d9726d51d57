package adminRoutes

import (
	adminControllers "palpite/controllers/admin"
	analysisControllers "palpite/controllers/analysis"
	"palpite/middleware"
	analysisValidators "palpite/validators/analysis"
	userValidators "palpite/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminMiddleware)

	adminGroup.Get("/users", adminControllers.ListUsers)
	adminGroup.Patch("/users/:id/admin", userValidators.SetAdmin(), adminControllers.SetAdmin)
	adminGroup.Post("/analysis", analysisValidators.Generate(), analysisControllers.GenerateAnalysis)
}
