package predictionRoutes

import (
	predictionControllers "palpite/controllers/prediction"
	"palpite/middleware"
	predictionValidators "palpite/validators/prediction"

	"github.com/gofiber/fiber/v2"
)

func SetupPredictionRoutes(app *fiber.App) {
	// Public views: anonymous viewers are allowed, redaction handles gating
	predictionGroup := app.Group("/predictions")
	predictionGroup.Get("/", middleware.OptionalJWTMiddleware, predictionControllers.ListPredictions)
	predictionGroup.Get("/:id", middleware.OptionalJWTMiddleware, predictionControllers.GetPrediction)

	// Curation is admin-only
	adminGroup := app.Group("/admin/predictions", middleware.JWTMiddleware, middleware.AdminMiddleware)
	adminGroup.Post("/", predictionValidators.Create(), predictionControllers.CreatePrediction)
	adminGroup.Patch("/:id", predictionValidators.Update(), predictionControllers.UpdatePrediction)
	adminGroup.Delete("/:id", predictionControllers.DeletePrediction)
}
