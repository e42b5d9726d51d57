package paymentRoutes

import (
	paymentControllers "palpite/controllers/payment"
	"palpite/middleware"
	paymentValidators "palpite/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payments", middleware.JWTMiddleware)

	paymentGroup.Post("/checkout", paymentValidators.Checkout(), paymentControllers.CreateCheckout)
	paymentGroup.Post("/:id/confirm", paymentControllers.ConfirmPayment)
	paymentGroup.Patch("/:id/cancel", paymentControllers.CancelPurchase)
	paymentGroup.Get("/status/:predictionId", paymentControllers.GetPurchaseStatus)
	paymentGroup.Get("/mine", paymentControllers.ListMyPurchases)
}
