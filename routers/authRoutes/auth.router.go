package authRoutes

import (
	authControllers "palpite/controllers/auth"
	"palpite/middleware"
	authValidators "palpite/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/me", middleware.JWTMiddleware, authControllers.Me)
	authGroup.Patch("/profile", middleware.JWTMiddleware, authValidators.UpdateProfile(), authControllers.UpdateProfile)
}
