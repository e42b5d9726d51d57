package main

import (
	"palpite/config"
	"palpite/database"
	adminRoutes "palpite/routers/adminRoutes"
	authRoutes "palpite/routers/authRoutes"
	paymentRoutes "palpite/routers/paymentRoutes"
	predictionRoutes "palpite/routers/predictionRoutes"
	sportsRoutes "palpite/routers/sportsRoutes"
	"palpite/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",    // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization",   // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	predictionRoutes.SetupPredictionRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	sportsRoutes.SetupSportsRoutes(app)

	// Cancel abandoned pending purchases in the background
	utils.InitializePurchaseScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
