package main

import (
	"log"

	"siktp/config"
	"siktp/database"
	adminRoutes "siktp/routers/adminRoutes"
	authRoutes "siktp/routers/authRoutes"
	searchRoutes "siktp/routers/searchRoutes"
	"siktp/utils"

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
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve placeholder assets and the public search UI
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	searchRoutes.SetupSearchRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.StartStatScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
