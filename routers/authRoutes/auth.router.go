package authRoutes

import (
	authController "siktp/controllers/auth"
	authValidator "siktp/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/config", authController.Config)
	api.Post("/login", authValidator.Login(), authController.Login)
	api.Post("/admin/login", authValidator.AdminLogin(), authController.AdminLogin)
}
