package adminRoutes

import (
	adminController "siktp/controllers/admin"
	"siktp/middleware"
	personValidator "siktp/validators/person"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin")

	admin.Get("/persons", personValidator.List(), middleware.JWTMiddleware, middleware.AdminOnly, adminController.PersonList)
	admin.Post("/persons", personValidator.Create(), middleware.JWTMiddleware, middleware.AdminOnly, adminController.CreatePerson)
	admin.Put("/persons/:nik", personValidator.Update(), middleware.JWTMiddleware, middleware.AdminOnly, adminController.UpdatePerson)
	admin.Delete("/persons/:nik", personValidator.NIKParam(), middleware.JWTMiddleware, middleware.AdminOnly, adminController.DeletePerson)
	admin.Get("/stats", middleware.JWTMiddleware, middleware.AdminOnly, adminController.Stats)
}
