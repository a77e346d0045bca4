package searchRoutes

import (
	searchController "siktp/controllers/search"
	"siktp/middleware"
	personValidator "siktp/validators/person"
	searchValidator "siktp/validators/search"

	"github.com/gofiber/fiber/v2"
)

func SetupSearchRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/search", searchValidator.Search(), middleware.JWTMiddleware, searchController.Search)
	api.Get("/person/:nik", personValidator.NIKParam(), middleware.JWTMiddleware, searchController.Person)
	api.Get("/family/:no_kk", middleware.JWTMiddleware, searchController.Family)
	api.Get("/photo/:nik", personValidator.NIKParam(), middleware.JWTMiddleware, searchController.Photo)
}
