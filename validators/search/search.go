package searchValidator

import (
	"strings"

	"siktp/middleware"
	"siktp/repository"

	"github.com/gofiber/fiber/v2"
)

// SearchRequest is the validated public search payload.
type SearchRequest struct {
	SearchType string `json:"searchType"`
	SearchTerm string `json:"searchTerm"`
	Page       int    `json:"page"`
}

func Search() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SearchRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.SearchTerm = strings.TrimSpace(reqData.SearchTerm)

		// Unknown search fields are rejected rather than falling through to
		// an unfiltered page
		if !repository.ValidSearchType(reqData.SearchType) {
			errors["searchType"] = "Unknown search type!"
		}

		if reqData.SearchTerm == "" {
			errors["searchTerm"] = "Search term is required!"
		}

		if reqData.Page == 0 {
			reqData.Page = 1
		}
		if reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("search", reqData)
		return c.Next()
	}
}
