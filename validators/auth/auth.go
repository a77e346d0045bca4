package authValidator

import (
	"strings"

	"siktp/middleware"

	"github.com/gofiber/fiber/v2"
)

// LoginRequest is the public tool's passphrase login payload.
type LoginRequest struct {
	Password string `json:"password"`
}

// AdminLoginRequest is the dashboard credential pair.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Password) == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("login", reqData)
		return c.Next()
	}
}

func AdminLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AdminLoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Username) == "" {
			errors["username"] = "Username is required!"
		}
		if strings.TrimSpace(reqData.Password) == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("adminLogin", reqData)
		return c.Next()
	}
}
