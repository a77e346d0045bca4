package middleware

import (
	"net/http/httptest"
	"testing"

	"siktp/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWTConfig() {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
}

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"role":    c.Locals("role"),
			"subject": c.Locals("subject"),
		})
	})
	app.Get("/admin", JWTMiddleware, AdminOnly, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestJWTMiddlewareRejectsMissingToken(t *testing.T) {
	setupJWTConfig()
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMalformedHeader(t *testing.T) {
	setupJWTConfig()
	app := testApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareAcceptsIssuedToken(t *testing.T) {
	setupJWTConfig()
	app := testApp()

	token, err := GenerateJWT("public", RoleViewer)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareRejectsTamperedToken(t *testing.T) {
	setupJWTConfig()
	app := testApp()

	token, err := GenerateJWT("public", RoleViewer)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminOnly(t *testing.T) {
	setupJWTConfig()
	app := testApp()

	viewerToken, err := GenerateJWT("public", RoleViewer)
	require.NoError(t, err)
	adminToken, err := GenerateJWT("admin", RoleAdmin)
	require.NoError(t, err)

	// A viewer token cannot reach admin routes
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+viewerToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
