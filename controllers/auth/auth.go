package authController

import (
	"crypto/subtle"
	"log"

	"siktp/config"
	"siktp/database"
	"siktp/middleware"
	"siktp/models"
	authValidator "siktp/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Search features advertised to the public client
var features = []string{
	"Pencarian Nama",
	"Pencarian NIK",
	"Pencarian KK",
	"Pencarian Bulan Lahir",
	"Pencarian Tahun Lahir",
	"Pencarian Kecamatan",
}

// Config returns the public app metadata
func Config(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"appName":  config.AppConfig.AppName,
		"features": features,
	})
}

// Login checks the shared passphrase and issues a viewer token
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("login").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	secret := config.AppConfig.AppPassword
	if secret == "" ||
		subtle.ConstantTimeCompare([]byte(reqData.Password), []byte(secret)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Password salah",
		})
	}

	token, err := middleware.GenerateJWT("public", middleware.RoleViewer)
	if err != nil {
		log.Printf("Error generating viewer token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}

// AdminLogin checks the dashboard credentials and issues an admin token
func AdminLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("adminLogin").(*authValidator.AdminLoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	cfg := config.AppConfig

	usernameOK := subtle.ConstantTimeCompare([]byte(reqData.Username), []byte(cfg.AdminUsername)) == 1
	passwordOK := len(cfg.AdminPasswordHash) > 0 &&
		bcrypt.CompareHashAndPassword(cfg.AdminPasswordHash, []byte(reqData.Password)) == nil

	if !usernameOK || !passwordOK {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid credentials",
		})
	}

	token, err := middleware.GenerateJWT(reqData.Username, middleware.RoleAdmin)
	if err != nil {
		log.Printf("Error generating admin token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	entry := models.ActivityLog{
		Actor:     reqData.Username,
		Action:    models.ActionLogin,
		IPAddress: c.IP(),
	}
	if err := database.Database.Db.Create(&entry).Error; err != nil {
		log.Printf("Error recording admin login: %v", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}
