package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds application configuration
type Config struct {
	Port      string
	AppName   string
	SaltRound int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTKey string

	// Shared passphrase guarding the public search tool
	AppPassword string

	// Admin dashboard credentials; the password is kept only as a bcrypt hash
	AdminUsername     string
	AdminPasswordHash []byte

	// Base URL of the external image host holding citizen photos
	PhotoBaseURL string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		AppName:   getEnv("APP_NAME", "Sistem Pencarian KTP"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "siktp"),
		DBPort:     getEnv("DB_PORT", "5432"),

		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		AppPassword:   getEnv("APP_PASSWORD", ""),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),

		PhotoBaseURL: getEnv("PHOTO_BASE_URL", "https://lh3.googleusercontent.com"),
	}

	adminPassword := getEnv("ADMIN_PASSWORD", "")
	if adminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), AppConfig.SaltRound)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		AppConfig.AdminPasswordHash = hash
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.AppPassword == "" {
		log.Println("Warning: APP_PASSWORD is empty. Public login will reject everyone.")
	}
	if len(AppConfig.AdminPasswordHash) == 0 {
		log.Println("Warning: ADMIN_PASSWORD is empty. Admin login will reject everyone.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
