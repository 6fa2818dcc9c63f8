package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string
	UploadDir    string // Directory for uploaded blog images
	JWTSecret    string
	CORSOrigin   string
	ClientDir    string // Built frontend, served when Production is set
	Production   bool
}

// Load loads configuration from environment variables or sets defaults.
// JWT_SECRET has no default and must be supplied.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "3002")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	return &Config{
		ServerPort:   port,
		DatabasePath: getEnv("DATABASE_PATH", "./webfolio.db"),
		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
		JWTSecret:    secret,
		CORSOrigin:   getEnv("CORS_ORIGIN", "*"),
		ClientDir:    getEnv("CLIENT_DIR", "./client/build"),
		Production:   os.Getenv("APP_ENV") == "production",
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
