package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Configuration of the service.
type Configuration struct {
	Env         string
	Port        uint16
	Secret      string
	Database    string
	TokenExpiry time.Duration
}

// Load reads the configuration from the environment, merging a .env
// file when one is present next to the binary.
func Load() (Configuration, error) {
	_ = godotenv.Load()

	cfg := Configuration{
		Env:      getEnv("APP_ENV", "development"),
		Secret:   getEnv("APP_SECRET", "chocoflix-secret"),
		Database: getEnv("MONGODB_URL", "mongodb://localhost:27017/chocoflix"),
	}

	port, err := strconv.ParseUint(getEnv("PORT", "3000"), 10, 16)
	if err != nil {
		return cfg, fmt.Errorf("invalid PORT: %w", err)
	}
	cfg.Port = uint16(port)

	expiry, err := strconv.Atoi(getEnv("TOKEN_EXPIRY_SECONDS", "300"))
	if err != nil {
		return cfg, fmt.Errorf("invalid TOKEN_EXPIRY_SECONDS: %w", err)
	}
	cfg.TokenExpiry = time.Duration(expiry) * time.Second

	return cfg, nil
}

// Production reports whether the service runs in the production
// environment.
func (c Configuration) Production() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
