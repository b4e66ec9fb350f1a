package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultPort        = "8080"
	defaultDatabaseURL = "arteideas.db"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultJWTTTL      = "24h"
	// Peruvian IGV. Totals are stored tax-inclusive, so reports extract
	// the embedded tax as total * rate / (1 + rate).
	defaultTaxRate = "0.18"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	TaxRate     float64
}

// Load reads the runtime configuration from the environment, with .env as
// a convenience for local development.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		logrus.Info("Loaded environment from .env")
	}

	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = envOr("PORT", defaultPort)
	cfg.DatabaseURL = envOr("DATABASE_URL", defaultDatabaseURL)

	cfg.JWTSecret = envOr("JWT_SECRET", defaultJWTSecret)
	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	ttl, err := time.ParseDuration(envOr("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	rate, err := strconv.ParseFloat(envOr("IGV_RATE", defaultTaxRate), 64)
	if err != nil || rate < 0 || rate >= 1 {
		return nil, fmt.Errorf("invalid IGV_RATE %q", os.Getenv("IGV_RATE"))
	}
	cfg.TaxRate = rate

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
