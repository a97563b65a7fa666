package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultDatabaseURL        = "crewhub.db"
	defaultPort               = "8080"
	defaultSessionTTL         = "168h"
	defaultJWTAccessTTL       = "15m"
	defaultSessionTokenPepper = "change-me-session-pepper"
	defaultJWTSecret          = "change-me-jwt-secret"
	defaultCookieSecure       = "false"
	defaultCookieSameSite     = "Lax"
	defaultCookiePath         = "/"
	defaultSessionCookieName  = "crewhub_session"
	defaultMaxSessionsPerUser = "10"
)

type Config struct {
	AppEnv             string
	DatabaseURL        string
	Port               string
	SessionTTL         time.Duration
	SessionTokenPepper string
	SessionCookieName  string
	MaxSessionsPerUser int
	JWTSecret          string
	JWTAccessTTL       time.Duration
	CookieSecure       bool
	CookieSameSite     string
	CookiePath         string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.Port = getEnv("PORT", defaultPort)
	cfg.SessionTokenPepper = strings.TrimSpace(getEnv("SESSION_TOKEN_PEPPER", defaultSessionTokenPepper))
	cfg.SessionCookieName = getEnv("SESSION_COOKIE_NAME", defaultSessionCookieName)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.MaxSessionsPerUser, err = strconv.Atoi(getEnv("MAX_SESSIONS_PER_USER", defaultMaxSessionsPerUser))
	if err != nil || cfg.MaxSessionsPerUser <= 0 {
		return nil, fmt.Errorf("MAX_SESSIONS_PER_USER must be a positive integer")
	}

	cfg.CookieSecure = strings.EqualFold(getEnv("COOKIE_SECURE", defaultCookieSecure), "true")
	cfg.CookieSameSite = getEnv("COOKIE_SAMESITE", defaultCookieSameSite)
	cfg.CookiePath = getEnv("COOKIE_PATH", defaultCookiePath)

	if cfg.AppEnv == "production" {
		if cfg.SessionTokenPepper == defaultSessionTokenPepper {
			return nil, fmt.Errorf("SESSION_TOKEN_PEPPER must be set in prod")
		}
		if cfg.JWTSecret == defaultJWTSecret {
			return nil, fmt.Errorf("JWT_SECRET must be set in prod")
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}
