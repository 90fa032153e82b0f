package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the server
type Config struct {
	// Server settings
	Port        int
	CORSOrigins []string

	// Logging
	LogLevel  string
	LogFormat string // "json" or "console"

	// LinkedIn OAuth
	LinkedInClientID     string
	LinkedInClientSecret string
	LinkedInRedirectURL  string
	LinkedInScopes       []string

	// Client app deep link the callback redirects to with the access token
	AppCallbackURL string

	// Gemini
	GeminiAPIKey     string
	GeminiTextModel  string
	GeminiImageModel string

	// Bound applied to every outbound provider call
	UpstreamTimeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}

	// Server
	cfg.Port = getEnvInt("PORT", 3000)
	cfg.CORSOrigins = getEnvList("CORS_ORIGINS", []string{"http://localhost:3000"})

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")

	// LinkedIn OAuth
	cfg.LinkedInClientID = getEnv("LINKEDIN_CLIENT_ID", "")
	cfg.LinkedInClientSecret = getEnv("LINKEDIN_CLIENT_SECRET", "")
	if cfg.LinkedInClientID == "" || cfg.LinkedInClientSecret == "" {
		return nil, fmt.Errorf("LINKEDIN_CLIENT_ID and LINKEDIN_CLIENT_SECRET are required")
	}
	cfg.LinkedInRedirectURL = getEnv("LINKEDIN_REDIRECT_URL", "http://localhost:3000/auth/linkedin/callback")
	cfg.LinkedInScopes = getEnvList("LINKEDIN_SCOPES", []string{"openid", "profile", "email", "w_member_social"})

	cfg.AppCallbackURL = getEnv("APP_CALLBACK_URL", "postpilot://callback")

	// Gemini
	cfg.GeminiAPIKey = getEnv("GEMINI_API_KEY", "")
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	cfg.GeminiTextModel = getEnv("GEMINI_TEXT_MODEL", "gemini-2.5-flash")
	cfg.GeminiImageModel = getEnv("GEMINI_IMAGE_MODEL", "gemini-2.0-flash-preview-image-generation")

	cfg.UpstreamTimeout = getEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
