package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string // "development" or "production"
	FrontendURL string
	// SMTP Configuration
	EmailService  string
	EmailHost     string
	EmailPort     int
	EmailUser     string
	EmailPassword string
	CompanyEmail  string // Where contact form inquiries are delivered
	CompanyName   string // Display name on outgoing mail
	// Rate Limiting Configuration
	RateLimitMax    int
	RateLimitWindow time.Duration
	// Redis/Upstash Configuration (optional, in-memory fallback when unset)
	UpstashRedisURL      string
	UpstashRedisPassword string
}

// LoadConfig reads configuration from the environment. A .env file is loaded
// when present (local development); it is ignored in production deployments.
// Missing required email settings are a startup error, not a per-request one.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		Env:         getEnv("APP_ENV", "development"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		EmailService:  getEnv("EMAIL_SERVICE", "gmail"),
		EmailHost:     getEnv("EMAIL_HOST", "smtp.gmail.com"),
		EmailPort:     getEnvInt("EMAIL_PORT", 587),
		EmailUser:     getEnv("EMAIL_USER", ""),
		EmailPassword: getEnv("EMAIL_PASSWORD", ""),
		CompanyEmail:  getEnv("COMPANY_EMAIL", ""),
		CompanyName:   getEnv("COMPANY_NAME", "Grow Your Therapy"),

		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 3),
		RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 3600)) * time.Second,

		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces the required email settings. The process must not begin
// serving requests without working dispatch credentials.
func (c *Config) validate() error {
	var missing []string
	if c.EmailUser == "" {
		missing = append(missing, "EMAIL_USER")
	}
	if c.EmailPassword == "" {
		missing = append(missing, "EMAIL_PASSWORD")
	}
	if c.CompanyEmail == "" {
		missing = append(missing, "COMPANY_EMAIL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// IsProduction reports whether the server runs in production mode. Debug
// surfaces (test-email endpoint, error detail in responses) are disabled
// in production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
