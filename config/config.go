package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EmailConfig holds outbound email settings.
type EmailConfig struct {
	Provider           string // "ses" or "noop"
	FromAddress        string
	FromName           string
	ContactRecipient   string // where contact-form messages are delivered
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string
	SESInsecureTLS     bool
}

// Config holds all configuration for the application.
type Config struct {
	Environment    string
	Port           string
	DBUrl          string // empty means the in-memory document store is used
	JWTSecret      string
	JWTExpiry      time.Duration
	AllowedOrigins []string
	AdminKey       string        // X-Admin-Key value; empty disables admin routes
	AuthDelay      time.Duration // artificial latency on auth operations
	CredentialMode string        // "plain" (store-and-compare) or "bcrypt"
	Email          EmailConfig
}

// Load loads configuration from environment variables.
// It attempts to load from a .env file when not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the .env file usually does not exist and we rely on
	// system environment variables, so a load failure is only a warning.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		Port:           os.Getenv("PORT"),
		DBUrl:          os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiry:      24 * time.Hour,
		AdminKey:       os.Getenv("ADMIN_KEY"),
		CredentialMode: os.Getenv("CREDENTIAL_MODE"),
		Email: EmailConfig{
			Provider:           os.Getenv("EMAIL_PROVIDER"),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           os.Getenv("EMAIL_FROM_NAME"),
			ContactRecipient:   os.Getenv("EMAIL_CONTACT_RECIPIENT"),
			SESRegion:          os.Getenv("SES_REGION"),
			SESAccessKeyID:     os.Getenv("SES_ACCESS_KEY_ID"),
			SESSecretAccessKey: os.Getenv("SES_SECRET_ACCESS_KEY"),
			SESInsecureTLS:     os.Getenv("SES_INSECURE_SKIP_VERIFY") == "true",
		},
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
	}
	if cfg.CredentialMode == "" {
		cfg.CredentialMode = "plain"
	}
	if s := os.Getenv("JWT_EXPIRY_HOURS"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			cfg.JWTExpiry = time.Duration(v) * time.Hour
		}
	}
	if s := os.Getenv("AUTH_DELAY_MS"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			cfg.AuthDelay = time.Duration(v) * time.Millisecond
		}
	}
	if s := os.Getenv("ALLOWED_ORIGINS"); s != "" {
		for _, o := range strings.Split(s, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}
