package config

import (
	"fmt"
	"os"
)

// Config holds all startup configuration for the application.
type Config struct {
	Port                string
	DatabaseURL         string
	AppURL              string
	ResendAPIKey        string
	MailFrom            string
	StripeSecretKey     string
	StripeWebhookSecret string
}

var cfg Config

// Load reads configuration from the environment. Call after godotenv.Load.
func Load() error {
	cfg = Config{
		Port:                os.Getenv("PORT"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		AppURL:              os.Getenv("APP_URL"),
		ResendAPIKey:        os.Getenv("RESEND_API_KEY"),
		MailFrom:            os.Getenv("MAIL_FROM"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	if cfg.MailFrom == "" {
		cfg.MailFrom = "assistant@onboardflow.com"
	}

	required := map[string]string{
		"DATABASE_URL":          cfg.DatabaseURL,
		"APP_URL":               cfg.AppURL,
		"RESEND_API_KEY":        cfg.ResendAPIKey,
		"STRIPE_SECRET_KEY":     cfg.StripeSecretKey,
		"STRIPE_WEBHOOK_SECRET": cfg.StripeWebhookSecret,
	}

	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s environment variable is not set", name)
		}
	}

	return nil
}

func Get() Config {
	return cfg
}

// Set replaces the loaded configuration. Intended for tests.
func Set(c Config) {
	cfg = c
}
