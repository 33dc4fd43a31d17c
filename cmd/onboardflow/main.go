package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/onboardflow/onboardflow/db"
	"github.com/onboardflow/onboardflow/internal/config"
	"github.com/onboardflow/onboardflow/internal/notify"
	"github.com/onboardflow/onboardflow/internal/payments"
	"github.com/onboardflow/onboardflow/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	if err := config.Load(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	cfg := config.Get()

	if err := db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	payments.Init()
	notify.Init(notify.NewResendSender(cfg.ResendAPIKey, cfg.MailFrom))

	r := router.NewRouter()

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
