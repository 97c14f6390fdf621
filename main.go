package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ragecodemaster/landing/pkg/address"
	"github.com/ragecodemaster/landing/pkg/analytics"
	"github.com/ragecodemaster/landing/pkg/api"
	"github.com/ragecodemaster/landing/pkg/clients/relay"
	"github.com/ragecodemaster/landing/pkg/clients/telegram"
	"github.com/ragecodemaster/landing/pkg/config"
	"github.com/ragecodemaster/landing/pkg/logger"
	"github.com/ragecodemaster/landing/pkg/services"
	"github.com/ragecodemaster/landing/pkg/validation"
	"github.com/ragecodemaster/landing/pkg/views"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	logger.New(cfg.InstanceName, os.Stdout).Install()

	// Initialize API clients
	telegramClient := telegram.NewClient(telegram.Config{
		BotToken: cfg.TelegramBotToken,
		ChatID:   cfg.TelegramChatID,
		BaseURL:  cfg.TelegramAPIURL,
		Timeout:  cfg.NotifyTimeout,
	})

	var notifier services.Notifier
	if cfg.NotifyEndpoint != "" {
		log.Printf("Sending notifications through %s", cfg.NotifyEndpoint)
		notifier = services.RelayNotifier(relay.NewClient(cfg.NotifyEndpoint, cfg.NotifyTimeout))
	} else {
		notifier = services.TelegramNotifier(telegramClient)
	}

	// Initialize services
	validator := validation.New(address.NewHeuristic(cfg.AddressCheckDelay), time.Now)
	submissionService := services.NewLeadSubmissionService(
		validator,
		notifier,
		services.NewInFlight(cfg.InFlightTimeout),
		time.Now,
	)

	renderer := views.New(analytics.New(cfg.GtagID, cfg.GtagConversion))

	gin.SetMode(cfg.GinMode)

	// Initialize handlers and routes
	handlers := api.NewHandlers(submissionService, renderer, telegramClient)
	router := api.NewRouter(handlers, cfg.CORSOrigin)

	// Start the server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
