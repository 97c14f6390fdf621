package config

import (
	"os"
	"time"
)

// Config holds all application configuration values
type Config struct {
	Port         string
	GinMode      string
	InstanceName string
	CORSOrigin   string

	TelegramBotToken string
	TelegramChatID   string
	TelegramAPIURL   string

	// NotifyEndpoint, when set, sends lead notifications to a remote relay
	// instead of calling Telegram from this process.
	NotifyEndpoint string
	NotifyTimeout  time.Duration

	AddressCheckDelay time.Duration
	InFlightTimeout   time.Duration

	GtagID         string
	GtagConversion string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "release"),
		InstanceName:      getEnv("INSTANCE_NAME", "landing-1"),
		CORSOrigin:        getEnv("CORS_ORIGIN", "*"),
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:    os.Getenv("TELEGRAM_CHAT_ID"),
		TelegramAPIURL:    getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
		NotifyEndpoint:    os.Getenv("NOTIFY_ENDPOINT"),
		NotifyTimeout:     getEnvAsDuration("NOTIFY_TIMEOUT", 10*time.Second),
		AddressCheckDelay: getEnvAsDuration("ADDRESS_CHECK_DELAY", 0),
		InFlightTimeout:   getEnvAsDuration("INFLIGHT_TIMEOUT", time.Minute),
		GtagID:            os.Getenv("GTAG_ID"),
		GtagConversion:    os.Getenv("GTAG_CONVERSION"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if dur, err := time.ParseDuration(value); err == nil {
			return dur
		}
	}
	return defaultValue
}
