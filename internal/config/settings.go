package config

import "errors"

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// TelegramBotToken authenticates the relay against the Telegram Bot API.
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	// TelegramWebhookSecret is echoed back by Telegram on webhook calls.
	// When empty the webhook route accepts unauthenticated calls.
	TelegramWebhookSecret string `env:"TELEGRAM_WEBHOOK_SECRET"`
	// TelegramAPIURL overrides the Bot API endpoint, mainly for local testing.
	TelegramAPIURL string `env:"TELEGRAM_API_URL"`
	// PublicURL is the externally reachable base URL of this relay. When set,
	// the Telegram webhook is registered against it at startup.
	PublicURL string `env:"PUBLIC_URL"`

	ResumeBackendURL    string `env:"RESUME_BACKEND_URL"`
	ResumeBackendAPIKey string `env:"RESUME_BACKEND_API_KEY"`
}

// Validate reports the first missing required setting.
func (s *Settings) Validate() error {
	if s.TelegramBotToken == "" {
		return errors.New("TELEGRAM_BOT_TOKEN is required")
	}
	if s.ResumeBackendURL == "" {
		return errors.New("RESUME_BACKEND_URL is required")
	}
	if s.ResumeBackendAPIKey == "" {
		return errors.New("RESUME_BACKEND_API_KEY is required")
	}
	return nil
}
