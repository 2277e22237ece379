// Package app wires the relay's collaborators and HTTP surface together.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"

	_ "github.com/resumeforge/telegram-relay/docs" // Import Swagger docs
	"github.com/resumeforge/telegram-relay/internal/auth"
	"github.com/resumeforge/telegram-relay/internal/clients/resumeapi"
	"github.com/resumeforge/telegram-relay/internal/clients/telegram"
	"github.com/resumeforge/telegram-relay/internal/config"
	"github.com/resumeforge/telegram-relay/internal/controllers/botwebhook"
	"github.com/resumeforge/telegram-relay/internal/controllers/delivery"
)

// WebhookPath is where Telegram pushes updates. It is appended to PUBLIC_URL
// when the webhook is registered at startup.
const WebhookPath = "/tg-webhook"

func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	telegramClient, err := telegram.New(settings.TelegramBotToken, settings.TelegramAPIURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}
	logger.Info().Str("bot", telegramClient.Username()).Msg("Authorized against the Telegram Bot API")

	if settings.PublicURL != "" {
		webhookURL := strings.TrimRight(settings.PublicURL, "/") + WebhookPath
		if err := telegramClient.EnsureWebhook(webhookURL, settings.TelegramWebhookSecret); err != nil {
			return nil, fmt.Errorf("failed to register telegram webhook: %w", err)
		}
		logger.Info().Str("url", webhookURL).Msg("Telegram webhook registered")
	}

	backendClient, err := resumeapi.New(settings.ResumeBackendURL, settings.ResumeBackendAPIKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume backend client: %w", err)
	}

	app := CreateFiberApp(logger, telegramClient, backendClient, settings)
	return app, nil
}

// CreateFiberApp sets up the relay routes.
func CreateFiberApp(logger zerolog.Logger, telegramClient *telegram.Client, backendClient *resumeapi.Client, settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting Telegram Resume Relay...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Telegram Resume Relay!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ok": true,
			"ts": time.Now().UnixMilli(),
		})
	})

	botController := botwebhook.NewController(telegramClient, backendClient, telegramClient.Username())
	deliveryController := delivery.NewController(telegramClient)
	logger.Info().Msg("Registering routes...")

	backendKey := auth.BackendAPIKey(settings.ResumeBackendAPIKey)

	app.Post(WebhookPath, auth.TelegramWebhookSecret(settings.TelegramWebhookSecret), botController.HandleUpdate)
	app.Post("/resume-ready", backendKey, deliveryController.ResumeReady)
	app.Post("/admin/resend", backendKey, deliveryController.AdminResend)

	return app
}
