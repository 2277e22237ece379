package auth

import (
	"crypto/subtle"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
)

const (
	// TelegramSecretHeader is set by Telegram on webhook deliveries when a
	// secret token was registered with setWebhook.
	TelegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"
	// BackendAPIKeyHeader carries the shared secret on calls from the resume
	// backend and on our calls to it.
	BackendAPIKeyHeader = "x-api-key"
)

// TelegramWebhookSecret verifies the secret token Telegram echoes back on
// webhook deliveries. An empty configured secret disables the check.
func TelegramWebhookSecret(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}
		if subtle.ConstantTimeCompare([]byte(c.Get(TelegramSecretHeader)), []byte(secret)) != 1 {
			return richerrors.Error{
				ExternalMsg: "Invalid webhook secret token",
				Code:        fiber.StatusUnauthorized,
			}
		}
		return c.Next()
	}
}

// BackendAPIKey verifies the shared secret presented by the resume backend.
// Unlike the Telegram secret this check is always enforced.
func BackendAPIKey(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if subtle.ConstantTimeCompare([]byte(c.Get(BackendAPIKeyHeader)), []byte(secret)) != 1 {
			return richerrors.Error{
				ExternalMsg: "Invalid API key",
				Code:        fiber.StatusForbidden,
			}
		}
		return c.Next()
	}
}
