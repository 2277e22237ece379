package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client is a thin wrapper over the Telegram Bot API exposing the two send
// operations the relay needs plus webhook registration.
type Client struct {
	bot *tgbotapi.BotAPI
}

// New creates a new Client. The token is validated against the Bot API
// (getMe) before the client is returned. An empty apiEndpoint selects the
// public api.telegram.org endpoint.
func New(token, apiEndpoint string) (*Client, error) {
	var (
		bot *tgbotapi.BotAPI
		err error
	)
	if apiEndpoint == "" {
		bot, err = tgbotapi.NewBotAPI(token)
	} else {
		bot, err = tgbotapi.NewBotAPIWithAPIEndpoint(token, apiEndpoint)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot api client: %w", err)
	}
	return &Client{bot: bot}, nil
}

// Username returns the bot account name reported by getMe.
func (c *Client) Username() string {
	return c.bot.Self.UserName
}

// SendMessage sends a plain text message to the given chat.
func (c *Client) SendMessage(chatID int64, text string) error {
	if _, err := c.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

// SendDocument sends a document to the given chat. fileIDOrURL is either a
// Telegram file id from a previous upload (re-sent without uploading again)
// or an http(s) URL that Telegram fetches itself.
func (c *Client) SendDocument(chatID int64, fileIDOrURL, caption string) error {
	doc := tgbotapi.NewDocument(chatID, documentFile(fileIDOrURL))
	doc.Caption = caption
	if _, err := c.bot.Send(doc); err != nil {
		return fmt.Errorf("failed to send telegram document: %w", err)
	}
	return nil
}

// EnsureWebhook registers webhookURL with Telegram so updates are pushed to
// this relay. The secret token is echoed back by Telegram on every delivery;
// an empty secret registers an unauthenticated webhook.
//
// setWebhook is called through MakeRequest because the typed WebhookConfig
// predates the secret_token parameter (Bot API 6.0).
func (c *Client) EnsureWebhook(webhookURL, secret string) error {
	params := tgbotapi.Params{"url": webhookURL}
	if secret != "" {
		params["secret_token"] = secret
	}
	if _, err := c.bot.MakeRequest("setWebhook", params); err != nil {
		return fmt.Errorf("failed to set telegram webhook: %w", err)
	}
	return nil
}

// RemoveWebhook deregisters the webhook, switching the bot back to polling
// eligibility. Used by the -delete-webhook operational flag.
func (c *Client) RemoveWebhook() error {
	if _, err := c.bot.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("failed to delete telegram webhook: %w", err)
	}
	return nil
}

// documentFile picks the wire representation for a document reference:
// http(s) URLs are fetched by Telegram, anything else is treated as a
// native file id.
func documentFile(ref string) tgbotapi.RequestFileData {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return tgbotapi.FileURL(ref)
	}
	return tgbotapi.FileID(ref)
}
