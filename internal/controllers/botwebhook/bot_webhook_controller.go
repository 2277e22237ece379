// Package botwebhook ingests Telegram webhook updates and relays resume
// requests to the generation backend.
package botwebhook

import (
	"context"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/resumeforge/telegram-relay/internal/clients/resumeapi"
)

// submitTimeout bounds the detached backend submission.
const submitTimeout = resumeapi.DefaultSubmitTimeout

// Messenger sends messages back to the originating chat.
type Messenger interface {
	SendMessage(chatID int64, text string) error
}

// ResumeBackend accepts resume generation jobs.
type ResumeBackend interface {
	SubmitJob(ctx context.Context, job *resumeapi.JobSubmission) (string, error)
}

// Controller handles Telegram webhook updates.
type Controller struct {
	messenger Messenger
	backend   ResumeBackend
	botName   string
}

// NewController creates a new Controller. botName is the bot's username,
// used to recognize /command@botname addressing in group chats.
func NewController(messenger Messenger, backend ResumeBackend, botName string) *Controller {
	return &Controller{
		messenger: messenger,
		backend:   backend,
		botName:   botName,
	}
}

// HandleUpdate godoc
// @Summary      Receive a Telegram webhook update
// @Description  Classifies the incoming message and either replies with usage guidance or acknowledges the request and submits it to the resume backend. The submission is detached; the webhook response never waits for it.
// @Tags         Telegram
// @Accept       json
// @Success      200  "Update accepted or ignored"
// @Failure      401  "Invalid webhook secret token"
// @Failure      500  "Update could not be parsed or the reply could not be sent"
// @Router       /tg-webhook [post]
func (ctl *Controller) HandleUpdate(c *fiber.Ctx) error {
	logger := zerolog.Ctx(c.UserContext())

	var update tgbotapi.Update
	if err := c.BodyParser(&update); err != nil {
		return fmt.Errorf("failed to parse webhook update: %w", err)
	}

	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		// Edited messages, channel posts, member events. Nothing to relay.
		return c.SendStatus(fiber.StatusOK)
	}
	chatID := msg.Chat.ID

	reply, jd := classify(msg.Text, ctl.botName)
	if reply != "" {
		if err := ctl.messenger.SendMessage(chatID, reply); err != nil {
			return richerrors.Error{
				ExternalMsg: "Failed to send reply",
				Err:         err,
				Code:        fiber.StatusInternalServerError,
			}
		}
		return c.SendStatus(fiber.StatusOK)
	}

	job := &resumeapi.JobSubmission{
		UserID:         msg.From.ID,
		JobDescription: jd,
		Meta: resumeapi.SubmissionMeta{
			Username: msg.From.UserName,
			ChatID:   chatID,
		},
	}

	// The acknowledgement must land before any backend traffic starts.
	if err := ctl.messenger.SendMessage(chatID, ackText); err != nil {
		return richerrors.Error{
			ExternalMsg: "Failed to acknowledge message",
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}

	submissionID := uuid.New().String()
	logger.Info().
		Str("submissionId", submissionID).
		Int64("chatId", chatID).
		Int("jdLength", len(jd)).
		Msg("accepted resume request")

	go ctl.submitJob(logger.With().Str("submissionId", submissionID).Logger(), chatID, job)

	return c.SendStatus(fiber.StatusOK)
}

// submitJob runs detached from the webhook response. It owns its error
// boundary: nothing escapes it, the user gets a best-effort notice on
// failure.
func (ctl *Controller) submitJob(logger zerolog.Logger, chatID int64, job *resumeapi.JobSubmission) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("panic during backend submission")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()

	jobID, err := ctl.backend.SubmitJob(ctx, job)
	if err != nil {
		logger.Error().Err(err).Msg("failed to submit job to resume backend")
		if sendErr := ctl.messenger.SendMessage(chatID, submitFailedText); sendErr != nil {
			logger.Error().Err(sendErr).Msg("failed to notify user of submission failure")
		}
		return
	}
	logger.Info().Str("jobId", jobID).Msg("job submitted to resume backend")
}
