// Package delivery relays backend completion callbacks to Telegram chats.
package delivery

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Texts sent to the user on the delivery path.
const (
	resumeCaption      = "Your tailored resume"
	apologyText        = "Your resume was generated but the file did not come through. Please try sending the job description again."
	deliveryFailedText = "Sorry, something went wrong while delivering your resume. Please try again later."

	defaultResendCaption = "Resent resume"
)

// Messenger delivers messages and documents to a chat.
type Messenger interface {
	SendMessage(chatID int64, text string) error
	SendDocument(chatID int64, fileIDOrURL, caption string) error
}

// Controller handles backend-originated delivery callbacks.
type Controller struct {
	messenger Messenger
}

// NewController creates a new Controller.
func NewController(messenger Messenger) *Controller {
	return &Controller{messenger: messenger}
}

// ResumeReady godoc
// @Summary      Deliver a finished resume
// @Description  Receives the backend's completion callback and relays the outcome to the requesting chat. Delivery order is document, HR contact, job id; the response reports the definitive delivery outcome.
// @Tags         Delivery
// @Accept       json
// @Produce      json
// @Param        request  body      ResumeReadyRequest  true  "Completion notice"
// @Success      200      {object}  OKResponse          "Outcome relayed to the user"
// @Failure      400      {object}  ErrorResponse       "Missing userId"
// @Failure      403      "Invalid API key"
// @Failure      500      {object}  ErrorResponse       "Delivery failed"
// @Security     APIKeyAuth
// @Router       /resume-ready [post]
func (ctl *Controller) ResumeReady(c *fiber.Ctx) error {
	logger := zerolog.Ctx(c.UserContext())

	var notice ResumeReadyRequest
	if err := c.BodyParser(&notice); err != nil {
		logger.Error().Err(err).Msg("failed to parse resume-ready payload")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "internal error"})
	}
	if notice.UserID.Missing() {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "missing userId"})
	}
	chatID := notice.UserID.Int64()

	if err := ctl.deliver(logger, chatID, &notice); err != nil {
		logger.Error().Err(err).Str("jobId", notice.JobID).Msg("failed to deliver resume")
		if sendErr := ctl.messenger.SendMessage(chatID, deliveryFailedText); sendErr != nil {
			logger.Error().Err(sendErr).Msg("failed to send delivery failure notice")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to deliver resume"})
	}
	return c.JSON(OKResponse{OK: true})
}

// deliver relays the completion notice to the chat. The first send error
// wins; later sends in the sequence do not run once one fails.
func (ctl *Controller) deliver(logger *zerolog.Logger, chatID int64, notice *ResumeReadyRequest) error {
	if !notice.Completed() {
		return ctl.messenger.SendMessage(chatID, failureText(notice.JobID))
	}

	contact := notice.ContactInfo()
	if ref := notice.DocumentRef(); ref != "" {
		if err := ctl.messenger.SendDocument(chatID, ref, completionCaption(contact)); err != nil {
			return err
		}
	} else {
		logger.Warn().Str("jobId", notice.JobID).Msg("completed notice carries no document reference")
		if err := ctl.messenger.SendMessage(chatID, apologyText); err != nil {
			return err
		}
	}

	if contact != "" {
		if err := ctl.messenger.SendMessage(chatID, contactText(contact)); err != nil {
			return err
		}
	}
	if notice.JobID != "" {
		if err := ctl.messenger.SendMessage(chatID, jobIDText(notice.JobID)); err != nil {
			return err
		}
	}
	return nil
}

// AdminResend godoc
// @Summary      Resend a stored resume document
// @Description  Sends a previously generated document to a chat once more. No follow-up messages are sent and failures produce no user-facing notice.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request  body      AdminResendRequest  true  "Resend order"
// @Success      200      {object}  OKResponse     "Document sent"
// @Failure      400      {object}  ErrorResponse  "Missing userId or file reference"
// @Failure      403      "Invalid API key"
// @Failure      500      {object}  ErrorResponse  "Send failed"
// @Security     APIKeyAuth
// @Router       /admin/resend [post]
func (ctl *Controller) AdminResend(c *fiber.Ctx) error {
	logger := zerolog.Ctx(c.UserContext())

	var req AdminResendRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error().Err(err).Msg("failed to parse admin resend payload")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "internal error"})
	}
	if req.UserID.Missing() {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "missing userId"})
	}
	ref := req.DocumentRef()
	if ref == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "no file provided"})
	}

	caption := req.Caption
	if caption == "" {
		caption = defaultResendCaption
	}
	if err := ctl.messenger.SendDocument(req.UserID.Int64(), ref, caption); err != nil {
		logger.Error().Err(err).Msg("failed to resend document")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed"})
	}
	return c.JSON(OKResponse{OK: true})
}

// completionCaption is the document caption, with the HR contact folded in
// when the backend extracted one.
func completionCaption(contact string) string {
	if contact == "" {
		return resumeCaption
	}
	return resumeCaption + " - HR contact: " + contact
}

func contactText(contact string) string {
	return "HR contact for this posting: " + contact
}

func jobIDText(jobID string) string {
	return "Job ID: " + jobID
}

// failureText names the job when the backend identified one.
func failureText(jobID string) string {
	if jobID == "" {
		return "Resume generation failed. Please try sending your job description again."
	}
	return "Resume generation failed for job " + jobID + ". Please try sending your job description again."
}
