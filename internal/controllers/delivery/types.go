package delivery

import (
	"bytes"
	"strconv"
)

// StatusCompleted is the status value the backend sends for a successful
// job. An absent status means the same thing.
const StatusCompleted = "completed"

// ChatID is a Telegram chat identifier. Backend builds disagree on whether
// to send it as a JSON number or a numeric string, so both are accepted.
// Zero means absent.
type ChatID int64

// UnmarshalJSON accepts a JSON number or a numeric string. Anything else
// collapses to zero, which the handlers treat as a missing id.
func (c *ChatID) UnmarshalJSON(data []byte) error {
	id, err := strconv.ParseInt(string(bytes.Trim(data, `"`)), 10, 64)
	if err != nil {
		*c = 0
		return nil
	}
	*c = ChatID(id)
	return nil
}

// Int64 returns the chat id as the messaging client expects it.
func (c ChatID) Int64() int64 { return int64(c) }

// Missing reports whether the id was absent or unusable.
func (c ChatID) Missing() bool { return c == 0 }

// ResumeReadyRequest is the completion callback the backend fires when a
// resume job finishes, successfully or not.
type ResumeReadyRequest struct {
	// UserID identifies the requesting user and doubles as the chat id the
	// result is delivered to. Accepts a JSON number or a numeric string.
	UserID ChatID `json:"userId" swaggertype:"integer"`
	// TgPDFID is the Telegram file id of the generated PDF, set when the
	// backend already uploaded the document through the bot.
	TgPDFID string `json:"tg_pdf_id"`
	// TgLaTeXID is the Telegram file id of the LaTeX source. Parsed for
	// compatibility; the relay does not deliver it.
	TgLaTeXID string `json:"tg_latex_id"`
	// PDFURL is an external URL for the generated PDF, used when no native
	// file id is available.
	PDFURL string `json:"pdf_url"`
	// HREmail is the contact behind the job posting.
	HREmail string `json:"hrEmail"`
	// HRContact is an alternative spelling of HREmail sent by older backend
	// builds.
	HRContact string `json:"hr_contact"`
	// JobID is the backend's identifier for the job.
	JobID string `json:"jobId"`
	// Status is "completed" or "failed". Absent means completed.
	Status string `json:"status"`
}

// DocumentRef resolves the document reference, native file id first.
func (r *ResumeReadyRequest) DocumentRef() string {
	if r.TgPDFID != "" {
		return r.TgPDFID
	}
	return r.PDFURL
}

// ContactInfo returns the HR contact, preferring the hrEmail spelling.
func (r *ResumeReadyRequest) ContactInfo() string {
	if r.HREmail != "" {
		return r.HREmail
	}
	return r.HRContact
}

// Completed reports whether the job finished successfully.
func (r *ResumeReadyRequest) Completed() bool {
	return r.Status == "" || r.Status == StatusCompleted
}

// AdminResendRequest asks the relay to send an already generated document to
// a user once more.
type AdminResendRequest struct {
	// UserID is the chat to resend to. Accepts a JSON number or a numeric
	// string.
	UserID ChatID `json:"userId" swaggertype:"integer"`
	// TgPDFID is the Telegram file id of the document.
	TgPDFID string `json:"tgPdfId"`
	// PDFURL is an external URL for the document.
	PDFURL string `json:"pdfUrl"`
	// Caption overrides the default resend caption.
	Caption string `json:"caption"`
}

// DocumentRef resolves the document reference, native file id first.
func (r *AdminResendRequest) DocumentRef() string {
	if r.TgPDFID != "" {
		return r.TgPDFID
	}
	return r.PDFURL
}

// OKResponse acknowledges a fully processed request.
type OKResponse struct {
	// OK is always true.
	OK bool `json:"ok"`
}

// ErrorResponse reports why a request was not processed.
type ErrorResponse struct {
	// Error is a short failure reason.
	Error string `json:"error"`
}
