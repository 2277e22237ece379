package botwebhook

import (
	"strings"
	"unicode"
)

// Canned replies for the inbound path. The relay has no templating; these are
// the only texts it ever sends on its own initiative.
const (
	instructionText = "Send me a job posting and I will generate a tailored resume for it. " +
		"Paste the posting text directly, or use /resume <job description>."
	usageText        = "Usage: /resume <job description>. Paste the full posting text after the command."
	ackText          = "Got it! Your tailored resume is being generated. I will send it here as soon as it is ready."
	submitFailedText = "Sorry, I could not reach the resume service. Please try sending your job description again in a few minutes."
)

// classify decides whether an incoming text warrants a canned reply or
// carries a job description. Exactly one of the two return values is
// non-empty: reply for prompts, jd for text to submit.
func classify(text, botName string) (reply, jd string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return instructionText, ""
	}
	if !strings.HasPrefix(trimmed, "/") {
		return "", trimmed
	}

	token, rest := splitCommand(trimmed)
	if !isKnownCommand(token, botName) {
		// Unrecognized slash text is submitted verbatim.
		return "", trimmed
	}
	if rest == "" {
		return usageText, ""
	}
	return "", rest
}

// splitCommand separates the leading command token from the remainder.
func splitCommand(text string) (command, rest string) {
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return text, ""
	}
	return text[:i], strings.TrimSpace(text[i:])
}

// isKnownCommand reports whether token is one of the bot's commands. Group
// chats append the addressee, e.g. /resume@MyBot; a mention of a different
// bot is not for us.
func isKnownCommand(token, botName string) bool {
	command, mention, mentioned := strings.Cut(token, "@")
	if mentioned && botName != "" && !strings.EqualFold(mention, botName) {
		return false
	}
	switch strings.ToLower(command) {
	case "/start", "/help", "/resume":
		return true
	}
	return false
}
