package botwebhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		botName   string
		wantReply string
		wantJD    string
	}{
		{
			name:      "empty text",
			text:      "",
			wantReply: instructionText,
		},
		{
			name:      "whitespace only",
			text:      "  \n\t ",
			wantReply: instructionText,
		},
		{
			name:   "plain text is the job description",
			text:   "Senior Go engineer, Berlin, remote friendly",
			wantJD: "Senior Go engineer, Berlin, remote friendly",
		},
		{
			name:   "surrounding whitespace is trimmed",
			text:   "  Senior Go engineer \n",
			wantJD: "Senior Go engineer",
		},
		{
			name:      "bare resume command",
			text:      "/resume",
			wantReply: usageText,
		},
		{
			name:      "resume command with trailing spaces",
			text:      "/resume   ",
			wantReply: usageText,
		},
		{
			name:      "bare start command",
			text:      "/start",
			wantReply: usageText,
		},
		{
			name:      "bare help command",
			text:      "/help",
			wantReply: usageText,
		},
		{
			name:   "resume command with description",
			text:   "/resume Senior Go engineer, Berlin",
			wantJD: "Senior Go engineer, Berlin",
		},
		{
			name:   "start command with description",
			text:   "/start paste of a job posting",
			wantJD: "paste of a job posting",
		},
		{
			name:   "command casing is ignored",
			text:   "/Resume Senior Go engineer",
			wantJD: "Senior Go engineer",
		},
		{
			name:   "newline separates command from description",
			text:   "/resume\nSenior Go engineer",
			wantJD: "Senior Go engineer",
		},
		{
			name:    "command addressed to this bot",
			text:    "/resume@resume_bot Senior Go engineer",
			botName: "resume_bot",
			wantJD:  "Senior Go engineer",
		},
		{
			name:      "bot mention casing is ignored",
			text:      "/resume@Resume_Bot",
			botName:   "resume_bot",
			wantReply: usageText,
		},
		{
			name:    "command addressed to another bot",
			text:    "/resume@other_bot Senior Go engineer",
			botName: "resume_bot",
			wantJD:  "/resume@other_bot Senior Go engineer",
		},
		{
			name:   "unknown command is submitted verbatim",
			text:   "/ops deploy the resume service",
			wantJD: "/ops deploy the resume service",
		},
		{
			name:   "bare slash",
			text:   "/",
			wantJD: "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reply, jd := classify(tt.text, tt.botName)
			assert.Equal(t, tt.wantReply, reply)
			assert.Equal(t, tt.wantJD, jd)
		})
	}
}
