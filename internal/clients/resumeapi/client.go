// Package resumeapi is the HTTP client for the resume generation backend.
package resumeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resumeforge/telegram-relay/internal/auth"
)

const (
	// DefaultSubmitTimeout bounds a job submission to the backend.
	DefaultSubmitTimeout = 10 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024

	applyPath = "/apply"
)

// JobSubmission is the payload posted to the backend when a user asks for a
// tailored resume.
type JobSubmission struct {
	UserID         int64          `json:"userId"`
	JobDescription string         `json:"jd"`
	Meta           SubmissionMeta `json:"meta"`
}

// SubmissionMeta carries chat context alongside the job description.
type SubmissionMeta struct {
	Username string `json:"username,omitempty"`
	ChatID   int64  `json:"chatId"`
}

type submitResponse struct {
	JobID string `json:"jobId"`
}

// Client for the resume generation backend.
type Client struct {
	submitURL string
	apiKey    string
	client    *http.Client
}

// New creates a new Client rooted at baseURL. A nil httpClient gets a default
// with the standard submission timeout.
func New(baseURL, apiKey string, httpClient *http.Client) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resume backend URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: DefaultSubmitTimeout,
		}
	}
	return &Client{
		submitURL: strings.TrimRight(parsed.String(), "/") + applyPath,
		apiKey:    apiKey,
		client:    httpClient,
	}, nil
}

// SubmitJob posts a resume generation job to the backend and returns the job
// id the backend assigned, if it reported one. The job id is informational
// only; a 2xx with an unreadable body still counts as an accepted submission.
func (c *Client) SubmitJob(ctx context.Context, job *JobSubmission) (string, error) {
	body, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to marshal job submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.submitURL, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create submission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(auth.BackendAPIKeyHeader, c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to POST job submission: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Read response body for error details (limited size for security)
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return "", fmt.Errorf("resume backend returned status code %d: %s", resp.StatusCode, string(respBody))
	}

	var result submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", nil
	}
	return result.JobID, nil
}
