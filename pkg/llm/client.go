// Package llm provides a client for an OpenAI-compatible chat completions
// endpoint, used as the structured-generation service. One request, one
// response; callers embed their output schema in the system prompt.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/WanderPlan/wanderplan-backend/logger"
)

// ClientInterface defines the generation operations used by the services.
type ClientInterface interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest is a single-shot generation request.
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
}

// Config holds the connection settings for the generation service.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ ClientInterface = (*Client)(nil)

// NewClient creates a generation client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends one chat completion request and returns the raw assistant
// text. No retries: generation calls are expensive and non-idempotent in
// cost, so regeneration is always a separate user-initiated action.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	log := logger.GetLogger()

	if c.apiKey == "" {
		return "", fmt.Errorf("generation API key not configured")
	}
	if req.Model == "" {
		return "", fmt.Errorf("model is required")
	}

	body := chatRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
		Temperature: req.Temperature,
		Stream:      false,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	log.Debugw("Sending generation request",
		"model", req.Model,
		"systemLen", len(req.SystemPrompt),
		"userLen", len(req.UserPrompt),
	)
	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read generation response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Warnw("Generation service returned non-OK status",
			"statusCode", resp.StatusCode,
			"model", req.Model,
		)
		return "", fmt.Errorf("generation service returned status %d: %s", resp.StatusCode, string(raw))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(raw, &chatResp); err != nil {
		return "", fmt.Errorf("failed to decode generation response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("generation service error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("generation service returned no content")
	}

	content := chatResp.Choices[0].Message.Content
	log.Debugw("Generation request completed",
		"model", req.Model,
		"elapsed", time.Since(start),
		"responseLen", len(content),
	)
	return content, nil
}
