// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package polish sends report prose to an AI gateway for editorial
// cleanup. The gateway speaks the chat-completions protocol.
package polish

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/meshint/genspace/pkg/types"
)

// ErrRateLimited and ErrCreditsExhausted surface the two gateway
// failure modes callers present differently to users.
var (
	ErrRateLimited      = errors.New("rate limit exceeded")
	ErrCreditsExhausted = errors.New("ai credits exhausted")
)

const (
	defaultBaseURL    = "https://ai.gateway.lovable.dev"
	defaultModel      = "google/gemini-2.5-flash"
	defaultMaxRetries = 3
)

// backoffBase controls the retry backoff. Tests override this to avoid
// real sleeps.
var backoffBase = 2 * time.Second

const systemPrompt = `You are an expert scientific editor specializing in space biology research reports.

Your task is to refine the report into a clear, professional, well-structured version suitable for reviewers.

Edit for:
- Clarity and academic tone
- Smooth transitions and concise language
- Proper formatting (headings, bullet lists, numbered points)
- Consistent terminology
- Preservation of all facts and data

CRITICAL: Do NOT remove any factual information, data, or statistics. Only enhance readability and professional presentation.

Return the edited report in the same format as the input (preserve HTML structure if present).`

// Client calls the polish gateway.
type Client struct {
	cfg  types.PolishConfig
	http *http.Client
}

// New builds a polish client.
func New(cfg types.PolishConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: timeout}}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Edit submits the report text and returns the edited version. Rate
// limiting and exhausted credits map to their sentinel errors and are
// not retried; transport failures and 5xx responses are retried with
// exponential backoff.
func (c *Client) Edit(ctx context.Context, reportText string) (string, error) {
	if reportText == "" {
		return "", fmt.Errorf("report text is required")
	}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		edited, retryable, err := c.call(ctx, reportText)
		if err == nil {
			return edited, nil
		}
		if !retryable {
			return "", err
		}
		lastErr = err
	}
	return "", fmt.Errorf("polishing report after %d attempts: %w", c.cfg.MaxRetries+1, lastErr)
}

func (c *Client) call(ctx context.Context, reportText string) (edited string, retryable bool, err error) {
	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: reportText},
		},
	})
	if err != nil {
		return "", false, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("calling gateway: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		io.Copy(io.Discard, resp.Body)
		return "", false, ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		io.Copy(io.Discard, resp.Body)
		return "", false, ErrCreditsExhausted
	case resp.StatusCode >= 500:
		io.Copy(io.Discard, resp.Body)
		return "", true, fmt.Errorf("gateway returned %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		io.Copy(io.Discard, resp.Body)
		return "", false, fmt.Errorf("gateway returned %d", resp.StatusCode)
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", false, fmt.Errorf("decoding gateway response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", false, fmt.Errorf("gateway returned no choices")
	}
	return decoded.Choices[0].Message.Content, false, nil
}
