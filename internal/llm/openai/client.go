package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"jobpowerup-backend/internal/llm"
	"jobpowerup-backend/internal/shared/metrics"
	"jobpowerup-backend/internal/shared/telemetry"
)

const (
	apiURL         = "https://api.openai.com/v1/chat/completions"
	retryBaseDelay = 500 * time.Millisecond
	maxRetries     = 2
)

// Client implements llm.Client using OpenAI Chat Completions.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new OpenAI client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("OPENAI_MODEL is required")
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("OPENAI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    *float32        `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *chatUsage `json:"usage,omitempty"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends a chat-completion request, retrying 429/5xx and transport
// failures with jittered exponential backoff.
func (c *Client) Complete(ctx context.Context, req llm.Request) (string, error) {
	backoff := retry.WithMaxRetries(maxRetries, retry.WithJitter(100*time.Millisecond, retry.NewExponential(retryBaseDelay)))

	metrics.IncLLMRequest()
	started := metrics.NowMillis()
	var content string
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		out, retryable, err := c.completeOnce(ctx, req)
		if err != nil {
			if retryable {
				return retry.RetryableError(err)
			}
			return err
		}
		content = out
		return nil
	})
	metrics.ObserveLLMDurationMs(metrics.NowMillis() - started)
	if err != nil {
		metrics.IncLLMFailure()
	}
	return content, err
}

func (c *Client) completeOnce(ctx context.Context, req llm.Request) (string, bool, error) {
	messages := make([]chatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, chatMessage{Role: m.Role, Content: m.Content})
	}
	body := chatRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: req.MaxTokens,
	}
	temp := req.Temperature
	body.Temperature = &temp
	if req.JSONMode {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", false, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", false, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", false, err
		}
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", true, fmt.Errorf("openai request timeout: %w", err)
		}
		return "", true, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, err
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return "", true, fmt.Errorf("openai http status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		if resp.StatusCode >= 400 {
			return "", false, fmt.Errorf("openai http status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
		}
		return "", false, fmt.Errorf("openai response parse: %w", err)
	}
	if parsed.Error != nil {
		return "", false, fmt.Errorf("openai error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if resp.StatusCode >= 400 {
		return "", false, fmt.Errorf("openai http status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if len(parsed.Choices) == 0 {
		return "", false, fmt.Errorf("openai response missing choices")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", false, fmt.Errorf("openai response empty content")
	}
	logUsage(c.model, parsed.Usage)
	return content, false, nil
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

func logUsage(model string, usage *chatUsage) {
	if usage == nil {
		return
	}
	telemetry.Info("llm.usage", map[string]any{
		"model":             model,
		"prompt_tokens":     usage.PromptTokens,
		"completion_tokens": usage.CompletionTokens,
		"total_tokens":      usage.TotalTokens,
	})
}

var _ llm.Client = (*Client)(nil)
