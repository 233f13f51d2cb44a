package conversation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "openai/gpt-3.5-turbo"
	clientTitle    = "Galeri AI Asistan"
)

// HTTPDoer allows tests to fake HTTP transport.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenRouterClient calls the OpenRouter chat completions API.
type OpenRouterClient struct {
	apiKey     string
	baseURL    string
	referer    string
	httpClient HTTPDoer
}

// NewOpenRouterClient creates a client with sane defaults.
func NewOpenRouterClient(apiKey, baseURL, referer string, httpClient HTTPDoer) *OpenRouterClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &OpenRouterClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		referer:    referer,
		httpClient: httpClient,
	}
}

type chatCompletionsRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int32         `json:"max_tokens,omitempty"`
	Temperature float32       `json:"temperature,omitempty"`
}

type chatCompletionsResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the conversation to OpenRouter and returns the assistant reply.
func (c *OpenRouterClient) Complete(ctx context.Context, req LLMRequest) (LLMResponse, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return LLMResponse{}, errors.New("conversation: OPENROUTER_API_KEY is empty")
	}
	if len(req.Messages) == 0 {
		return LLMResponse{}, errors.New("conversation: messages are empty")
	}

	model := req.Model
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}

	payload, err := json.Marshal(chatCompletionsRequest{
		Model:       model,
		Messages:    req.Messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return LLMResponse{}, fmt.Errorf("conversation: marshal request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return LLMResponse{}, fmt.Errorf("conversation: build request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+c.apiKey)
	request.Header.Set("Content-Type", "application/json")
	if c.referer != "" {
		request.Header.Set("HTTP-Referer", c.referer)
	}
	request.Header.Set("X-Title", clientTitle)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return LLMResponse{}, fmt.Errorf("conversation: openrouter request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return LLMResponse{}, fmt.Errorf("conversation: read response: %w", err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		var parsed chatCompletionsResponse
		if json.Unmarshal(body, &parsed) == nil && parsed.Error.Message != "" {
			return LLMResponse{}, fmt.Errorf("conversation: openrouter status %d: %s", response.StatusCode, parsed.Error.Message)
		}
		return LLMResponse{}, fmt.Errorf("conversation: openrouter status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed chatCompletionsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return LLMResponse{}, fmt.Errorf("conversation: decode response: %w", err)
	}
	if parsed.Error.Message != "" {
		return LLMResponse{}, fmt.Errorf("conversation: openrouter error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return LLMResponse{}, errors.New("conversation: openrouter returned no choices")
	}

	return LLMResponse{Text: parsed.Choices[0].Message.Content}, nil
}
