package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	apperrors "propwrite/internal/errors"
)

// Generator produces text from an instruction prompt. Implementations talk to
// an external completion service; tests substitute a fake.
type Generator interface {
	Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error)
}

// Client is an OpenAI-backed Generator.
type Client struct {
	api   *openai.Client
	model string
}

// Ensure Client implements Generator
var _ Generator = (*Client)(nil)

// NewClient creates a generator client for the given API key and model.
func NewClient(apiKey, model string) *Client {
	return &Client{
		api:   openai.NewClient(apiKey),
		model: model,
	}
}

// Complete sends a single-turn chat completion request and returns the
// generated text. An empty completion is returned as an empty string, not an
// error; provider failures come back as *errors.ProviderError.
func (c *Client) Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &apperrors.ProviderError{
				StatusCode: apiErr.HTTPStatusCode,
				Message:    fmt.Sprintf("generation provider error: %s", apiErr.Message),
			}
		}
		return "", &apperrors.ProviderError{Message: fmt.Sprintf("generation provider error: %v", err)}
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
