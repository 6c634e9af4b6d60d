package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/iw2rmb/ghostline/config"
)

// OpenAICompleter talks to any OpenAI-compatible chat completions API.
type OpenAICompleter struct {
	client      openai.Client
	model       string
	maxTokens   int64
	temperature float64
}

func NewOpenAICompleter(cfg config.Backend, client *http.Client) *OpenAICompleter {
	opts := []option.RequestOption{
		option.WithHTTPClient(client),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	return &OpenAICompleter{
		client:      openai.NewClient(opts...),
		model:       modelOr(cfg.Model, DefaultOpenAIModel),
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

func (c *OpenAICompleter) Complete(ctx context.Context, msgs Messages) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(msgs.System),
			openai.UserMessage(msgs.User),
		},
		MaxTokens:   openai.Int(c.maxTokens),
		Temperature: openai.Float(c.temperature),
		N:           openai.Int(1),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai chat completion: no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
