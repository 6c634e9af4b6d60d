package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/iw2rmb/ghostline/config"
)

// AnthropicCompleter talks to the Anthropic Messages API. The base URL of
// the OpenAI-compatible default is not used; an empty BaseURL means the
// public Anthropic endpoint.
type AnthropicCompleter struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
}

func NewAnthropicCompleter(cfg config.Backend, client *http.Client) *AnthropicCompleter {
	opts := []option.RequestOption{
		option.WithHTTPClient(client),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" && cfg.BaseURL != config.Defaults().Backend.BaseURL {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	return &AnthropicCompleter{
		client:      anthropic.NewClient(opts...),
		model:       modelOr(cfg.Model, DefaultAnthropicModel),
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

func (c *AnthropicCompleter) Complete(ctx context.Context, msgs Messages) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(msgs.User)),
		},
	}
	if msgs.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: msgs.System}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}
	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}
