package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/iw2rmb/ghostline/config"
)

// Default models when config.Backend.Model is empty.
const (
	DefaultOpenAIModel    = "doubao-1-5-lite-32k-250115"
	DefaultAnthropicModel = "claude-3-5-haiku-latest"
)

// Completer issues one chat completion and returns the raw answer text.
type Completer interface {
	Complete(ctx context.Context, msgs Messages) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, msgs Messages) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, msgs Messages) (string, error) {
	return f(ctx, msgs)
}

// NewCompleter builds the Completer selected by cfg.Kind. A nil client means
// http.DefaultClient.
func NewCompleter(cfg config.Backend, client *http.Client) (Completer, error) {
	if client == nil {
		client = http.DefaultClient
	}
	switch strings.ToLower(cfg.Kind) {
	case config.BackendOpenAI:
		return NewOpenAICompleter(cfg, client), nil
	case config.BackendAnthropic:
		return NewAnthropicCompleter(cfg, client), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Kind)
	}
}

func modelOr(model, fallback string) string {
	if strings.TrimSpace(model) == "" {
		return fallback
	}
	return model
}
