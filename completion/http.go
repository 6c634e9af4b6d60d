package completion

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/iw2rmb/ghostline"
	"github.com/iw2rmb/ghostline/internal/logging"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 1 << 20

// HTTPProvider posts the caret context to a completion backend.
type HTTPProvider struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
	header   http.Header
}

type Option func(*HTTPProvider)

// WithHTTPClient replaces the default client (30s timeout).
func WithHTTPClient(c *http.Client) Option {
	return func(p *HTTPProvider) {
		if c != nil {
			p.client = c
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(p *HTTPProvider) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithHeader adds a static header to every request.
func WithHeader(key, value string) Option {
	return func(p *HTTPProvider) {
		p.header.Add(key, value)
	}
}

// NewHTTPProvider returns a provider for endpoint. A blank endpoint means
// DefaultEndpoint.
func NewHTTPProvider(endpoint string, opts ...Option) *HTTPProvider {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	p := &HTTPProvider{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logging.OrNop(nil),
		header:   make(http.Header),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *HTTPProvider) Endpoint() string { return p.endpoint }

// GetCompletion implements Provider. Failures are logged and returned as
// *TransportError or *MalformedResponseError.
func (p *HTTPProvider) GetCompletion(ctx context.Context, before, after, prompt string) (string, error) {
	body, err := Request{Before: before, After: after, Prompt: prompt}.MarshalJSON()
	if err != nil {
		return "", p.fail(&TransportError{Endpoint: p.endpoint, Err: err})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", p.fail(&TransportError{Endpoint: p.endpoint, Err: err})
	}
	for k, vs := range p.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", ghostline.UserAgent())

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return "", p.fail(&TransportError{Endpoint: p.endpoint, Err: err})
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", p.fail(&TransportError{
			Endpoint:   p.endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("status %s", resp.Status),
		})
	}
	if err != nil {
		return "", p.fail(&TransportError{Endpoint: p.endpoint, Err: fmt.Errorf("read body: %w", err)})
	}

	suggestion, err := parseSuggestion(raw)
	if err != nil {
		return "", p.fail(&MalformedResponseError{Endpoint: p.endpoint, Err: err})
	}
	p.logger.Debug("completion received",
		zap.Int("before_len", len(before)),
		zap.Int("after_len", len(after)),
		zap.Int("suggestion_len", len(suggestion)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return suggestion, nil
}

func (p *HTTPProvider) fail(err error) error {
	p.logger.Warn("completion request failed", zap.String("endpoint", p.endpoint), zap.Error(err))
	return err
}
