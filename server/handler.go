package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"

	"github.com/iw2rmb/ghostline/completion"
	"github.com/iw2rmb/ghostline/internal/logging"
)

const maxRequestBytes = 1 << 20

// RequestIDHeader carries the id logged with every request.
const RequestIDHeader = "X-Request-Id"

type handler struct {
	completer Completer
	logger    *zap.Logger
	origins   []string
	timeout   time.Duration
}

type Option func(*handler)

// WithLogger sets the request logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(h *handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithAllowedOrigins sets the CORS origins; "*" allows any. The default is
// "*".
func WithAllowedOrigins(origins ...string) Option {
	return func(h *handler) { h.origins = origins }
}

// WithTimeout bounds each upstream completion. Zero means no bound beyond
// the client's own.
func WithTimeout(d time.Duration) Option {
	return func(h *handler) { h.timeout = d }
}

// NewHandler serves POST /api/complete and GET /healthz.
func NewHandler(c Completer, opts ...Option) http.Handler {
	h := &handler{
		completer: c,
		logger:    logging.OrNop(nil),
		origins:   []string{"*"},
	}
	for _, opt := range opts {
		opt(h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/complete", h.complete)
	mux.HandleFunc("GET /healthz", h.healthz)
	return h.withRequestID(h.withCORS(mux))
}

func (h *handler) complete(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(zap.String("request_id", w.Header().Get(RequestIDHeader)))

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}
	if len(body) > maxRequestBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	req, err := completion.ParseRequest(body)
	if err != nil {
		logger.Debug("bad completion request", zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := h.completer.Complete(ctx, BuildMessages(req))
	if err != nil {
		logger.Error("completion failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		status := http.StatusInternalServerError
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
		writeError(w, status, err.Error())
		return
	}

	suggestion := strings.TrimSpace(text)
	logger.Info("completion served",
		zap.Int("before_len", len(req.Before)),
		zap.Int("after_len", len(req.After)),
		zap.Int("suggestion_len", len(suggestion)),
		zap.Duration("elapsed", time.Since(start)),
	)
	out, _ := sjson.SetBytes([]byte(`{}`), "suggestion", suggestion)
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []byte(`{"status":"ok"}`))
}

func (h *handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (h *handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := h.allowOrigin(r.Header.Get("Origin")); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			if origin != "*" {
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
		}
		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *handler) allowOrigin(origin string) string {
	if slices.Contains(h.origins, "*") {
		return "*"
	}
	if origin != "" && slices.Contains(h.origins, origin) {
		return origin
	}
	return ""
}

func writeError(w http.ResponseWriter, status int, msg string) {
	out, _ := sjson.SetBytes([]byte(`{}`), "error", msg)
	writeJSON(w, status, out)
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
