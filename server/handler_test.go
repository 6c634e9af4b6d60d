package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/iw2rmb/ghostline/completion"
)

func serve(t *testing.T, h http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Complete(t *testing.T) {
	t.Parallel()

	var got Messages
	h := NewHandler(CompleterFunc(func(_ context.Context, msgs Messages) (string, error) {
		got = msgs
		return "  sat on the mat \n", nil
	}))

	rec := serve(t, h, http.MethodPost, "/api/complete",
		`{"preContent":"The cat","subContent":"","prompt":"children's book"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "sat on the mat", gjson.Get(rec.Body.String(), "suggestion").String())
	assert.Equal(t, "The cat"+CursorMarker, got.User)
	assert.Contains(t, got.System, "children's book")
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestHandler_KeepsIncomingRequestID(t *testing.T) {
	t.Parallel()

	h := NewHandler(CompleterFunc(func(context.Context, Messages) (string, error) { return "x", nil }))
	rec := serve(t, h, http.MethodGet, "/healthz", "", map[string]string{RequestIDHeader: "abc"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "ok", gjson.Get(rec.Body.String(), "status").String())
}

func TestHandler_BadRequest(t *testing.T) {
	t.Parallel()

	called := false
	h := NewHandler(CompleterFunc(func(context.Context, Messages) (string, error) {
		called = true
		return "", nil
	}))

	for _, body := range []string{"", "not json", `[]`, `{"preContent": 3}`} {
		rec := serve(t, h, http.MethodPost, "/api/complete", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.True(t, gjson.Get(rec.Body.String(), "error").Exists(), "body %q", body)
	}
	assert.False(t, called)
}

func TestHandler_UpstreamFailure(t *testing.T) {
	t.Parallel()

	h := NewHandler(CompleterFunc(func(context.Context, Messages) (string, error) {
		return "", errors.New("upstream exploded")
	}))
	rec := serve(t, h, http.MethodPost, "/api/complete", `{"preContent":"a","subContent":"b"}`, nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, gjson.Get(rec.Body.String(), "error").String(), "upstream exploded")
}

func TestHandler_Timeout(t *testing.T) {
	t.Parallel()

	h := NewHandler(CompleterFunc(func(ctx context.Context, _ Messages) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}), WithTimeout(10*time.Millisecond))
	rec := serve(t, h, http.MethodPost, "/api/complete", `{"preContent":"a","subContent":""}`, nil)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestHandler_WrongMethod(t *testing.T) {
	t.Parallel()

	h := NewHandler(CompleterFunc(func(context.Context, Messages) (string, error) { return "", nil }))
	rec := serve(t, h, http.MethodGet, "/api/complete", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandler_CORS(t *testing.T) {
	t.Parallel()

	h := NewHandler(CompleterFunc(func(context.Context, Messages) (string, error) { return "x", nil }),
		WithAllowedOrigins("http://app.test"))

	rec := serve(t, h, http.MethodOptions, "/api/complete", "", map[string]string{
		"Origin":                        "http://app.test",
		"Access-Control-Request-Method": "POST",
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://app.test", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")

	rec = serve(t, h, http.MethodPost, "/api/complete", `{"preContent":"a","subContent":""}`, map[string]string{
		"Origin": "http://evil.test",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandler_CORSWildcardByDefault(t *testing.T) {
	t.Parallel()

	h := NewHandler(CompleterFunc(func(context.Context, Messages) (string, error) { return "x", nil }))
	rec := serve(t, h, http.MethodPost, "/api/complete", `{"preContent":"a","subContent":""}`, map[string]string{
		"Origin": "http://anything.test",
	})
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandler_ServesHTTPProvider(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(NewHandler(CompleterFunc(func(_ context.Context, msgs Messages) (string, error) {
		if !strings.HasSuffix(msgs.User, CursorMarker+"world") {
			return "", errors.New("unexpected user message " + msgs.User)
		}
		return "there ", nil
	})))
	defer srv.Close()

	got, err := completion.NewHTTPProvider(srv.URL+"/api/complete").
		GetCompletion(context.Background(), "Hello ", "world", "")
	require.NoError(t, err)
	assert.Equal(t, "there", got)
}

func TestHandler_BodyTooLarge(t *testing.T) {
	t.Parallel()

	h := NewHandler(CompleterFunc(func(context.Context, Messages) (string, error) { return "x", nil }))
	req := httptest.NewRequest(http.MethodPost, "/api/complete",
		io.MultiReader(strings.NewReader(`{"preContent":"`), strings.NewReader(strings.Repeat("a", maxRequestBytes)), strings.NewReader(`"}`)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
