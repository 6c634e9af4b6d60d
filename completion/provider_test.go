package completion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderFunc(t *testing.T) {
	var p Provider = ProviderFunc(func(_ context.Context, before, after, prompt string) (string, error) {
		return before + "|" + after + "|" + prompt, nil
	})
	got, err := p.GetCompletion(context.Background(), "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "a|b|c", got)
}

func TestStatic_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	got, err := Static("x").GetCompletion(ctx, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	cancel()
	_, err = Static("x").GetCompletion(ctx, "", "", "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest([]byte(`{"preContent":"The cat","subContent":"","prompt":null}`))
	require.NoError(t, err)
	assert.Equal(t, Request{Before: "The cat"}, req)

	_, err = ParseRequest([]byte(`{"preContent":1}`))
	assert.Error(t, err)
	_, err = ParseRequest([]byte(`[1,2]`))
	assert.Error(t, err)
	_, err = ParseRequest([]byte(`{`))
	assert.Error(t, err)
}

func TestRequest_RoundTripKeepsUnicode(t *testing.T) {
	in := Request{Before: "héllo \"quoted\"\n", After: "wörld 👋", Prompt: "tone: calm"}
	body, err := in.MarshalJSON()
	require.NoError(t, err)
	out, err := ParseRequest(body)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
