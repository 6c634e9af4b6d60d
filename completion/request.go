package completion

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Request is the context sent to the backend.
type Request struct {
	Before string
	After  string
	Prompt string
}

// MarshalJSON encodes the wire body. The prompt key is omitted when blank.
func (r Request) MarshalJSON() ([]byte, error) {
	body := []byte(`{}`)
	var err error
	if body, err = sjson.SetBytes(body, "preContent", r.Before); err != nil {
		return nil, fmt.Errorf("encode preContent: %w", err)
	}
	if body, err = sjson.SetBytes(body, "subContent", r.After); err != nil {
		return nil, fmt.Errorf("encode subContent: %w", err)
	}
	if strings.TrimSpace(r.Prompt) != "" {
		if body, err = sjson.SetBytes(body, "prompt", r.Prompt); err != nil {
			return nil, fmt.Errorf("encode prompt: %w", err)
		}
	}
	return body, nil
}

// ParseRequest decodes a wire body. Missing text fields decode as empty
// strings; a body that is not a JSON object, or whose fields are not
// strings, is rejected.
func ParseRequest(body []byte) (Request, error) {
	if !gjson.ValidBytes(body) {
		return Request{}, fmt.Errorf("invalid JSON body")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return Request{}, fmt.Errorf("body must be a JSON object")
	}
	var req Request
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"preContent", &req.Before},
		{"subContent", &req.After},
		{"prompt", &req.Prompt},
	} {
		v := root.Get(f.key)
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		if v.Type != gjson.String {
			return Request{}, fmt.Errorf("%s must be a string", f.key)
		}
		*f.dst = v.String()
	}
	return req, nil
}

// parseSuggestion extracts the suggestion field of a response body.
func parseSuggestion(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("invalid JSON")
	}
	v := gjson.GetBytes(body, "suggestion")
	if !v.Exists() {
		return "", fmt.Errorf("missing suggestion field")
	}
	if v.Type != gjson.String {
		return "", fmt.Errorf("suggestion is %s, want string", v.Type)
	}
	return v.String(), nil
}
