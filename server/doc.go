// Package server is the reference completion backend for HTTPProvider.
//
// It serves POST /api/complete: the request's preContent and subContent are
// joined around a cursor marker, sent with a fixed writing-assistant system
// instruction to a chat model (OpenAI-compatible or Anthropic), and the
// trimmed answer is returned as {"suggestion": ...}.
package server
