// Package completion defines how the widget obtains suggestion text.
//
// A Provider receives the content before and after the caret plus an
// optional style prompt and returns the text to show at the caret. The
// default implementation, HTTPProvider, talks to a backend that speaks the
// {preContent, subContent, prompt} → {suggestion} JSON protocol served by
// package server.
package completion
