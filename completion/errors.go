package completion

import (
	"errors"
	"fmt"
)

// ErrRequest matches every failure returned by HTTPProvider.
var ErrRequest = errors.New("completion request failed")

// TransportError reports a network failure or a non-2xx response.
type TransportError struct {
	Endpoint   string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("completion: %s: HTTP %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("completion: %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrRequest }

// MalformedResponseError reports a 2xx response without a usable suggestion.
type MalformedResponseError struct {
	Endpoint string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("completion: %s: malformed response: %v", e.Endpoint, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func (e *MalformedResponseError) Is(target error) bool { return target == ErrRequest }
