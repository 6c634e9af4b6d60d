// Package device describes the input capabilities of the host terminal.
//
// Capabilities are computed once by the host (Detect) and passed to the
// widget; nothing in this package keeps global state.
package device

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Capabilities is the input profile of one session.
type Capabilities struct {
	// Touch is true on touch-first terminals (no physical Tab key).
	Touch bool
}

// Pointer returns the capabilities of a keyboard-and-pointer terminal.
func Pointer() Capabilities { return Capabilities{} }

// Touchscreen returns the capabilities of a touch-first terminal.
func Touchscreen() Capabilities { return Capabilities{Touch: true} }

// Detect inspects the environment once. GHOSTLINE_TOUCH (any value
// strconv.ParseBool accepts) wins; otherwise Termux and iSH sessions are
// treated as touch-first. A nil getenv reads the process environment.
func Detect(getenv func(string) string) Capabilities {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv("GHOSTLINE_TOUCH")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return Capabilities{Touch: b}
		}
	}
	if getenv("TERMUX_VERSION") != "" || getenv("ISH_VERSION") != "" {
		return Touchscreen()
	}
	return Pointer()
}

// AcceptKey is the binding that accepts a shown suggestion: Tab on pointer
// devices, Space on touch devices.
func (c Capabilities) AcceptKey() key.Binding {
	if c.Touch {
		return key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "accept suggestion"))
	}
	return key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "accept suggestion"))
}

func (c Capabilities) String() string {
	if c.Touch {
		return "touch"
	}
	return "pointer"
}
