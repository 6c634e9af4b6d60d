package editor

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/iw2rmb/ghostline/completion"
	"github.com/iw2rmb/ghostline/internal/device"
)

// Config configures a Model. Attribute fields seed the matching attributes.
type Config struct {
	Text        string
	Placeholder string
	Name        string
	Prompt      string
	// APIURL is the endpoint of the default HTTP provider. Empty means
	// completion.DefaultEndpoint.
	APIURL string

	Disabled  bool
	ReadOnly  bool
	Required  bool
	DisableAI bool
	Autofocus bool

	// Provider replaces the HTTP provider built from APIURL.
	Provider completion.Provider
	Device   device.Capabilities

	// Debounce is the idle time before a completion is requested. Zero means
	// suggest.DefaultDelay.
	Debounce       time.Duration
	RequestTimeout time.Duration

	// Nil KeyMap and Style mean DefaultKeyMap() and DefaultStyle().
	KeyMap *KeyMap
	Style  *Style

	Clipboard Clipboard
	OnChange  func(ChangeEvent)

	Context context.Context
	Logger  *zap.Logger
}
