package editor

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/ghostline/completion"
	"github.com/iw2rmb/ghostline/internal/logging"
	"github.com/iw2rmb/ghostline/suggest"
	"github.com/iw2rmb/ghostline/surface"
)

// Model is a Bubble Tea text input with inline suggestions.
//
// Copies of a Model share the surface and the suggestion controller, like
// copies of any Bubble Tea component sharing a backing buffer.
type Model struct {
	cfg    Config
	keys   KeyMap
	style  Style
	logger *zap.Logger

	surf  *surface.Surface
	ctrl  *suggest.Controller
	attrs attributes

	customProvider bool

	focused  bool
	viewport viewport.Model

	rows     []layoutRow
	caretRow int

	lastVersion uint64
}

func New(cfg Config) Model {
	m := Model{
		cfg:      cfg,
		keys:     DefaultKeyMap(),
		style:    DefaultStyle(),
		logger:   cfg.Logger,
		surf:     surface.New(cfg.Text),
		viewport: viewport.New(0, 0),
	}
	if cfg.KeyMap != nil {
		m.keys = *cfg.KeyMap
	}
	if cfg.Style != nil {
		m.style = *cfg.Style
	}
	m.logger = logging.OrNop(m.logger)

	m.seedAttributes(cfg)
	provider := cfg.Provider
	m.customProvider = provider != nil
	if provider == nil {
		provider = m.httpProvider()
	}
	m.ctrl = suggest.New(m.surf, suggest.Options{
		Provider: provider,
		Device:   cfg.Device,
		Delay:    cfg.Debounce,
		Timeout:  cfg.RequestTimeout,
		Prompt:   cfg.Prompt,
		Disabled: cfg.DisableAI,
		Context:  cfg.Context,
		Logger:   m.logger.Named("suggest"),
	})

	if cfg.Autofocus && !cfg.Disabled {
		m.focused = true
		m.ensureCaret()
	}
	m.rebuildContent()
	return m
}

func (m *Model) seedAttributes(cfg Config) {
	if cfg.Text != "" {
		m.attrs.set(attrValue, cfg.Text)
	}
	for id, v := range map[attrID]string{
		attrPlaceholder: cfg.Placeholder,
		attrName:        cfg.Name,
		attrPrompt:      cfg.Prompt,
		attrAPIURL:      cfg.APIURL,
	} {
		if v != "" {
			m.attrs.set(id, v)
		}
	}
	for id, on := range map[attrID]bool{
		attrDisabled:  cfg.Disabled,
		attrReadOnly:  cfg.ReadOnly,
		attrRequired:  cfg.Required,
		attrDisableAI: cfg.DisableAI,
		attrAutofocus: cfg.Autofocus,
	} {
		if on {
			m.attrs.set(id, "")
		}
	}
}

// Surface exposes the backing surface. Hosts that edit it directly should
// call Update afterwards so the view catches up.
func (m Model) Surface() *surface.Surface { return m.surf }

func (m Model) Controller() *suggest.Controller { return m.ctrl }

// Init starts cursor tracking when the widget is autofocused.
func (m Model) Init() tea.Cmd {
	if m.focused {
		return m.ctrl.HandleFocus()
	}
	return nil
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCaret()
	return m
}

// Focus gives the widget keyboard focus. A widget without a caret gets one
// at the end of the content. Disabled widgets cannot be focused.
func (m Model) Focus() (Model, tea.Cmd) {
	if m.focused || m.Disabled() {
		return m, nil
	}
	m.focused = true
	m.ensureCaret()
	cmd := m.ctrl.HandleFocus()
	m.rebuildContent()
	m.followCaret()
	return m, cmd
}

// Blur removes focus and discards the shown suggestion.
func (m Model) Blur() Model {
	if !m.focused {
		return m
	}
	m.focused = false
	m.ctrl.HandleBlur()
	m.rebuildContent()
	return m
}

func (m Model) Focused() bool { return m.focused }

// Select selects the whole content.
func (m Model) Select() Model {
	m.ctrl.Clear()
	m.surf.SelectAll()
	m.rebuildContent()
	return m
}

// SetSelectionRange selects [start, end) in grapheme offsets, clamped to
// the content.
func (m Model) SetSelectionRange(start, end int) Model {
	m.ctrl.Clear()
	m.surf.SetSelectionOffsets(start, end)
	m.rebuildContent()
	m.followCaret()
	return m
}

// SetCompletionProvider replaces the provider. Nil restores the HTTP
// provider for the apiUrl attribute.
func (m Model) SetCompletionProvider(p completion.Provider) Model {
	m.customProvider = p != nil
	if p == nil {
		p = m.httpProvider()
	}
	m.ctrl.SetProvider(p)
	return m
}

// Debounce reports the idle time before a completion is requested.
func (m Model) Debounce() time.Duration { return m.ctrl.Delay() }

// SetDebounce changes the idle time before a completion is requested. Zero
// restores the default.
func (m Model) SetDebounce(d time.Duration) Model {
	m.ctrl.SetDelay(d)
	return m
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) ensureCaret() {
	if !m.surf.HasSelection() {
		m.surf.SetCaretOffset(m.surf.Len())
	}
}

// syncFromSurface rebuilds the view if the surface changed since the last
// render, whether through the widget, the controller or the host.
func (m *Model) syncFromSurface() {
	if m.surf.Version() != m.lastVersion {
		m.rebuildContent()
		m.followCaret()
	}
}

func (m *Model) emitChange() {
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.surf))
	}
}
