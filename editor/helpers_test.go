package editor

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/ghostline/completion"
)

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func testStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	return Style{
		Text:        r.NewStyle(),
		Suggestion:  r.NewStyle().Faint(true),
		Cursor:      r.NewStyle().Reverse(true),
		Placeholder: r.NewStyle().Italic(true),
		Selection:   r.NewStyle().Background(lipgloss.Color("#333333")),
	}
}

// newFocused builds a focused model that never talks to the network.
func newFocused(t *testing.T, cfg Config) Model {
	t.Helper()
	if cfg.Provider == nil {
		cfg.Provider = completion.Static("")
	}
	if cfg.Debounce == 0 {
		cfg.Debounce = time.Millisecond
	}
	m, _ := New(cfg).Focus()
	if !m.Focused() {
		t.Fatalf("model must be focused")
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// settle runs cmd and everything it produces, feeding each message back
// into m until no command is left.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatalf("commands did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		var next tea.Cmd
		m, next = m.Update(msg)
		queue = append(queue, next)
	}
	return m
}

func nopProvider() completion.Provider { return completion.Static("") }
