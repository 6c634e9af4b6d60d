package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ghostline/surface"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.FocusMsg:
		return m.Focus()
	case tea.BlurMsg:
		return m.Blur(), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	handled, cmd := m.ctrl.Update(msg)
	// Rebuild in case the host or the controller mutated the surface.
	m.syncFromSurface()
	if handled {
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.Disabled() {
		return m, nil
	}
	m.ensureCaret()

	before := m.surf.Text()
	accepted := !m.ReadOnly() && m.ctrl.HandleKey(msg)
	if !accepted {
		if m.ReadOnly() {
			m.ctrl.Clear()
		}
		m.applyKey(msg)
	}

	var cmds []tea.Cmd
	if m.surf.Text() != before {
		m.emitChange()
		// An accepted suggestion is not user input; only typing schedules
		// the next completion.
		if !accepted {
			cmds = append(cmds, m.ctrl.HandleInput())
		}
	}
	cmds = append(cmds, m.ctrl.HandleCursorActivity())

	m.rebuildContent()
	m.followCaret()
	return m, tea.Batch(cmds...)
}

func (m *Model) applyKey(msg tea.KeyMsg) {
	editable := !m.ReadOnly()

	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if editable {
			m.surf.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return
	}

	km := m.keys
	switch {
	case key.Matches(msg, km.Left):
		m.surf.Move(surface.Move{Unit: surface.MoveGrapheme, Dir: surface.DirLeft})
	case key.Matches(msg, km.Right):
		m.surf.Move(surface.Move{Unit: surface.MoveGrapheme, Dir: surface.DirRight})
	case key.Matches(msg, km.Up):
		m.surf.Move(surface.Move{Unit: surface.MoveLine, Dir: surface.DirUp})
	case key.Matches(msg, km.Down):
		m.surf.Move(surface.Move{Unit: surface.MoveLine, Dir: surface.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		m.surf.Move(surface.Move{Unit: surface.MoveGrapheme, Dir: surface.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.surf.Move(surface.Move{Unit: surface.MoveGrapheme, Dir: surface.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.surf.Move(surface.Move{Unit: surface.MoveLine, Dir: surface.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.surf.Move(surface.Move{Unit: surface.MoveLine, Dir: surface.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.surf.Move(surface.Move{Unit: surface.MoveWord, Dir: surface.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.surf.Move(surface.Move{Unit: surface.MoveWord, Dir: surface.DirRight})

	case key.Matches(msg, km.Home):
		m.surf.Move(surface.Move{Unit: surface.MoveLine, Dir: surface.DirHome})
	case key.Matches(msg, km.End):
		m.surf.Move(surface.Move{Unit: surface.MoveLine, Dir: surface.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.surf.Move(surface.Move{Unit: surface.MoveDoc, Dir: surface.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.surf.Move(surface.Move{Unit: surface.MoveDoc, Dir: surface.DirEnd})
	case key.Matches(msg, km.SelectAll):
		m.surf.SelectAll()

	case key.Matches(msg, km.Backspace):
		if editable {
			m.surf.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if editable {
			m.surf.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if editable {
			m.surf.InsertText("\n")
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if editable {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if editable {
			m.pasteClipboard()
		}

	default:
		switch {
		case msg.Type == tea.KeySpace:
			if editable {
				m.surf.InsertText(" ")
			}
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			if editable {
				m.surf.InsertText(string(msg.Runes))
			}
		}
	}
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if s := m.surf.SelectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.surf.SelectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
	m.surf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.surf.InsertText(normalizeNewlines(s))
}

// normalizeNewlines maps external line endings to "\n".
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
