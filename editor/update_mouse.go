package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	if isWheelMouse(msg) {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if m.Disabled() || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}
		if !m.focused {
			var cmd tea.Cmd
			m, cmd = m.Focus()
			cmds = append(cmds, cmd)
		}
		m.surf.SetCaretOffset(m.offsetAt(msg.X, msg.Y))
		m.rebuildContent()
		cmds = append(cmds, m.ctrl.HandleCursorActivity())

	case tea.MouseActionRelease:
		if m.focused {
			cmds = append(cmds, m.ctrl.HandleCursorActivity())
		}
	}
	return m, tea.Batch(cmds...)
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}
