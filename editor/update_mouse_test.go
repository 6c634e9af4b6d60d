package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func TestMouse_ClickPlacesCaret(t *testing.T) {
	m := newFocused(t, Config{Text: "hello\nworld"})
	m = m.SetSize(20, 5)

	m, cmd := m.Update(press(2, 1))
	if cmd == nil {
		t.Fatalf("click must report cursor activity")
	}
	if got := m.Surface().CaretOffset(); got != 8 {
		t.Fatalf("caret: got %d, want %d", got, 8)
	}

	m, _ = m.Update(press(15, 0))
	if got := m.Surface().CaretOffset(); got != 5 {
		t.Fatalf("click past line end: got %d, want %d", got, 5)
	}
}

func TestMouse_ClickFocuses(t *testing.T) {
	m := New(Config{Text: "hello", Provider: nopProvider()})
	m = m.SetSize(20, 2)

	m, _ = m.Update(press(1, 0))
	if !m.Focused() {
		t.Fatalf("click must focus the widget")
	}
	if got := m.Surface().CaretOffset(); got != 1 {
		t.Fatalf("caret: got %d, want %d", got, 1)
	}
}

func TestMouse_ClickIgnoredWhenDisabledOrOutside(t *testing.T) {
	m := New(Config{Text: "hello", Disabled: true})
	m = m.SetSize(20, 2)
	m, _ = m.Update(press(1, 0))
	if m.Focused() {
		t.Fatalf("disabled widget must ignore clicks")
	}

	m = New(Config{Text: "hello", Provider: nopProvider()}).SetSize(20, 2)
	m, _ = m.Update(press(30, 0))
	if m.Focused() {
		t.Fatalf("click outside must be ignored")
	}
}

func TestMouse_WheelScrolls(t *testing.T) {
	m := New(Config{Text: "0\n1\n2\n3\n4\n5\n6\n7\n8\n9"})
	m = m.SetSize(10, 3)

	m, _ = m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.viewport.YOffset == 0 {
		t.Fatalf("wheel must scroll the viewport")
	}
}
