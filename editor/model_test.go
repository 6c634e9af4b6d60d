package editor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNew_StartsBlurredWithoutCaret(t *testing.T) {
	m := New(Config{Text: "hello"})
	if m.Focused() {
		t.Fatalf("new model must not be focused")
	}
	if m.Surface().HasSelection() {
		t.Fatalf("new model must not have a caret")
	}
	if got := m.Value(); got != "hello" {
		t.Fatalf("value: got %q, want %q", got, "hello")
	}
}

func TestFocus_PlacesCaretAtEnd(t *testing.T) {
	m := New(Config{Text: "hello"})
	m, cmd := m.Focus()
	if !m.Focused() {
		t.Fatalf("expected focus")
	}
	if cmd == nil {
		t.Fatalf("focus must start cursor tracking")
	}
	if got := m.Surface().CaretOffset(); got != 5 {
		t.Fatalf("caret: got %d, want %d", got, 5)
	}

	m = m.SetSelectionRange(1, 1)
	m = m.Blur()
	m, _ = m.Focus()
	if got := m.Surface().CaretOffset(); got != 1 {
		t.Fatalf("refocus must keep the caret: got %d, want %d", got, 1)
	}
}

func TestFocus_DisabledIsRefused(t *testing.T) {
	m, cmd := New(Config{Text: "x", Disabled: true}).Focus()
	if m.Focused() || cmd != nil {
		t.Fatalf("disabled widget must not take focus")
	}
}

func TestAutofocus(t *testing.T) {
	m := New(Config{Text: "ab", Autofocus: true, Provider: nopProvider()})
	if !m.Focused() {
		t.Fatalf("autofocus must focus the widget")
	}
	if m.Init() == nil {
		t.Fatalf("Init must start cursor tracking when autofocused")
	}
	if New(Config{}).Init() != nil {
		t.Fatalf("Init must be a no-op without autofocus")
	}
}

func TestSelect_SelectsAll(t *testing.T) {
	m := newFocused(t, Config{Text: "hello"})
	m = m.Select()
	if got := m.Surface().SelectedText(); got != "hello" {
		t.Fatalf("selected: got %q, want %q", got, "hello")
	}

	m = m.SetSelectionRange(10, -3)
	if got := m.Surface().SelectedText(); got != "hello" {
		t.Fatalf("clamped selection: got %q, want %q", got, "hello")
	}
}

func TestSetSize_AffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestView_FixedSize(t *testing.T) {
	st := testStyle()
	m := New(Config{Text: "one\ntwo\nthree\nfour", Style: &st})
	m = m.SetSize(8, 3)

	got := strings.Split(m.View(), "\n")
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(got))
	}
	want := []string{"one", "two", "three"}
	for i := range want {
		if line := strings.TrimRight(got[i], " "); line != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, line, want[i])
		}
	}
}

func TestFollowCaret_ScrollsViewport(t *testing.T) {
	m := newFocused(t, Config{Text: "0\n1\n2\n3\n4\n5\n6\n7\n8\n9"})
	m = m.SetSize(10, 3)
	if got := m.viewport.YOffset; got != 7 {
		t.Fatalf("yoffset with caret on last row: got %d, want %d", got, 7)
	}

	m = m.SetSelectionRange(0, 0)
	if got := m.viewport.YOffset; got != 0 {
		t.Fatalf("yoffset with caret on first row: got %d, want %d", got, 0)
	}
}
