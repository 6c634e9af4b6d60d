package editor

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestParseStyleConfig(t *testing.T) {
	st := ParseStyleConfig(`{"suggestion": {"color": "#ff0000", "bold": true, "italic": false},
		"cursor": {"background": "212"}}`)

	if got := st.Suggestion.GetForeground(); got != lipgloss.Color("#ff0000") {
		t.Fatalf("suggestion color: got %v", got)
	}
	if !st.Suggestion.GetBold() || st.Suggestion.GetItalic() {
		t.Fatalf("suggestion bold/italic not applied")
	}
	if got := st.Cursor.GetBackground(); got != lipgloss.Color("212") {
		t.Fatalf("cursor background: got %v", got)
	}
	if !st.Cursor.GetReverse() {
		t.Fatalf("cursor must keep its default reverse")
	}
	if got := st.Placeholder.GetForeground(); got != lipgloss.Color("246") {
		t.Fatalf("placeholder must keep its default: got %v", got)
	}
}

func TestParseStyleConfig_InvalidInputKeepsDefaults(t *testing.T) {
	def := DefaultStyle()
	for _, raw := range []string{"", "{", "[1,2]", `"text"`, `{"text": 3}`} {
		st := ParseStyleConfig(raw)
		if st.Suggestion.GetForeground() != def.Suggestion.GetForeground() ||
			st.Text.GetForeground() != def.Text.GetForeground() {
			t.Fatalf("ParseStyleConfig(%q) must return defaults", raw)
		}
	}
}
