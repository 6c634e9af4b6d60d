package editor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/gjson"
)

// ParseStyleConfig reads a JSON style object such as
//
//	{"suggestion": {"color": "#999999", "italic": true},
//	 "cursor": {"background": "212"}}
//
// Recognised parts are text, suggestion, cursor, placeholder and selection;
// each may set color, background, bold, italic, faint and underline. Parts
// that are missing keep DefaultStyle. Input that is not a JSON object yields
// DefaultStyle unchanged.
func ParseStyleConfig(raw string) Style {
	st := DefaultStyle()
	if !gjson.Valid(raw) {
		return st
	}
	root := gjson.Parse(raw)
	if !root.IsObject() {
		return st
	}

	st.Text = applyStylePart(st.Text, root.Get("text"))
	st.Suggestion = applyStylePart(st.Suggestion, root.Get("suggestion"))
	st.Cursor = applyStylePart(st.Cursor, root.Get("cursor"))
	st.Placeholder = applyStylePart(st.Placeholder, root.Get("placeholder"))
	st.Selection = applyStylePart(st.Selection, root.Get("selection"))
	return st
}

func applyStylePart(s lipgloss.Style, part gjson.Result) lipgloss.Style {
	if !part.IsObject() {
		return s
	}
	if v := part.Get("color"); v.Type == gjson.String && v.String() != "" {
		s = s.Foreground(lipgloss.Color(v.String()))
	}
	if v := part.Get("background"); v.Type == gjson.String && v.String() != "" {
		s = s.Background(lipgloss.Color(v.String()))
	}
	if v := part.Get("bold"); v.IsBool() {
		s = s.Bold(v.Bool())
	}
	if v := part.Get("italic"); v.IsBool() {
		s = s.Italic(v.Bool())
	}
	if v := part.Get("faint"); v.IsBool() {
		s = s.Faint(v.Bool())
	}
	if v := part.Get("underline"); v.IsBool() {
		s = s.Underline(v.Bool())
	}
	return s
}
