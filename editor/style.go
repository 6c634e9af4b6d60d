package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text        lipgloss.Style
	Suggestion  lipgloss.Style
	Cursor      lipgloss.Style
	Placeholder lipgloss.Style
	Selection   lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:        lipgloss.NewStyle(),
		Suggestion:  lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
	}
}
