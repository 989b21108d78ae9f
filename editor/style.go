package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text   lipgloss.Style
	Cursor lipgloss.Style
	Status lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:   lipgloss.NewStyle(),
		Cursor: lipgloss.NewStyle().Reverse(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
