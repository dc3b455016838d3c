package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering outside of syntax colors.
type Style struct {
	StatusBar lipgloss.Style
	Message   lipgloss.Style
	Welcome   lipgloss.Style
	Filler    lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("#3f3f3f")).Background(lipgloss.Color("#efefef")),
		Message:   lipgloss.NewStyle(),
		Welcome:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Filler:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
	}
}
