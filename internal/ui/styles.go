package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Frame     lipgloss.Style
	Highlight lipgloss.Style
	Status    lipgloss.Style
}

func NewStyles(dark bool) Styles {
	s := Styles{}
	if dark {
		s.Frame = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Background(lipgloss.Color("4"))
		s.Highlight = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Background(lipgloss.Color("7"))
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	} else {
		s.Frame = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("27"))
		s.Highlight = lipgloss.NewStyle().Foreground(lipgloss.Color("27")).Background(lipgloss.Color("15"))
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}
	return s
}
