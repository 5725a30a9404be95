package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the color scheme shared by all views.
type Theme struct {
	Accent  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Hint    lipgloss.Color
	Agent   lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Accent:  lipgloss.Color("#5FAFD7"), // light blue
	Success: lipgloss.Color("#00D787"), // green
	Error:   lipgloss.Color("#FF005F"), // red
	Hint:    lipgloss.Color("#6C6C6C"), // dim gray
	Agent:   lipgloss.Color("#AF87FF"), // violet
}

// Style functions for dynamic theming
func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}

func (t Theme) accentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent)
}

func (t Theme) successStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success).Bold(true)
}

func (t Theme) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

func (t Theme) agentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Agent).Bold(true)
}

func (t Theme) selectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}

func (t Theme) badgeStyle(s string) lipgloss.Style {
	switch s {
	case "active":
		return lipgloss.NewStyle().Foreground(t.Success)
	case "pending":
		return lipgloss.NewStyle().Foreground(t.Accent)
	case "sold":
		return lipgloss.NewStyle().Foreground(t.Hint)
	}
	return lipgloss.NewStyle()
}
