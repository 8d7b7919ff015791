package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the chat screen
type Styles struct {
	Title           lipgloss.Style
	Input           lipgloss.Style
	Trigger         lipgloss.Style
	TriggerDisabled lipgloss.Style
	Notice          lipgloss.Style
	Loading         lipgloss.Style
	Reply           lipgloss.Style
	Error           lipgloss.Style
	Hint            lipgloss.Style
	Example         lipgloss.Style
	Help            lipgloss.Style
}

func DefaultStyles() Styles {
	accent := lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#9F8CFF"}
	muted := lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"}
	danger := lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6B6B"}

	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent),
		Trigger: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent).
			Padding(0, 2),
		TriggerDisabled: lipgloss.NewStyle().
			Foreground(muted).
			Background(lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#333333"}).
			Padding(0, 2),
		Notice:  lipgloss.NewStyle().Foreground(danger).Bold(true),
		Loading: lipgloss.NewStyle().Foreground(accent).Italic(true),
		Reply:   lipgloss.NewStyle(),
		Error: lipgloss.NewStyle().
			Foreground(danger).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(danger).
			PaddingLeft(1),
		Hint:    lipgloss.NewStyle().Foreground(muted).Italic(true),
		Example: lipgloss.NewStyle().Foreground(muted),
		Help:    lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}
