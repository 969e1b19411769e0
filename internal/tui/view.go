package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ModelView renders the preview model's view as a string.
func ModelView(m model) string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	rng := m.sp.Resolve(len(m.lines))
	header := fmt.Sprintf("%s  %d of %d lines",
		headerStyle.Render(m.sp.String()), rng.Len(), len(m.lines))

	body := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#555555")).
		Padding(1).
		Render(m.list.View())

	help := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).
		Render("[ ] begin  { } end  b/e reopen bound  enter print  q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}
