package preview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/komplai/designsystem/internal/ui/components"
)

// View renders the viewport and the footer.
func (m Model) View() string {
	if !m.ready {
		return "Loading dashboard..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.footer())
}

func (m Model) footer() string {
	summary := components.Summarize(m.content.Tasks)
	status := fmt.Sprintf("%d completed · %d pending", summary.Completed, summary.Pending)
	if summary.Other > 0 {
		status += fmt.Sprintf(" · %d other", summary.Other)
	}
	if m.highlight >= 0 && m.highlight < len(m.content.Tasks) {
		status += " · " + m.content.Tasks[m.highlight].Title
	}

	gray := m.theme.Palette.Gray.Lipgloss(m.theme.Palette.Canvas)
	line := lipgloss.NewStyle().Foreground(gray).Render(status)
	return lipgloss.JoinVertical(lipgloss.Left, line, m.help.View(m.keys))
}
