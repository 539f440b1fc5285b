package preview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/komplai/designsystem/internal/ui/components"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-lipgloss.Height(m.footer()))
		m.ready = true
		m.render()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.moveHighlight(1)
			m.render()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.moveHighlight(-1)
			m.render()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// moveHighlight steps the highlight through the task rows, wrapping at
// both ends. From no highlight, forward starts at the first row and
// backward at the last.
func (m *Model) moveHighlight(step int) {
	count := len(m.content.Tasks)
	if count == 0 {
		m.highlight = -1
		return
	}
	if m.highlight < 0 {
		if step > 0 {
			m.highlight = 0
		} else {
			m.highlight = count - 1
		}
		return
	}
	m.highlight = ((m.highlight+step)%count + count) % count
}

func (m *Model) render() {
	if !m.ready {
		return
	}
	ctx := components.DefaultContext().
		WithTheme(m.theme).
		WithConstraints(components.WithWidth(max(1, m.width)))
	page := components.NewDashboard(m.content).HighlightTask(m.highlight)
	m.viewport.SetContent(page.ViewWithContext(ctx))
}
