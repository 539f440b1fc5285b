// Package preview is an interactive terminal preview of a dashboard.
package preview

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/komplai/designsystem/internal/ui/components"
)

// Model renders a dashboard inside a scrolling viewport. The page is
// re-rendered on every resize so the alert grid reflows.
type Model struct {
	content components.DashboardContent
	theme   components.Theme

	viewport viewport.Model
	help     help.Model
	keys     keyMap

	highlight int
	width     int
	height    int
	ready     bool
}

// New creates a preview of content.
func New(content components.DashboardContent, theme components.Theme) Model {
	keys := defaultKeyMap()
	vp := viewport.New(0, 0)
	vp.KeyMap = keys.viewportKeyMap()

	return Model{
		content:   content,
		theme:     theme.Normalize(),
		viewport:  vp,
		help:      help.New(),
		keys:      keys,
		highlight: -1,
	}
}

// Init initializes the model. The first render waits for the window size.
func (m Model) Init() tea.Cmd {
	return nil
}

// Highlight returns the highlighted task index, or -1.
func (m Model) Highlight() int {
	return m.highlight
}

// Run starts the preview in the alternate screen and blocks until it quits
// or ctx is cancelled.
func Run(ctx context.Context, content components.DashboardContent, theme components.Theme) error {
	program := tea.NewProgram(New(content, theme), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
