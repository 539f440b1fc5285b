package preview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komplai/designsystem/internal/ui/components"
)

func testContent() components.DashboardContent {
	return components.DashboardContent{
		StatusTitle: "Current Close Status",
		Tasks: []components.Task{
			{Title: "Invoice Validation", Status: components.TaskStatusCompleted, Progress: "25/25 Done", Assignee: "RA"},
			{Title: "Reviewing Reconciled Transactions", Status: components.TaskStatusPending, Progress: "35/50 Tasks", Assignee: "AV"},
			{Title: "Resolve Unreconciled Transactions", Status: components.TaskStatusPending, Progress: "10/20 Tasks", Assignee: "RA"},
		},
		Alerts: []components.Alert{
			{Type: components.AlertRisk, Title: "Risk Alert", Message: "Receivables could delay close."},
		},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func sized(t *testing.T) Model {
	t.Helper()
	m, _ := update(t, New(testContent(), components.DefaultTheme()), tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestViewBeforeResize(t *testing.T) {
	m := New(testContent(), components.DefaultTheme())
	assert.Nil(t, m.Init())
	assert.Equal(t, "Loading dashboard...", m.View())
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := sized(t)

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)
	assert.Equal(t, 100, m.viewport.Width)
	assert.Less(t, m.viewport.Height, 30)
	assert.Contains(t, m.View(), "Current Close Status")
	assert.Contains(t, m.View(), "1 completed · 2 pending")
}

func TestUpdate_TabMovesHighlight(t *testing.T) {
	m := sized(t)
	tab := tea.KeyMsg{Type: tea.KeyTab}
	shiftTab := tea.KeyMsg{Type: tea.KeyShiftTab}

	assert.Equal(t, -1, m.Highlight())

	m, _ = update(t, m, tab)
	assert.Equal(t, 0, m.Highlight())
	assert.Contains(t, m.footer(), "Invoice Validation")

	m, _ = update(t, m, tab)
	m, _ = update(t, m, tab)
	assert.Equal(t, 2, m.Highlight())

	m, _ = update(t, m, tab)
	assert.Equal(t, 0, m.Highlight(), "wraps forward")

	m, _ = update(t, m, shiftTab)
	assert.Equal(t, 2, m.Highlight(), "wraps backward")
}

func TestUpdate_ShiftTabFromNothingSelectsLast(t *testing.T) {
	m := sized(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, m.Highlight())
}

func TestUpdate_NoTasks(t *testing.T) {
	m := New(components.DashboardContent{StatusTitle: "Empty"}, components.DefaultTheme())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, -1, m.Highlight())
}

func TestUpdate_Quit(t *testing.T) {
	m := sized(t)

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := update(t, m, msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestUpdate_ResizeReflows(t *testing.T) {
	m := sized(t)
	wide := m.viewport.View()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 30})
	narrow := m.viewport.View()

	assert.NotEqual(t, wide, narrow)
	assert.Equal(t, 50, m.viewport.Width)
}

func TestUpdate_ScrollKeysMatchHelp(t *testing.T) {
	m, _ := update(t, New(testContent(), components.DefaultTheme()), tea.WindowSizeMsg{Width: 100, Height: 10})
	require.Zero(t, m.viewport.YOffset)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, m.viewport.YOffset)

	// viewport defaults that the help view does not list stay inert
	for _, r := range []string{"f", "d", "b", "u"} {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)})
		assert.Equal(t, 1, m.viewport.YOffset, r)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Zero(t, m.viewport.YOffset)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Positive(t, m.viewport.YOffset)
}
