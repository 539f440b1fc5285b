package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardView(t *testing.T) {
	t.Parallel()

	dashboard := NewDashboard(exampleContent())

	view := dashboard.ViewWithContext(plainContext(120))

	require.NotEmpty(t, view)
	assert.Equal(t, 120, lipgloss.Width(view))
	assert.Equal(t, 1, strings.Count(view, CheckMark))
	assert.Contains(t, view, "Get Started Now →")
	assert.Contains(t, view, "Current Close Status")
	for _, title := range []string{"RISK ALERT", "GROWTH", "OBSERVATION"} {
		assert.Contains(t, view, title)
	}

	stats := dashboard.Stats()
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 2, stats.Pending)
	assert.Zero(t, stats.Other)
}

func TestDashboardSectionOrder(t *testing.T) {
	t.Parallel()

	view := NewDashboard(exampleContent()).ViewWithContext(plainContext(100))

	hero := strings.Index(view, "Welcome to Komplai")
	status := strings.Index(view, "Current Close Status")
	alerts := strings.Index(view, "RISK ALERT")

	require.NotEqual(t, -1, hero)
	assert.Less(t, hero, status)
	assert.Less(t, status, alerts)
}

func TestDashboardOptionalSections(t *testing.T) {
	t.Parallel()

	content := exampleContent()
	content.Features = []Feature{{Title: "Larry", Description: "Your finance agent.", Icon: "★"}}
	content.Progress = []Progress{{Label: "Reviewing", Value: 35, Total: 50, Variant: ProgressPartial}}

	view := NewDashboard(content).ViewWithContext(plainContext(100))

	assert.Contains(t, view, "Your finance agent.")
	assert.Contains(t, view, "70%")

	empty := NewDashboard(DashboardContent{StatusTitle: "Only status"}).ViewWithContext(plainContext(60))
	assert.Contains(t, empty, "Only status")
	assert.NotContains(t, empty, DefaultCTA)
}

func TestDashboardCapsColumnWidth(t *testing.T) {
	t.Parallel()

	view := NewDashboard(exampleContent()).ViewWithContext(plainContext(200))

	assert.Equal(t, 200, lipgloss.Width(view))
	// three alert cards fit side by side in the capped column
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "RISK ALERT") {
			assert.Contains(t, line, "GROWTH")
			assert.Contains(t, line, "OBSERVATION")
			return
		}
	}
	t.Fatal("alert row not found")
}

func TestDashboardHighlightTask(t *testing.T) {
	t.Parallel()

	dashboard := NewDashboard(exampleContent())
	assert.Equal(t, -1, dashboard.HighlightedTask())
	assert.Equal(t, 2, dashboard.HighlightTask(2).HighlightedTask())
	assert.Equal(t, -1, dashboard.HighlightTask(5).HighlightedTask())
	assert.Equal(t, -1, dashboard.HighlightTask(-1).HighlightedTask())
}

func TestDashboardDefaultWidth(t *testing.T) {
	t.Parallel()

	view := NewDashboard(exampleContent()).ViewWithContext(plainContext(0))
	assert.Equal(t, DefaultTheme().Layout.DefaultWidth, lipgloss.Width(view))
}
