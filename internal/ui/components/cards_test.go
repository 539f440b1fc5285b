package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskItemView(t *testing.T) {
	t.Parallel()

	t.Run("completed rows carry a check mark", func(t *testing.T) {
		t.Parallel()
		task := Task{Title: "Invoice Validation", Status: TaskStatusCompleted, Progress: "25/25 Done", Assignee: "RA"}

		view := NewTaskItem(task).ViewWithContext(plainContext(80))

		assert.Contains(t, view, CheckMark)
		assert.Contains(t, view, "Invoice Validation")
		assert.Contains(t, view, "RA")
		assert.Contains(t, view, "25/25 Done")
		assert.Equal(t, 80, lipgloss.Width(view))
	})

	t.Run("pending rows have no mark glyph", func(t *testing.T) {
		t.Parallel()
		task := Task{Title: "Reviewing", Status: TaskStatusPending, Progress: "35/50 Tasks", Assignee: "AV"}

		view := NewTaskItem(task).ViewWithContext(plainContext(80))

		assert.NotContains(t, view, CheckMark)
		assert.Contains(t, view, "35/50 Tasks")
	})

	t.Run("progress is right aligned", func(t *testing.T) {
		t.Parallel()
		task := Task{Title: "Short", Status: TaskStatusPending, Progress: "1/2"}

		view := NewTaskItem(task).ViewWithContext(plainContext(60))

		for _, line := range strings.Split(view, "\n") {
			if strings.Contains(line, "Short") {
				assert.True(t, strings.HasSuffix(strings.TrimRight(line, " "), "1/2"))
				return
			}
		}
		t.Fatal("title line not found")
	})

	t.Run("long titles are truncated", func(t *testing.T) {
		t.Parallel()
		task := Task{Title: strings.Repeat("Reconcile ", 10), Status: TaskStatusPending, Progress: "10/20 Tasks", Assignee: "RA"}

		view := NewTaskItem(task).ViewWithContext(plainContext(50))

		assert.Contains(t, view, "…")
		assert.Contains(t, view, "10/20 Tasks")
		assert.Equal(t, 50, lipgloss.Width(view))
	})

	t.Run("narrow rows drop progress before the avatar", func(t *testing.T) {
		t.Parallel()
		task := Task{Title: "Invoice Validation", Status: TaskStatusCompleted, Progress: "25/25 Done", Assignee: "RA"}

		view := NewTaskItem(task).ViewWithContext(plainContext(20))

		assert.Contains(t, view, "RA")
		assert.Contains(t, view, "Invo…")
		assert.NotContains(t, view, "Done")
		assert.Equal(t, 20, lipgloss.Width(view))
		assert.Equal(t, 3, lipgloss.Height(view))
	})

	t.Run("narrow rows without assignee drop progress", func(t *testing.T) {
		t.Parallel()
		task := Task{Title: "Invoice Validation", Status: TaskStatusPending, Progress: "25/25 Done"}

		view := NewTaskItem(task).ViewWithContext(plainContext(16))

		assert.Contains(t, view, "…")
		assert.NotContains(t, view, "Done")
		assert.Equal(t, 16, lipgloss.Width(view))
		assert.Equal(t, 3, lipgloss.Height(view))
	})

	t.Run("highlight toggles", func(t *testing.T) {
		t.Parallel()
		item := NewTaskItem(Task{Title: "x"})
		assert.False(t, item.Highlighted())
		assert.True(t, item.WithHighlight(true).Highlighted())
	})
}

func TestStatusMark(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	completed := StatusMark(theme, TaskStatusCompleted)
	assert.Equal(t, CheckMark, completed.Text())
	assert.Equal(t, theme.StatusStyle(TaskStatusCompleted), completed.Bundle())

	pending := StatusMark(theme, TaskStatusPending)
	assert.Equal(t, " ", pending.Text())
	assert.Equal(t, RGB(255, 238, 189), pending.Bundle().Background)

	avatar := Avatar(theme, "RA")
	assert.Equal(t, " RA ", avatar.ViewWithContext(plainContext(0)))
	assert.Equal(t, theme.Palette.Ink, avatar.Bundle().Background)
}

func TestStatusCard(t *testing.T) {
	t.Parallel()

	content := exampleContent()
	card := NewStatusCard(content.StatusTitle, content.Tasks)

	view := card.ViewWithContext(plainContext(100))

	require.Contains(t, view, "Current Close Status")
	assert.Equal(t, 1, strings.Count(view, CheckMark))
	assert.Equal(t, StatusSummary{Completed: 1, Pending: 2}, card.Summary())
	assert.Equal(t, 3, card.Summary().Total())
	assert.Equal(t, 100, lipgloss.Width(view))

	assert.Equal(t, 1, card.WithHighlight(1).Highlight())
	assert.Equal(t, -1, card.WithHighlight(3).Highlight())
}

func TestStatusCardAtMinimumWidth(t *testing.T) {
	t.Parallel()

	content := exampleContent()
	view := NewStatusCard(content.StatusTitle, content.Tasks).ViewWithContext(plainContext(30))

	assert.Equal(t, 30, lipgloss.Width(view))
	assert.Contains(t, view, "AV")
	// progress text gives way; nothing wraps onto a second line
	assert.NotContains(t, view, "/")
	assert.Equal(t, 1, strings.Count(view, CheckMark))
}

func TestSummarizeCountsUnknownAsOther(t *testing.T) {
	t.Parallel()

	tasks := []Task{
		{Status: ParseTaskStatus("completed")},
		{Status: ParseTaskStatus("blocked")},
		{Status: ParseTaskStatus("")},
	}
	assert.Equal(t, StatusSummary{Completed: 1, Other: 2}, Summarize(tasks))
}

func TestAlertCardView(t *testing.T) {
	t.Parallel()

	t.Run("title is upper cased", func(t *testing.T) {
		t.Parallel()
		view := RiskAlert("Risk alert", "Receivables may delay close.").ViewWithContext(plainContext(60))

		assert.Contains(t, view, "RISK ALERT")
		assert.NotContains(t, view, "Risk alert")
		assert.Contains(t, view, "Receivables may delay close.")
		assert.Equal(t, 60, lipgloss.Width(view))
	})

	t.Run("unknown type renders as observation", func(t *testing.T) {
		t.Parallel()
		card := NewAlertCard(Alert{Type: ParseAlertType("unknown"), Title: "note", Message: "m"})
		assert.Equal(t, AlertObservation, card.Alert().Type)
		assert.Contains(t, card.ViewWithContext(plainContext(40)), "NOTE")
	})

	t.Run("long messages wrap inside the card", func(t *testing.T) {
		t.Parallel()
		message := strings.Repeat("accrual ", 20)
		view := GrowthAlert("Growth", message).ViewWithContext(plainContext(40))

		assert.Equal(t, 40, lipgloss.Width(view))
		assert.Greater(t, lipgloss.Height(view), 5)
	})
}

func TestHeroView(t *testing.T) {
	t.Parallel()

	hero := NewHero(exampleContent().Hero)
	assert.Equal(t, DefaultCTA, hero.Content().CTA)

	view := hero.ViewWithContext(plainContext(120))

	assert.Contains(t, view, "● Welcome to Komplai")
	assert.Contains(t, view, "Audit-ready finance automation for your business.")
	assert.Contains(t, view, "Get Started Now →")
	assert.Equal(t, 120, lipgloss.Width(view))

	custom := NewHero(HeroContent{Headline: "Close faster", CTA: "Book a demo"})
	assert.Contains(t, custom.ViewWithContext(plainContext(60)), "Book a demo")
	assert.NotContains(t, custom.ViewWithContext(plainContext(60)), "●")
}

func TestFeatureCardView(t *testing.T) {
	t.Parallel()

	card := NewFeatureCard(Feature{Title: "Smart reconciliation", Description: "Matches bank lines to ledger entries.", Icon: "⚡"})

	view := card.ViewWithContext(plainContext(50))

	assert.Contains(t, view, "⚡")
	assert.Contains(t, view, "Smart reconciliation")
	assert.Contains(t, view, "Matches bank lines")
	assert.Equal(t, 50, lipgloss.Width(view))
	assert.Equal(t, "Smart reconciliation", card.WithHighlight(true).Feature().Title)
}

func TestButtonVariants(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	for _, variant := range []ButtonVariant{ButtonVariantPrimary, ButtonVariantAccent, ButtonVariantGhost} {
		require.NotNil(t, theme.Variants.Get(variant), "variant %d", variant)
	}

	view := PrimaryButton("Go").ViewWithContext(plainContext(0))
	assert.Equal(t, "   Go   ", view)
	assert.Equal(t, ButtonVariantAccent, AccentButton("x").Variant())
	assert.Contains(t, GhostButton("Ghost").ViewWithContext(plainContext(0)), "╭")
}
