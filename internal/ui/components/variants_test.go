package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  TaskStatus
		known bool
	}{
		{name: "completed", input: "completed", want: TaskStatusCompleted, known: true},
		{name: "pending", input: "pending", want: TaskStatusPending, known: true},
		{name: "empty", input: "", want: TaskStatusOther},
		{name: "unknown", input: "archived", want: TaskStatusOther},
		{name: "case sensitive", input: "Completed", want: TaskStatusOther},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := LookupTaskStatus(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, ok)
			assert.Equal(t, tt.want, ParseTaskStatus(tt.input))
		})
	}
}

func TestParseAlertType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, AlertRisk, ParseAlertType("risk"))
	assert.Equal(t, AlertGrowth, ParseAlertType("growth"))
	assert.Equal(t, AlertObservation, ParseAlertType("observation"))
	assert.Equal(t, AlertObservation, ParseAlertType("unknown"))
	assert.Equal(t, AlertObservation, ParseAlertType(""))

	_, ok := LookupAlertType("unknown")
	assert.False(t, ok)
}

func TestParseProgressVariant(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ProgressComplete, ParseProgressVariant(""))
	assert.Equal(t, ProgressComplete, ParseProgressVariant("complete"))
	assert.Equal(t, ProgressPartial, ParseProgressVariant("partial"))
	assert.Equal(t, ProgressInactive, ParseProgressVariant("inactive"))
	assert.Equal(t, ProgressComplete, ParseProgressVariant("done"))
}

func TestVariantStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "completed", TaskStatusCompleted.String())
	assert.Equal(t, "other", TaskStatus(42).String())
	assert.Equal(t, "risk", AlertRisk.String())
	assert.Equal(t, "observation", AlertType(-1).String())
	assert.Equal(t, "partial", ProgressPartial.String())
	assert.Equal(t, "complete", ProgressVariant(9).String())
}

func TestStatusStyle(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	tests := []struct {
		status TaskStatus
		want   StyleBundle
	}{
		{TaskStatusCompleted, StyleBundle{Foreground: RGB(255, 255, 255), Background: RGB(69, 209, 99), Border: RGB(69, 209, 99)}},
		{TaskStatusPending, StyleBundle{Foreground: RGB(34, 34, 34), Background: RGB(255, 238, 189), Border: RGB(255, 238, 189)}},
		{TaskStatusOther, StyleBundle{Foreground: RGB(255, 255, 255), Background: RGB(102, 102, 102), Border: RGB(102, 102, 102)}},
		{TaskStatus(-3), StyleBundle{Foreground: RGB(255, 255, 255), Background: RGB(102, 102, 102), Border: RGB(102, 102, 102)}},
	}

	for _, tt := range tests {
		tt := tt
		assert.Equal(t, tt.want, theme.StatusStyle(tt.status), "status %d", tt.status)
	}

	assert.Equal(t, theme.StatusStyle(TaskStatusOther), theme.StatusStyleFor("blocked"))
}

func TestAlertStyle(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	risk := theme.AlertStyleFor("risk")
	assert.Equal(t, RGB(255, 100, 100), risk.Foreground)
	assert.Equal(t, RGBAlpha(255, 100, 100, 0.1), risk.Background)
	assert.Equal(t, RGBAlpha(255, 100, 100, 0.3), risk.Border)

	growth := theme.AlertStyle(AlertGrowth)
	assert.Equal(t, RGB(69, 209, 99), growth.Foreground)
	assert.Equal(t, RGBAlpha(69, 209, 99, 0.1), growth.Background)

	observation := theme.AlertStyle(AlertObservation)
	assert.Equal(t, observation, theme.AlertStyleFor("unknown"))
	assert.Equal(t, observation, theme.AlertStyle(AlertType(7)))
	assert.Equal(t, RGBAlpha(255, 255, 255, 0.05), observation.Background)
}

func TestProgressStyle(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	track := RGB(235, 235, 235)

	assert.Equal(t, RGB(69, 209, 99), theme.ProgressStyle(ProgressComplete).Foreground)
	assert.Equal(t, RGB(255, 165, 0), theme.ProgressStyle(ProgressPartial).Foreground)
	assert.Equal(t, RGB(102, 102, 102), theme.ProgressStyle(ProgressInactive).Foreground)
	assert.Equal(t, theme.ProgressStyle(ProgressComplete), theme.ProgressStyleFor("sideways"))

	for variant := ProgressComplete; variant < progressVariantCount; variant++ {
		assert.Equal(t, track, theme.ProgressStyle(variant).Background)
	}
}

func TestStyleTablesAreTotal(t *testing.T) {
	t.Parallel()

	tables := DefaultTheme().Styles
	for _, bundle := range tables.Status {
		require.False(t, bundle.IsZero())
	}
	for _, bundle := range tables.Alert {
		require.False(t, bundle.IsZero())
	}
	for _, bundle := range tables.Progress {
		require.False(t, bundle.IsZero())
	}
}
