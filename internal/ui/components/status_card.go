package components

import (
	"github.com/komplai/designsystem/internal/ui"
)

// StatusSummary counts tasks per status.
type StatusSummary struct {
	Completed int
	Pending   int
	Other     int
}

// Total returns the number of counted tasks.
func (s StatusSummary) Total() int {
	return s.Completed + s.Pending + s.Other
}

// Summarize counts tasks by status.
func Summarize(tasks []Task) StatusSummary {
	var summary StatusSummary
	for _, task := range tasks {
		switch task.Status {
		case TaskStatusCompleted:
			summary.Completed++
		case TaskStatusPending:
			summary.Pending++
		default:
			summary.Other++
		}
	}
	return summary
}

// StatusCard is the moss-green card listing the tasks of a close.
type StatusCard struct {
	BaseComponent
	title     string
	tasks     []Task
	highlight int
}

// NewStatusCard creates a card titled title listing tasks.
func NewStatusCard(title string, tasks []Task) *StatusCard {
	card := &StatusCard{
		BaseComponent: NewBaseComponent(),
		title:         title,
		tasks:         tasks,
		highlight:     -1,
	}
	card.SetAppliers(
		Border(BorderVariantRounded),
		PaddingXY(SpacingSizeExtraLarge, SpacingSizeExtraLarge),
	)
	return card
}

// View renders the card.
func (s *StatusCard) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card at the constraint width.
func (s *StatusCard) ViewWithContext(ctx RenderContext) string {
	palette := ctx.Theme.Palette

	children := make([]ui.Renderable, 0, len(s.tasks)+1)
	if s.title != "" {
		children = append(children, TitleText(s.title).WithColor(palette.White).WithWrap(true))
	}
	for i, task := range s.tasks {
		children = append(children, NewTaskItem(task).WithHighlight(i == s.highlight))
	}

	container := NewContainer(children...).
		WithFill(palette.Moss).
		WithBorderColor(palette.Moss).
		WithGap(BlockValue(ctx.Theme, SpacingSizeSmall))
	container.SetAppliers(s.Decorate)
	return container.ViewWithContext(ctx)
}

// WithHighlight highlights the task at index; an out-of-range index
// clears the highlight.
func (s *StatusCard) WithHighlight(index int) *StatusCard {
	if index < 0 || index >= len(s.tasks) {
		index = -1
	}
	s.highlight = index
	return s
}

// Highlight returns the highlighted task index, or -1.
func (s *StatusCard) Highlight() int {
	return s.highlight
}

// WithAppliers applies theme-based style modifiers.
func (s *StatusCard) WithAppliers(appliers ...StyleFunc) *StatusCard {
	s.AddAppliers(appliers...)
	return s
}

// Summary counts the card's tasks by status.
func (s *StatusCard) Summary() StatusSummary {
	return Summarize(s.tasks)
}

// Tasks returns the listed tasks.
func (s *StatusCard) Tasks() []Task {
	return s.tasks
}
