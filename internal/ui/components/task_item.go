package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TaskItem is one row of a status card: status mark and title on the
// left, assignee chip and progress text on the right.
type TaskItem struct {
	BaseComponent
	task        Task
	highlighted bool
}

// NewTaskItem creates a row for task.
func NewTaskItem(task Task) *TaskItem {
	item := &TaskItem{
		BaseComponent: NewBaseComponent(),
		task:          task,
	}
	item.SetAppliers(PaddingXY(SpacingSizeMedium, SpacingSizeLarge))
	return item
}

// View renders the row.
func (t *TaskItem) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the row across the constraint width. Titles that
// do not fit are truncated with an ellipsis.
func (t *TaskItem) ViewWithContext(ctx RenderContext) string {
	palette := ctx.Theme.Palette
	fill := palette.RowFill
	if t.highlighted {
		fill = palette.RowHover
	}
	rowCtx := ctx.WithSurface(fill)

	style := t.ComputeStyle(ctx.Theme).Background(fill.Lipgloss(ctx.Surface))
	width := ctx.Constraints.Width()
	inner := 0
	if width > 0 {
		style = style.Width(max(1, width-style.GetHorizontalBorderSize()-style.GetHorizontalMargins()))
		inner = max(1, width-style.GetHorizontalFrameSize())
	}

	pad := func(n int) string {
		return NewText(strings.Repeat(" ", max(0, n))).ViewWithContext(rowCtx)
	}

	mark := StatusMark(ctx.Theme, t.task.Status).ViewWithContext(rowCtx)
	titleGap := pad(InlineValue(ctx.Theme, SpacingSizeExtraSmall))
	right := t.trailing(ctx, rowCtx, pad)

	title := t.task.Title
	if inner > 0 {
		// Fixed cells: mark, the gap after it, and at least one cell before the right side.
		fixed := lipgloss.Width(mark) + lipgloss.Width(titleGap) + 1
		available := inner - fixed - lipgloss.Width(right[0])
		// Drop the progress text first, then the avatar, until the title has room.
		for len(right) > 1 && available < 1 {
			right = right[1:]
			available = inner - fixed - lipgloss.Width(right[0])
		}
		if runewidth.StringWidth(title) > available {
			title = runewidth.Truncate(title, max(1, available), "…")
		}
	}
	heading := StrongText(title).WithColor(palette.White).ViewWithContext(rowCtx)
	left := lipgloss.JoinHorizontal(lipgloss.Center, mark, titleGap, heading)

	between := 1
	if inner > 0 {
		between = max(1, inner-lipgloss.Width(left)-lipgloss.Width(right[0]))
	}

	return style.Render(lipgloss.JoinHorizontal(lipgloss.Center, left, pad(between), right[0]))
}

// trailing returns the right side of the row from widest to narrowest:
// avatar and progress, avatar only, nothing.
func (t *TaskItem) trailing(ctx, rowCtx RenderContext, pad func(int) string) []string {
	progress := NewText(t.task.Progress).WithColor(ctx.Theme.Palette.White).ViewWithContext(rowCtx)
	if t.task.Assignee == "" {
		return []string{progress, ""}
	}
	avatar := Avatar(ctx.Theme, t.task.Assignee).ViewWithContext(rowCtx)
	full := lipgloss.JoinHorizontal(lipgloss.Center, avatar, pad(InlineValue(ctx.Theme, SpacingSizeMedium)), progress)
	return []string{full, avatar, ""}
}

// WithHighlight marks the row as highlighted, lightening its fill.
func (t *TaskItem) WithHighlight(highlighted bool) *TaskItem {
	t.highlighted = highlighted
	return t
}

// Highlighted reports whether the row is highlighted.
func (t *TaskItem) Highlighted() bool {
	return t.highlighted
}

// WithAppliers applies theme-based style modifiers.
func (t *TaskItem) WithAppliers(appliers ...StyleFunc) *TaskItem {
	t.AddAppliers(appliers...)
	return t
}

// Task returns the rendered task.
func (t *TaskItem) Task() Task {
	return t.task
}
