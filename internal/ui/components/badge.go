package components

import "github.com/charmbracelet/lipgloss"

// CheckMark is drawn inside the status mark of completed tasks.
const CheckMark = "✓"

// Chip is a small filled token: the status mark and the initials avatar
// of a task row are both chips.
type Chip struct {
	BaseComponent
	text   string
	bundle StyleBundle
}

// NewChip creates a chip painted with bundle.
func NewChip(text string, bundle StyleBundle) *Chip {
	return &Chip{
		BaseComponent: NewBaseComponent(),
		text:          text,
		bundle:        bundle,
	}
}

// StatusMark creates the round status indicator of a task row. Only
// completed tasks carry a glyph; the others are a plain colour swatch.
func StatusMark(theme Theme, status TaskStatus) *Chip {
	glyph := " "
	if status == TaskStatusCompleted {
		glyph = CheckMark
	}
	return NewChip(glyph, theme.StatusStyle(status)).WithAppliers(PaddingX(SpacingSizeExtraSmall))
}

// Avatar creates the initials chip of an assignee.
func Avatar(theme Theme, initials string) *Chip {
	bundle := StyleBundle{
		Foreground: theme.Palette.White,
		Background: theme.Palette.Ink,
	}
	return NewChip(initials, bundle).WithAppliers(
		PaddingX(SpacingSizeExtraSmall),
		Typography(TypographyVariantStrong),
	)
}

// View renders the chip.
func (c *Chip) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the chip over the context surface.
func (c *Chip) ViewWithContext(ctx RenderContext) string {
	style := c.bundle.Apply(c.ComputeStyle(ctx.Theme), ctx.Surface)
	return style.Render(c.text)
}

// WithAppliers applies theme-based style modifiers.
func (c *Chip) WithAppliers(appliers ...StyleFunc) *Chip {
	c.AddAppliers(appliers...)
	return c
}

// WithStyle sets the chip style.
func (c *Chip) WithStyle(style lipgloss.Style) *Chip {
	c.SetStyle(style)
	return c
}

// Text returns the chip text.
func (c *Chip) Text() string {
	return c.text
}

// Bundle returns the colours the chip paints with.
func (c *Chip) Bundle() StyleBundle {
	return c.bundle
}
