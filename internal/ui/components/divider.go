package components

import (
	"strings"
)

// Divider renders a horizontal rule across the available width.
type Divider struct {
	BaseComponent
	char  string
	width int
	color RGBA
}

// NewDivider creates a divider drawn with a light line.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider at the explicit width, else the
// constraint width, else the theme's default page width.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.Constraints.Width()
	}
	if width <= 0 {
		width = ctx.Theme.Layout.DefaultWidth
	}

	style := d.ComputeStyle(ctx.Theme)
	if !d.color.IsZero() {
		style = style.Foreground(d.color.Lipgloss(ctx.Surface))
	}
	return style.Render(strings.Repeat(d.char, width))
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithColor sets the line colour.
func (d *Divider) WithColor(color RGBA) *Divider {
	d.color = color
	return d
}
