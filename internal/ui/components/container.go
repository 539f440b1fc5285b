package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/komplai/designsystem/internal/ui"
)

// Container is a block that holds children inside an optional fill,
// border and padding. Like a block-level element it stretches to the
// width of its constraints.
type Container struct {
	BaseComponent
	layout      *Stack
	fill        RGBA
	borderColor RGBA
	align       lipgloss.Position
}

// NewContainer creates a new container with default settings.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
		align:         lipgloss.Left,
	}
}

// View renders the container and its children.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container with layout context.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme).Align(c.align)

	childCtx := ctx
	if !c.fill.IsZero() {
		style = style.Background(c.fill.Lipgloss(ctx.Surface))
		childCtx = ctx.WithSurface(c.fill)
	}
	if !c.borderColor.IsZero() {
		style = style.BorderForeground(c.borderColor.Lipgloss(ctx.Surface))
	}

	width := ctx.Constraints.Width()
	if width > 0 {
		// lipgloss widths include padding but exclude border and margin
		inner := width - style.GetHorizontalBorderSize() - style.GetHorizontalMargins()
		style = style.Width(max(1, inner))
	}
	if height := ctx.Constraints.MinHeight; height > 0 {
		inner := height - style.GetVerticalBorderSize() - style.GetVerticalMargins()
		style = style.Height(max(1, inner))
	}

	if width > 0 {
		childCtx = childCtx.WithConstraints(WithMaxWidth(max(1, width-style.GetHorizontalFrameSize())))
	} else {
		childCtx = childCtx.WithConstraints(Unconstrained())
	}

	return style.Render(c.layout.ViewWithContext(childCtx))
}

// WithFill paints the container background. Children are rendered as if
// sitting on the fill, so translucent tokens inside blend with it.
func (c *Container) WithFill(fill RGBA) *Container {
	c.fill = fill
	return c
}

// Fill returns the container background token.
func (c *Container) Fill() RGBA {
	return c.fill
}

// WithBorderColor sets the border colour.
func (c *Container) WithBorderColor(color RGBA) *Container {
	c.borderColor = color
	return c
}

// WithAlign sets the horizontal alignment of the content.
func (c *Container) WithAlign(align lipgloss.Position) *Container {
	c.align = align
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithCrossAlign sets the cross-axis alignment.
func (c *Container) WithCrossAlign(align CrossAxisAlignment) *Container {
	c.layout.WithCrossAlign(align)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}
