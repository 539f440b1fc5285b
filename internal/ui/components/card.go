package components

import (
	"github.com/komplai/designsystem/internal/ui"
)

// Card is a rounded, filled container. It's a semantic component built on
// top of Container.
type Card struct {
	*Container
}

// NewCard creates a new card painted with fill.
func NewCard(fill RGBA, children ...ui.Renderable) *Card {
	container := NewContainer(children...).
		WithFill(fill).
		WithAppliers(
			Border(BorderVariantRounded),
			PaddingXY(SpacingSizeLarge, SpacingSizeLarge),
		)
	return &Card{Container: container}
}

// WithTitle prepends a title line to the card.
func (c *Card) WithTitle(title string, color RGBA) *Card {
	heading := TitleText(title).WithColor(color)

	children := make([]ui.Renderable, 0, len(c.Children())+1)
	children = append(children, heading)
	children = append(children, c.Children()...)
	c.layout = VStack(children...).WithGap(c.layout.gap).WithCrossAlign(c.layout.crossAlign)
	return c
}

// WithFooter adds a divider and a footer to the card.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.Add(NewDivider(), footer)
	return c
}

// AsContainer returns the underlying container for advanced customization.
func (c *Card) AsContainer() *Container {
	return c.Container
}
