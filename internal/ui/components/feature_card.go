package components

import (
	"github.com/komplai/designsystem/internal/ui"
)

// FeatureCard is a light card with an icon, a title and a description.
type FeatureCard struct {
	BaseComponent
	feature     Feature
	highlighted bool
}

// NewFeatureCard creates a card for feature.
func NewFeatureCard(feature Feature) *FeatureCard {
	card := &FeatureCard{
		BaseComponent: NewBaseComponent(),
		feature:       feature,
	}
	card.SetAppliers(
		Border(BorderVariantRounded),
		PaddingXY(SpacingSizeExtraLarge, SpacingSizeExtraLarge),
	)
	return card
}

// View renders the card.
func (f *FeatureCard) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card at the constraint width.
func (f *FeatureCard) ViewWithContext(ctx RenderContext) string {
	palette := ctx.Theme.Palette

	children := make([]ui.Renderable, 0, 4)
	if f.feature.Icon != "" {
		children = append(children, NewText(f.feature.Icon), BlockSpacer(ctx.Theme, SpacingSizeExtraSmall))
	}
	children = append(children,
		TitleText(f.feature.Title).WithColor(palette.Ink).WithWrap(true),
		NewText(f.feature.Description).WithColor(palette.Gray).WithWrap(true),
	)

	border := palette.Mist
	if f.highlighted {
		border = palette.Accent
	}

	container := NewContainer(children...).
		WithFill(palette.White).
		WithBorderColor(border).
		WithGap(BlockValue(ctx.Theme, SpacingSizeSmall))
	container.SetAppliers(f.Decorate)
	return container.ViewWithContext(ctx)
}

// WithHighlight outlines the card in the accent colour.
func (f *FeatureCard) WithHighlight(highlighted bool) *FeatureCard {
	f.highlighted = highlighted
	return f
}

// WithAppliers applies theme-based style modifiers.
func (f *FeatureCard) WithAppliers(appliers ...StyleFunc) *FeatureCard {
	f.AddAppliers(appliers...)
	return f
}

// Feature returns the rendered feature.
func (f *FeatureCard) Feature() Feature {
	return f.feature
}
