package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Hero is the centred page header: eyebrow, headline, lede and a
// call-to-action button.
type Hero struct {
	BaseComponent
	content HeroContent
}

// NewHero creates a hero for content. An empty CTA label falls back to
// DefaultCTA.
func NewHero(content HeroContent) *Hero {
	if content.CTA == "" {
		content.CTA = DefaultCTA
	}
	hero := &Hero{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
	hero.SetAppliers(PaddingXY(SpacingSizeTripleExtraLarge, SpacingSizeLarge))
	return hero
}

// View renders the hero.
func (h *Hero) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the hero centred in the constraint width.
func (h *Hero) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	style := h.ComputeStyle(theme).Align(lipgloss.Center)

	width := ctx.Constraints.Width()
	if width > 0 {
		style = style.Width(width - style.GetHorizontalBorderSize() - style.GetHorizontalMargins())
	}
	inner := 0
	if width > 0 {
		inner = max(1, width-style.GetHorizontalFrameSize())
	}

	centred := lipgloss.NewStyle().Align(lipgloss.Center)
	bounded := func(limit int) RenderContext {
		if inner > 0 {
			limit = min(limit, inner)
		}
		return ctx.WithConstraints(WithMaxWidth(limit))
	}

	parts := make([]string, 0, 7)
	if h.content.Eyebrow != "" {
		parts = append(parts, h.eyebrow(ctx), BlockSpacer(theme, SpacingSizeLarge).View())
	}
	if h.content.Headline != "" {
		headline := DisplayText(h.content.Headline).
			WithStyle(centred).
			WithColor(theme.Palette.White).
			WithWrap(true)
		parts = append(parts, headline.ViewWithContext(bounded(theme.Layout.MaxWidth)), BlockSpacer(theme, SpacingSizeLarge).View())
	}
	if h.content.Lede != "" {
		lede := NewText(h.content.Lede).
			WithStyle(centred).
			WithColor(theme.Palette.Lede).
			WithWrap(true)
		parts = append(parts, lede.ViewWithContext(bounded(theme.Layout.ProseWidth)), BlockSpacer(theme, SpacingSizeExtraLarge).View())
	}
	parts = append(parts, PrimaryButton(h.content.CTA).ViewWithContext(ctx))

	if !ctx.Surface.IsZero() {
		style = style.Background(ctx.Surface.Lipgloss(ctx.Surface))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
}

func (h *Hero) eyebrow(ctx RenderContext) string {
	dot := NewText("●").WithColor(ctx.Theme.Palette.Accent).ViewWithContext(ctx)
	label := StrongText(h.content.Eyebrow).WithColor(ctx.Theme.Palette.White).ViewWithContext(ctx)
	gap := NewText(" ").ViewWithContext(ctx)
	return lipgloss.JoinHorizontal(lipgloss.Center, dot, gap, label)
}

// WithAppliers applies theme-based style modifiers.
func (h *Hero) WithAppliers(appliers ...StyleFunc) *Hero {
	h.AddAppliers(appliers...)
	return h
}

// Content returns the hero copy.
func (h *Hero) Content() HeroContent {
	return h.content
}
