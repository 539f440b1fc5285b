package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/komplai/designsystem/internal/ui"
)

// DashboardContent is everything a dashboard page shows. Empty sections
// are left out.
type DashboardContent struct {
	Hero        HeroContent
	StatusTitle string
	Tasks       []Task
	Alerts      []Alert
	Features    []Feature
	Progress    []Progress
}

// Dashboard is the full page: hero, status card, alert grid and the
// optional feature grid and progress list, on the canvas colour.
type Dashboard struct {
	BaseComponent
	content   DashboardContent
	highlight int
}

// NewDashboard creates a page for content.
func NewDashboard(content DashboardContent) *Dashboard {
	dashboard := &Dashboard{
		BaseComponent: NewBaseComponent(),
		content:       content,
		highlight:     -1,
	}
	dashboard.SetAppliers(PaddingXY(SpacingSizeDoubleExtraLarge, SpacingSizeLarge))
	return dashboard
}

// View renders the dashboard.
func (d *Dashboard) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the page across the constraint width. The
// content column is capped at the theme's maximum width and centred.
func (d *Dashboard) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	canvas := theme.Palette.Canvas

	width := ctx.Constraints.Width()
	if width <= 0 {
		width = theme.Layout.DefaultWidth
	}

	style := d.ComputeStyle(theme).Background(canvas.Lipgloss(ctx.Surface))
	style = style.Width(max(1, width-style.GetHorizontalBorderSize()-style.GetHorizontalMargins()))
	inner := max(1, width-style.GetHorizontalFrameSize())
	column := min(inner, theme.Layout.MaxWidth)

	pageCtx := ctx.WithSurface(canvas)
	body := VStack(d.sections(theme)...).ViewWithContext(pageCtx.WithConstraints(WithWidth(column)))
	if column < inner {
		body = lipgloss.PlaceHorizontal(inner, lipgloss.Center, body,
			lipgloss.WithWhitespaceBackground(canvas.Lipgloss(ctx.Surface)))
	}
	return style.Render(body)
}

func (d *Dashboard) sections(theme Theme) []ui.Renderable {
	var sections []ui.Renderable
	add := func(gap SpacingSize, section ui.Renderable) {
		if len(sections) > 0 {
			sections = append(sections, BlockSpacer(theme, gap))
		}
		sections = append(sections, section)
	}

	if d.content.Hero != (HeroContent{}) {
		add(SpacingSizeNone, NewHero(d.content.Hero))
	}
	if d.content.StatusTitle != "" || len(d.content.Tasks) > 0 {
		add(SpacingSizeDoubleExtraLarge, d.statusCard())
	}
	if len(d.content.Alerts) > 0 {
		grid := NewGrid()
		for _, alert := range d.content.Alerts {
			grid.Add(NewAlertCard(alert))
		}
		add(SpacingSizeLarge, grid)
	}
	if len(d.content.Features) > 0 {
		grid := NewGrid()
		for _, feature := range d.content.Features {
			grid.Add(NewFeatureCard(feature))
		}
		add(SpacingSizeLarge, grid)
	}
	if len(d.content.Progress) > 0 {
		bars := VStack().WithGap(BlockValue(theme, SpacingSizeSmall))
		for _, p := range d.content.Progress {
			bars.Add(NewProgressBar(p))
		}
		add(SpacingSizeLarge, bars)
	}
	return sections
}

func (d *Dashboard) statusCard() *StatusCard {
	return NewStatusCard(d.content.StatusTitle, d.content.Tasks).WithHighlight(d.highlight)
}

// HighlightTask highlights the task row at index; an out-of-range index
// clears the highlight.
func (d *Dashboard) HighlightTask(index int) *Dashboard {
	if index < 0 || index >= len(d.content.Tasks) {
		index = -1
	}
	d.highlight = index
	return d
}

// HighlightedTask returns the highlighted task index, or -1.
func (d *Dashboard) HighlightedTask() int {
	return d.highlight
}

// WithAppliers applies theme-based style modifiers to the page.
func (d *Dashboard) WithAppliers(appliers ...StyleFunc) *Dashboard {
	d.AddAppliers(appliers...)
	return d
}

// Stats counts the dashboard's tasks by status.
func (d *Dashboard) Stats() StatusSummary {
	return Summarize(d.content.Tasks)
}

// Content returns the page content.
func (d *Dashboard) Content() DashboardContent {
	return d.content
}
