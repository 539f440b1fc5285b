package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Percentage returns 100 * value / total. Degenerate input (a non-positive
// total, NaN or infinities) yields 0. The result is not clamped.
func Percentage(value, total float64) float64 {
	if total <= 0 || invalidNumber(value) || invalidNumber(total) {
		return 0
	}
	return 100 * value / total
}

// FillRatio returns the share of the track a bar fills, clamped to [0, 1].
func FillRatio(value, total float64) float64 {
	return math.Max(0, math.Min(1, Percentage(value, total)/100))
}

func invalidNumber(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// FormatPercentage renders a percentage the way the progress bar labels it.
func FormatPercentage(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}

// ProgressBar draws a solid bar over a light track, coloured by variant.
type ProgressBar struct {
	BaseComponent
	progress    Progress
	width       int
	showPercent bool
}

// NewProgressBar creates a bar for p.
func NewProgressBar(p Progress) *ProgressBar {
	return &ProgressBar{
		BaseComponent: NewBaseComponent(),
		progress:      p,
		showPercent:   true,
	}
}

// View renders the progress bar.
func (p *ProgressBar) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the optional label above the bar and the
// percentage beside it.
func (p *ProgressBar) ViewWithContext(ctx RenderContext) string {
	width := p.width
	if width <= 0 {
		width = ctx.Constraints.Width()
	}
	if width <= 0 {
		width = ctx.Theme.Layout.DefaultWidth / 2
	}

	suffix := ""
	if p.showPercent {
		suffix = " " + FormatPercentage(p.progress.Percentage())
	}
	barWidth := max(1, width-lipgloss.Width(suffix))

	bundle := ctx.Theme.ProgressStyle(p.progress.Variant)
	bar := progress.New(
		progress.WithSolidFill(bundle.Foreground.Over(ctx.Surface).Hex()),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
		progress.WithColorProfile(ctx.Profile),
	)
	bar.EmptyColor = bundle.Background.Over(ctx.Surface).Hex()

	line := bar.ViewAs(FillRatio(p.progress.Value, p.progress.Total))
	if suffix != "" {
		line += NewText(suffix).WithColor(ctx.Theme.Palette.Lede).ViewWithContext(ctx)
	}

	style := p.ComputeStyle(ctx.Theme)
	if p.progress.Label == "" {
		return style.Render(line)
	}
	label := StrongText(p.progress.Label).WithColor(ctx.Theme.Palette.White).ViewWithContext(ctx)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, label, line))
}

// WithWidth sets the total width of the bar line, percentage included.
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.width = width
	return p
}

// WithVariant overrides the colour variant.
func (p *ProgressBar) WithVariant(variant ProgressVariant) *ProgressBar {
	p.progress.Variant = variant
	return p
}

// WithLabel sets the line shown above the bar.
func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.progress.Label = label
	return p
}

// WithPercentage toggles the percentage beside the bar.
func (p *ProgressBar) WithPercentage(show bool) *ProgressBar {
	p.showPercent = show
	return p
}

// WithAppliers applies theme-based style modifiers.
func (p *ProgressBar) WithAppliers(appliers ...StyleFunc) *ProgressBar {
	p.AddAppliers(appliers...)
	return p
}

// Ratio returns the filled share of the track.
func (p *ProgressBar) Ratio() float64 {
	return FillRatio(p.progress.Value, p.progress.Total)
}

// Progress returns the bar input.
func (p *ProgressBar) Progress() Progress {
	return p.progress
}
