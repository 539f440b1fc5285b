package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/komplai/designsystem/internal/ui"
)

// Grid lays children out in as many equal columns as fit the available
// width, each at least a minimum width, wrapping into further rows.
// Cells of a row are stretched to the height of the tallest one.
type Grid struct {
	BaseComponent
	children  []ui.Renderable
	minColumn int
	gap       int
	rowGap    int
}

// NewGrid creates a grid with the theme's column minimum and gaps.
func NewGrid(children ...ui.Renderable) *Grid {
	return &Grid{
		BaseComponent: NewBaseComponent(),
		children:      children,
		gap:           -1,
		rowGap:        -1,
	}
}

// GridColumns returns how many columns of at least minColumn cells, separated
// by gap, fit in width. The result is at least one and never more than count.
func GridColumns(width, minColumn, gap, count int) int {
	if count <= 0 {
		return 0
	}
	gap = max(0, gap)
	cols := 1
	if minColumn+gap > 0 && width > 0 {
		cols = max(1, (width+gap)/(minColumn+gap))
	}
	return min(cols, count)
}

// GridColumnWidth returns the width of each of cols columns sharing width.
func GridColumnWidth(width, cols, gap int) int {
	if cols <= 0 {
		return 0
	}
	return max(1, (width-max(0, gap)*(cols-1))/cols)
}

// View renders the grid.
func (g *Grid) View() string {
	return g.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the grid at the constraint width, or the theme's
// default width when unconstrained.
func (g *Grid) ViewWithContext(ctx RenderContext) string {
	children := g.visibleChildren()
	style := g.ComputeStyle(ctx.Theme)
	if len(children) == 0 {
		return style.Render("")
	}

	width := g.availableWidth(ctx)
	gap := g.columnGap(ctx.Theme)
	cols := GridColumns(width, g.minColumnWidth(ctx.Theme), gap, len(children))
	colWidth := GridColumnWidth(width, cols, gap)

	rows := make([]string, 0, (len(children)+cols-1)/cols)
	for start := 0; start < len(children); start += cols {
		end := min(start+cols, len(children))
		rows = append(rows, g.renderRow(ctx, children[start:end], colWidth, gap))
	}

	if rowGap := g.rowSpacing(ctx.Theme); rowGap > 0 {
		spacer := strings.Repeat("\n", rowGap-1)
		joined := make([]string, 0, len(rows)*2-1)
		for i, row := range rows {
			if i > 0 {
				joined = append(joined, spacer)
			}
			joined = append(joined, row)
		}
		rows = joined
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (g *Grid) renderRow(ctx RenderContext, cells []ui.Renderable, colWidth, gap int) string {
	cellCtx := ctx.WithConstraints(WithWidth(colWidth))

	views := make([]string, len(cells))
	height := 0
	for i, cell := range cells {
		views[i] = Render(cell, cellCtx)
		height = max(height, lipgloss.Height(views[i]))
	}

	// second pass stretches shorter cells so card borders line up
	stretched := cellCtx.WithConstraints(WithWidth(colWidth).WithMinHeight(height))
	for i, cell := range cells {
		if lipgloss.Height(views[i]) < height {
			views[i] = Render(cell, stretched)
		}
	}

	spacer := strings.Repeat(" ", gap)
	joined := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 && gap > 0 {
			joined = append(joined, spacer)
		}
		joined = append(joined, view)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joined...)
}

// Columns returns the column count the grid uses at width.
func (g *Grid) Columns(theme Theme, width int) int {
	return GridColumns(width, g.minColumnWidth(theme), g.columnGap(theme), len(g.visibleChildren()))
}

func (g *Grid) availableWidth(ctx RenderContext) int {
	if width := ctx.Constraints.Width(); width > 0 {
		return width
	}
	return ctx.Theme.Layout.DefaultWidth
}

func (g *Grid) minColumnWidth(theme Theme) int {
	if g.minColumn > 0 {
		return g.minColumn
	}
	return theme.Layout.GridMinColumn
}

func (g *Grid) columnGap(theme Theme) int {
	if g.gap >= 0 {
		return g.gap
	}
	return InlineValue(theme, SpacingSizeMedium)
}

func (g *Grid) rowSpacing(theme Theme) int {
	if g.rowGap >= 0 {
		return g.rowGap
	}
	return BlockValue(theme, SpacingSizeMedium)
}

func (g *Grid) visibleChildren() []ui.Renderable {
	visible := make([]ui.Renderable, 0, len(g.children))
	for _, child := range g.children {
		if child != nil {
			visible = append(visible, child)
		}
	}
	return visible
}

// WithMinColumn sets the minimum column width.
func (g *Grid) WithMinColumn(width int) *Grid {
	g.minColumn = width
	return g
}

// WithGap sets the column gap; a negative gap restores the theme default.
func (g *Grid) WithGap(gap int) *Grid {
	g.gap = gap
	return g
}

// WithRowGap sets the gap between rows; a negative gap restores the theme default.
func (g *Grid) WithRowGap(gap int) *Grid {
	g.rowGap = gap
	return g
}

// WithAppliers applies theme-based style modifiers.
func (g *Grid) WithAppliers(appliers ...StyleFunc) *Grid {
	g.AddAppliers(appliers...)
	return g
}

// Add appends children to the grid.
func (g *Grid) Add(children ...ui.Renderable) *Grid {
	g.children = append(g.children, children...)
	return g
}

// Children returns the child renderables.
func (g *Grid) Children() []ui.Renderable {
	return g.children
}
