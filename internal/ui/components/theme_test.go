package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFillsZeroTheme(t *testing.T) {
	t.Parallel()

	theme := Theme{Palette: DefaultTheme().Palette}.Normalize()

	require.NotNil(t, theme.Variants)
	assert.Equal(t, 150, theme.Layout.MaxWidth)
	assert.Equal(t, 2, InlineValue(theme, SpacingSizeMedium))
	assert.Equal(t, 1, BlockValue(theme, SpacingSizeMedium))
	assert.Equal(t, DefaultTheme().Styles, theme.Styles)
}

func TestNormalizeKeepsCustomValues(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	theme.Layout.MaxWidth = 90
	theme.Styles.Alert[AlertRisk].Foreground = RGB(1, 2, 3)

	normalized := theme.Normalize()

	assert.Equal(t, 90, normalized.Layout.MaxWidth)
	assert.Equal(t, RGB(1, 2, 3), normalized.AlertStyle(AlertRisk).Foreground)
}

func TestSpacingLookupOutOfRange(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Equal(t, InlineValue(theme, SpacingSizeMedium), InlineValue(theme, SpacingSize(99)))
	assert.Equal(t, 12, InlineValue(theme, SpacingSizeQuadExtraLarge))
	assert.Zero(t, BlockValue(theme, SpacingSizeExtraSmall))
}

func TestLabelTypographyUpperCases(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "RISK", LabelText("risk").ViewWithContext(plainContext(0)))
}

func TestStackGap(t *testing.T) {
	t.Parallel()

	vertical := VStack(NewText("a"), NewText("b")).WithGap(2).ViewWithContext(plainContext(0))
	assert.Equal(t, []string{"a", " ", " ", "b"}, strings.Split(vertical, "\n"))

	horizontal := HStack(NewText("a"), NewText("b")).WithGap(3).ViewWithContext(plainContext(0))
	assert.Equal(t, "a   b", horizontal)
}

func TestContainerFillsConstraintWidth(t *testing.T) {
	t.Parallel()

	view := NewContainer(NewText("hi")).
		WithAppliers(Border(BorderVariantRounded), Padding(SpacingSizeMedium)).
		ViewWithContext(plainContext(30))

	assert.Equal(t, 30, lipgloss.Width(view))
	// border, one padding row each side, one content row
	assert.Equal(t, 5, lipgloss.Height(view))
}

func TestCardTitleAndFooter(t *testing.T) {
	t.Parallel()

	card := NewCard(DefaultTheme().Palette.Moss, NewText("body")).
		WithTitle("Heading", DefaultTheme().Palette.White).
		WithFooter(NewText("footer"))

	view := card.ViewWithContext(plainContext(40))

	heading := strings.Index(view, "Heading")
	body := strings.Index(view, "body")
	footer := strings.Index(view, "footer")
	assert.Less(t, heading, body)
	assert.Less(t, body, footer)
	assert.Contains(t, view, "───")
	assert.Len(t, card.AsContainer().Children(), 4)
}

func TestSpacerAndDivider(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "  \n  ", NewSpacer(2, 2).View())
	assert.Equal(t, 2, BlockSpacer(DefaultTheme(), SpacingSizeExtraLarge).Height())
	assert.Equal(t, "====", NewDivider().WithChar("=").WithWidth(4).ViewWithContext(plainContext(0)))
	assert.Equal(t, 12, lipgloss.Width(NewDivider().ViewWithContext(plainContext(12))))
}
