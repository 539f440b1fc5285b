package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the Komplai colour tokens.
type Palette struct {
	Canvas RGBA // page background, deep forest
	Brand  RGBA // call-to-action fill
	Accent RGBA // signal green
	Moss   RGBA // status card surface
	Cream  RGBA // pending highlight
	Ink    RGBA // dark text and chips
	Gray   RGBA // neutral text and inactive states
	Mist   RGBA // light borders and progress tracks
	White  RGBA
	Coral  RGBA // risk
	Amber  RGBA // partial progress

	RowFill    RGBA // translucent row on a dark card
	RowHover   RGBA // the same row while highlighted
	ChipBorder RGBA // ring around initials chips
	Lede       RGBA // body copy on the canvas
}

// PaletteSlot selects a token from a Palette.
type PaletteSlot func(Palette) RGBA

// Predefined palette slots for use with style modifiers.
var (
	PaletteCanvas PaletteSlot = func(p Palette) RGBA { return p.Canvas }
	PaletteBrand  PaletteSlot = func(p Palette) RGBA { return p.Brand }
	PaletteAccent PaletteSlot = func(p Palette) RGBA { return p.Accent }
	PaletteMoss   PaletteSlot = func(p Palette) RGBA { return p.Moss }
	PaletteCream  PaletteSlot = func(p Palette) RGBA { return p.Cream }
	PaletteInk    PaletteSlot = func(p Palette) RGBA { return p.Ink }
	PaletteGray   PaletteSlot = func(p Palette) RGBA { return p.Gray }
	PaletteMist   PaletteSlot = func(p Palette) RGBA { return p.Mist }
	PaletteWhite  PaletteSlot = func(p Palette) RGBA { return p.White }
	PaletteCoral  PaletteSlot = func(p Palette) RGBA { return p.Coral }
	PaletteAmber  PaletteSlot = func(p Palette) RGBA { return p.Amber }
)

// SpacingSize enumerates spacing tokens. The comment on each names the
// web value it stands for.
type SpacingSize int

const (
	SpacingSizeNone             SpacingSize = iota
	SpacingSizeExtraSmall                   // 8px
	SpacingSizeSmall                        // 12px
	SpacingSizeMedium                       // 16px
	SpacingSizeLarge                        // 24px
	SpacingSizeExtraLarge                   // 32px
	SpacingSizeDoubleExtraLarge             // 48px
	SpacingSizeTripleExtraLarge             // 64px
	SpacingSizeQuadExtraLarge               // 96px
)

const spacingSizeCount = int(SpacingSizeQuadExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores spacing scales in terminal units. Inline values are
// columns (about 8px each), block values are rows (about 16px each).
type SpacingConfig struct {
	Inline spacingTable
	Block  spacingTable
}

// TypographyVariant represents a typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantDisplay
	TypographyVariantTitle
	TypographyVariantHeading
	TypographyVariantStrong
	TypographyVariantLabel
	TypographyVariantCaption
)

// TypographyScale contains the typography presets. Presets carry weight
// and case only; colour comes from the component's style bundle.
type TypographyScale struct {
	Body    lipgloss.Style
	Display lipgloss.Style
	Title   lipgloss.Style
	Heading lipgloss.Style
	Strong  lipgloss.Style
	Label   lipgloss.Style
	Caption lipgloss.Style
}

// BorderVariant selects a border from the theme.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// ButtonVariant selects a button treatment.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantAccent
	ButtonVariantGhost
)

// LayoutMetrics holds the fixed measurements of the page grid, in columns.
type LayoutMetrics struct {
	MaxWidth      int // 1200px content column
	ProseWidth    int // 900px lede
	GridMinColumn int // 300px minimum alert column
	DefaultWidth  int // used when nothing constrains the page
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[any]StyleStrategy),
	}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable set of design tokens. Modifications return new
// values; the variant registry is rebuilt rather than shared when the
// palette changes.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Layout     LayoutMetrics
	Styles     StyleTables
	Variants   *VariantRegistry
}

// Normalize returns a theme with any zero-valued sections filled from the
// defaults, so partially specified themes still render.
func (t Theme) Normalize() Theme {
	if spacingTableIsZero(t.Spacing.Inline) {
		t.Spacing.Inline = defaultInlineSpacing()
	}
	if spacingTableIsZero(t.Spacing.Block) {
		t.Spacing.Block = defaultBlockSpacing()
	}
	if t.Layout == (LayoutMetrics{}) {
		t.Layout = defaultLayout()
	}
	if t.Styles.isZero() {
		t.Styles = defaultStyleTables(t.Palette)
	}
	if t.Variants == nil {
		t.Variants = NewVariantRegistry()
		registerButtonVariants(t.Variants)
	}
	return t
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultInlineSpacing() spacingTable {
	return spacingTable{
		SpacingSizeNone:             0,
		SpacingSizeExtraSmall:       1,
		SpacingSizeSmall:            2,
		SpacingSizeMedium:           2,
		SpacingSizeLarge:            3,
		SpacingSizeExtraLarge:       4,
		SpacingSizeDoubleExtraLarge: 6,
		SpacingSizeTripleExtraLarge: 8,
		SpacingSizeQuadExtraLarge:   12,
	}
}

func defaultBlockSpacing() spacingTable {
	return spacingTable{
		SpacingSizeNone:             0,
		SpacingSizeExtraSmall:       0,
		SpacingSizeSmall:            1,
		SpacingSizeMedium:           1,
		SpacingSizeLarge:            1,
		SpacingSizeExtraLarge:       2,
		SpacingSizeDoubleExtraLarge: 2,
		SpacingSizeTripleExtraLarge: 3,
		SpacingSizeQuadExtraLarge:   4,
	}
}

func defaultLayout() LayoutMetrics {
	return LayoutMetrics{
		MaxWidth:      150,
		ProseWidth:    112,
		GridMinColumn: 38,
		DefaultWidth:  100,
	}
}

func defaultPalette() Palette {
	return Palette{
		Canvas: RGB(2, 31, 14),
		Brand:  RGB(22, 84, 46),
		Accent: RGB(69, 209, 99),
		Moss:   RGB(58, 99, 81),
		Cream:  RGB(255, 238, 189),
		Ink:    RGB(34, 34, 34),
		Gray:   RGB(102, 102, 102),
		Mist:   RGB(235, 235, 235),
		White:  RGB(255, 255, 255),
		Coral:  RGB(255, 100, 100),
		Amber:  RGB(255, 165, 0),

		RowFill:    RGBAlpha(255, 255, 255, 0.1),
		RowHover:   RGBAlpha(255, 255, 255, 0.18),
		ChipBorder: RGBAlpha(255, 255, 255, 0.2),
		Lede:       RGBAlpha(255, 255, 255, 0.9),
	}
}

// DefaultTheme returns the Komplai theme.
func DefaultTheme() Theme {
	palette := defaultPalette()

	theme := Theme{
		Palette: palette,
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
		Spacing: SpacingConfig{
			Inline: defaultInlineSpacing(),
			Block:  defaultBlockSpacing(),
		},
		Typography: defaultTypography(),
		Layout:     defaultLayout(),
		Styles:     defaultStyleTables(palette),
	}

	return theme.Normalize()
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(
		Background(PaletteBrand),
		Foreground(PaletteWhite),
		PaddingX(SpacingSizeLarge),
		Typography(TypographyVariantStrong),
	))
	registry.Register(ButtonVariantAccent, NewCompositeStrategy(
		Background(PaletteAccent),
		Foreground(PaletteInk),
		PaddingX(SpacingSizeLarge),
		Typography(TypographyVariantStrong),
	))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(
		Foreground(PaletteWhite),
		Border(BorderVariantRounded),
		BorderColor(PaletteAccent),
		PaddingX(SpacingSizeMedium),
	))
}

func defaultTypography() TypographyScale {
	base := lipgloss.NewStyle()

	return TypographyScale{
		Body:    base,
		Display: base.Bold(true),
		Title:   base.Bold(true),
		Heading: base.Bold(true),
		Strong:  base.Bold(true),
		Label:   base.Bold(true).Transform(strings.ToUpper),
		Caption: base,
	}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	default:
		return theme.Borders.None
	}
}

// InlineValue returns the column count for a spacing token.
func InlineValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Inline, size)
}

// BlockValue returns the row count for a spacing token.
func BlockValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Block, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantDisplay:
		return typo.Display
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantHeading:
		return typo.Heading
	case TypographyVariantStrong:
		return typo.Strong
	case TypographyVariantLabel:
		return typo.Label
	case TypographyVariantCaption:
		return typo.Caption
	default:
		return typo.Body
	}
}

// Style modifiers. Palette tokens are flattened onto the canvas; use
// Fill on a Container when a component sits on another surface.

// Background applies a palette token as the background colour.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Background(slot(theme.Palette).Lipgloss(theme.Palette.Canvas))
	}
}

// Foreground applies a palette token as the text colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Lipgloss(theme.Palette.Canvas))
	}
}

// BorderColor applies a palette token to every border edge.
func BorderColor(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Lipgloss(theme.Palette.Canvas))
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if variant == BorderVariantNone {
			return base
		}
		return base.Border(BorderForVariant(theme, variant))
	}
}

// Padding applies the same token on every side.
func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(BlockValue(theme, size), InlineValue(theme, size))
	}
}

// PaddingXY applies separate block and inline tokens, like "16px 24px".
func PaddingXY(block, inline SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(BlockValue(theme, block), InlineValue(theme, inline))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := InlineValue(theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// Typography applies typography styling.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
