package components

import "github.com/charmbracelet/lipgloss"

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
	color   RGBA
	wrap    bool
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme)
	if !ctx.Surface.IsZero() {
		// repaint the surface so the text does not punch through a parent fill
		style = style.Background(ctx.Surface.Lipgloss(ctx.Surface))
	}
	if !t.color.IsZero() {
		style = style.Foreground(t.color.Lipgloss(ctx.Surface))
	}
	if t.wrap {
		if width := ctx.Constraints.Width(); width > 0 && lipgloss.Width(t.content) > width {
			style = style.Width(width)
		}
	}
	return style.Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// WithColor sets the text colour. Translucent tokens are flattened onto
// the surface the text is rendered on.
func (t *Text) WithColor(color RGBA) *Text {
	t.color = color
	return t
}

// WithWrap makes the text wrap at the width of its constraints.
func (t *Text) WithWrap(wrap bool) *Text {
	t.wrap = wrap
	return t
}

// Theme-aware text constructor helpers

// DisplayText creates headline text.
func DisplayText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantDisplay))
}

// TitleText creates card title text.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// StrongText creates medium-weight text.
func StrongText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantStrong))
}

// LabelText creates upper-cased label text.
func LabelText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantLabel))
}
