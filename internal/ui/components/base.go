package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/komplai/designsystem/internal/ui"
)

// BaseComponent provides common functionality for all components.
// Embed this in component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a function that applies styling transformations to a lipgloss.Style
// using data from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the computed style for this component using the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// Decorate runs the component's style strategy over base. Composite
// components pass it to the containers they delegate to.
func (b *BaseComponent) Decorate(base lipgloss.Style, theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return base
	}
	return b.strategy.Apply(base, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends style appliers to the existing strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	})
}

// Constraints defines sizing constraints for layout calculations.
// A negative maximum means unlimited.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithWidth creates constraints with a fixed width.
func WithWidth(width int) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width, MaxHeight: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// WithMinHeight returns a copy of c with a minimum height.
func (c Constraints) WithMinHeight(height int) Constraints {
	c.MinHeight = height
	return c
}

// Width returns the width a component should fill, or 0 when it should
// size to its content.
func (c Constraints) Width() int {
	if c.MinWidth > 0 && c.MinWidth == c.MaxWidth {
		return c.MinWidth
	}
	if c.MaxWidth > 0 {
		return c.MaxWidth
	}
	return 0
}

// Fixed reports whether the constraints pin an exact width.
func (c Constraints) Fixed() bool {
	return c.MinWidth > 0 && c.MinWidth == c.MaxWidth
}

// RenderContext carries the theme, layout constraints and the surface the
// component is painted on. Components never read global theme state.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
	// Surface is the opaque colour underneath the component; translucent
	// tokens are flattened onto it.
	Surface RGBA
	// Profile is the colour capability used by widgets that bypass lipgloss.
	Profile termenv.Profile
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	theme := DefaultTheme()
	return RenderContext{
		Theme:       theme,
		Constraints: Unconstrained(),
		Surface:     theme.Palette.Canvas,
		Profile:     lipgloss.ColorProfile(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithSurface returns a new context painted over the given colour.
func (r RenderContext) WithSurface(surface RGBA) RenderContext {
	r.Surface = surface.Over(r.Surface)
	return r
}

// WithProfile returns a new context with the given colour profile.
func (r RenderContext) WithProfile(profile termenv.Profile) RenderContext {
	r.Profile = profile
	return r
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Render draws child with ctx when it accepts context, falling back to View.
func Render(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// CrossAxisAlignment specifies how children are aligned along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) toLipglossPosition() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
