package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA is a design token colour. A is the opacity in [0, 1].
//
// Terminals cannot blend, so translucent tokens are flattened onto the
// surface they are painted over before they reach lipgloss.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// RGB returns an opaque token.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// RGBAlpha returns a token with the given opacity.
func RGBAlpha(r, g, b uint8, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// IsZero reports whether the token is unset.
func (c RGBA) IsZero() bool {
	return c == RGBA{}
}

// Opaque reports whether the token needs no compositing.
func (c RGBA) Opaque() bool {
	return c.A >= 1
}

// String formats the token in CSS notation.
func (c RGBA) String() string {
	if c.Opaque() {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

// Over flattens c onto an opaque backdrop.
func (c RGBA) Over(backdrop RGBA) RGBA {
	alpha := c.A
	if math.IsNaN(alpha) || alpha < 0 {
		alpha = 0
	}
	if alpha >= 1 {
		return RGB(c.R, c.G, c.B)
	}

	mixed := backdrop.toColorful().BlendRgb(c.toColorful(), alpha)
	r, g, b := mixed.Clamped().RGB255()
	return RGB(r, g, b)
}

// Hex returns the #rrggbb form of the colour channels, ignoring opacity.
func (c RGBA) Hex() string {
	return c.toColorful().Hex()
}

// Lipgloss resolves the token against backdrop for terminal output.
func (c RGBA) Lipgloss(backdrop RGBA) lipgloss.Color {
	return lipgloss.Color(c.Over(backdrop).Hex())
}

func (c RGBA) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
