package components

import (
	"strings"
)

// Spacer renders empty space. Vertical stacks use it for the section
// margins of the page layout.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer with the given dimensions.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: max(0, width), height: max(0, height)}
}

// VerticalSpacer creates a spacer that is only rows.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// BlockSpacer creates a vertical spacer sized by a spacing token.
func BlockSpacer(theme Theme, size SpacingSize) *Spacer {
	return VerticalSpacer(BlockValue(theme, size))
}

// View renders the spacer as empty space.
func (s *Spacer) View() string {
	if s.height == 0 {
		return strings.Repeat(" ", s.width)
	}
	lines := make([]string, s.height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", s.width)
	}
	return strings.Join(lines, "\n")
}

// Width returns the spacer width.
func (s *Spacer) Width() int {
	return s.width
}

// Height returns the spacer height.
func (s *Spacer) Height() int {
	return s.height
}
