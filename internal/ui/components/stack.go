package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/komplai/designsystem/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with a fixed gap.
type Stack struct {
	BaseComponent
	children   []ui.Renderable
	direction  Direction
	gap        int
	crossAlign CrossAxisAlignment
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		crossAlign:    CrossStart,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context. Children of a
// vertical stack share the parent's width; children of a horizontal stack
// split it evenly after gaps.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx.WithConstraints(s.childConstraints(ctx.Constraints))

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := Render(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return style.Render("")
	}

	if s.direction == DirectionHorizontal {
		return style.Render(s.joinHorizontal(views))
	}
	return style.Render(s.joinVertical(views))
}

func (s *Stack) childConstraints(parent Constraints) Constraints {
	child := parent
	if s.direction == DirectionVertical {
		if parent.Fixed() {
			// children may be narrower than a fixed-width vertical stack
			child.MinWidth = 0
		}
		return child
	}

	count := 0
	for _, c := range s.children {
		if c != nil {
			count++
		}
	}
	if width := parent.Width(); width > 0 && count > 0 {
		available := width - s.gap*(count-1)
		if available > 0 {
			child.MinWidth = 0
			child.MaxWidth = available / count
		}
	}
	return child
}

func (s *Stack) joinVertical(views []string) string {
	position := s.crossAlign.toLipglossPosition()
	if s.gap == 0 {
		return lipgloss.JoinVertical(position, views...)
	}

	spacer := strings.Repeat("\n", s.gap-1)
	joined := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			joined = append(joined, spacer)
		}
		joined = append(joined, view)
	}
	return lipgloss.JoinVertical(position, joined...)
}

func (s *Stack) joinHorizontal(views []string) string {
	position := s.crossAlign.toLipglossPosition()
	if s.gap == 0 {
		return lipgloss.JoinHorizontal(position, views...)
	}

	spacer := strings.Repeat(" ", s.gap)
	joined := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			joined = append(joined, spacer)
		}
		joined = append(joined, view)
	}
	return lipgloss.JoinHorizontal(position, joined...)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children, in rows for vertical stacks
// and columns for horizontal ones.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
