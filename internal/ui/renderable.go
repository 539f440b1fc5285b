// Package ui holds the rendering contract shared by component packages.
package ui

// Renderable is anything that can draw itself as terminal text.
type Renderable interface {
	View() string
}
