// Package components renders the Komplai design system in the terminal.
//
// # Overview
//
// Components are lipgloss-styled strings built from plain records (Task,
// Alert, Feature, Progress). They keep no state beyond their constructor
// arguments and render the same output for the same context.
//
// # Architecture
//
// The package has three layers:
//
//  1. Theme Layer - Immutable tokens: palette, spacing, typography, style tables
//  2. Modifier Layer - StyleFunc transformations that apply theme data to styles
//  3. Component Layer - Composable elements that render to strings
//
// # Style Resolution
//
// Category values map to a StyleBundle through fixed tables indexed by
// the category enum:
//
//	status := components.ParseTaskStatus("completed")
//	bundle := theme.StatusStyle(status)
//
// Unknown names never fail: statuses fall back to the neutral gray,
// alerts to the observation style and progress bars to the complete style.
//
// # Colour
//
// Tokens are RGBA. Terminals cannot blend, so translucent tokens are
// composited over the surface they sit on before rendering. Containers
// with a fill pass the flattened fill down as the new surface:
//
//	ctx := components.DefaultContext().WithConstraints(components.WithWidth(100))
//	out := components.NewAlertCard(alert).ViewWithContext(ctx)
//
// # Components
//
// Primitives and layout: Text, Spacer, Divider, Stack, Container, Card, Grid.
//
// Komplai components:
//   - Hero: eyebrow, headline, lede and call-to-action
//   - StatusCard and TaskItem: the close checklist
//   - AlertCard: risk, growth and observation notices
//   - ProgressBar: solid bar over a light track
//   - FeatureCard: light card with icon, title and description
//   - Dashboard: the full page
//
// # Layout
//
// Widths are terminal columns. Grid fits as many columns of at least
// Layout.GridMinColumn as the width allows and stretches the cells of a
// row to the same height.
package components
