package components

import "strings"

// AlertCard is a tinted card for a risk, growth or observation notice.
type AlertCard struct {
	BaseComponent
	alert Alert
}

// NewAlertCard creates a card for alert.
func NewAlertCard(alert Alert) *AlertCard {
	return &AlertCard{
		BaseComponent: NewBaseComponent(),
		alert:         alert,
	}
}

// View renders the alert card.
func (a *AlertCard) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card. The tint and border are flattened onto
// the surface the card sits on.
func (a *AlertCard) ViewWithContext(ctx RenderContext) string {
	bundle := ctx.Theme.AlertStyle(a.alert.Type)

	title := LabelText(strings.ToUpper(a.alert.Title)).WithColor(bundle.Foreground)
	message := NewText(a.alert.Message).WithColor(bundle.Foreground).WithWrap(true)

	container := NewContainer(title, message).
		WithFill(bundle.Background).
		WithBorderColor(bundle.Border).
		WithGap(BlockValue(ctx.Theme, SpacingSizeExtraSmall)).
		WithAppliers(
			Border(BorderVariantRounded),
			Padding(SpacingSizeMedium),
		)
	container.AddAppliers(a.Decorate)

	return container.ViewWithContext(ctx)
}

// WithAppliers applies theme-based style modifiers to the card frame.
func (a *AlertCard) WithAppliers(appliers ...StyleFunc) *AlertCard {
	a.AddAppliers(appliers...)
	return a
}

// Alert returns the rendered alert.
func (a *AlertCard) Alert() Alert {
	return a.alert
}

// RiskAlert creates a risk card.
func RiskAlert(title, message string) *AlertCard {
	return NewAlertCard(Alert{Type: AlertRisk, Title: title, Message: message})
}

// GrowthAlert creates a growth card.
func GrowthAlert(title, message string) *AlertCard {
	return NewAlertCard(Alert{Type: AlertGrowth, Title: title, Message: message})
}

// ObservationAlert creates an observation card.
func ObservationAlert(title, message string) *AlertCard {
	return NewAlertCard(Alert{Type: AlertObservation, Title: title, Message: message})
}
