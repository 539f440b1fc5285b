package components

import "github.com/charmbracelet/lipgloss"

// StyleBundle is the set of colours a category paints with.
type StyleBundle struct {
	Foreground RGBA
	Background RGBA
	Border     RGBA
}

// IsZero reports whether no colour in the bundle is set.
func (b StyleBundle) IsZero() bool {
	return b.Foreground.IsZero() && b.Background.IsZero() && b.Border.IsZero()
}

// Apply paints the bundle onto base, flattening translucent colours onto surface.
func (b StyleBundle) Apply(base lipgloss.Style, surface RGBA) lipgloss.Style {
	if !b.Foreground.IsZero() {
		base = base.Foreground(b.Foreground.Lipgloss(surface))
	}
	if !b.Background.IsZero() {
		base = base.Background(b.Background.Lipgloss(surface))
	}
	if !b.Border.IsZero() {
		base = base.BorderForeground(b.Border.Lipgloss(surface))
	}
	return base
}

// TaskStatus is the state of a task row. The zero value is the fallback.
type TaskStatus int

const (
	TaskStatusOther TaskStatus = iota
	TaskStatusCompleted
	TaskStatusPending

	taskStatusCount
)

var taskStatusNames = [taskStatusCount]string{
	TaskStatusOther:     "other",
	TaskStatusCompleted: "completed",
	TaskStatusPending:   "pending",
}

func (s TaskStatus) String() string {
	if s < 0 || s >= taskStatusCount {
		return taskStatusNames[TaskStatusOther]
	}
	return taskStatusNames[s]
}

// LookupTaskStatus maps a status name to its variant. Matching is exact.
func LookupTaskStatus(name string) (TaskStatus, bool) {
	switch name {
	case "completed":
		return TaskStatusCompleted, true
	case "pending":
		return TaskStatusPending, true
	default:
		return TaskStatusOther, false
	}
}

// ParseTaskStatus maps any string to a status; unknown names become TaskStatusOther.
func ParseTaskStatus(name string) TaskStatus {
	status, _ := LookupTaskStatus(name)
	return status
}

// AlertType is the category of an alert card. The zero value is the fallback.
type AlertType int

const (
	AlertObservation AlertType = iota
	AlertRisk
	AlertGrowth

	alertTypeCount
)

var alertTypeNames = [alertTypeCount]string{
	AlertObservation: "observation",
	AlertRisk:        "risk",
	AlertGrowth:      "growth",
}

func (a AlertType) String() string {
	if a < 0 || a >= alertTypeCount {
		return alertTypeNames[AlertObservation]
	}
	return alertTypeNames[a]
}

// LookupAlertType maps an alert type name to its variant. Matching is exact.
func LookupAlertType(name string) (AlertType, bool) {
	switch name {
	case "risk":
		return AlertRisk, true
	case "growth":
		return AlertGrowth, true
	case "observation":
		return AlertObservation, true
	default:
		return AlertObservation, false
	}
}

// ParseAlertType maps any string to an alert type; unknown names become AlertObservation.
func ParseAlertType(name string) AlertType {
	alert, _ := LookupAlertType(name)
	return alert
}

// ProgressVariant selects the fill colour of a progress bar. The zero
// value, complete, is both the default and the fallback.
type ProgressVariant int

const (
	ProgressComplete ProgressVariant = iota
	ProgressPartial
	ProgressInactive

	progressVariantCount
)

var progressVariantNames = [progressVariantCount]string{
	ProgressComplete: "complete",
	ProgressPartial:  "partial",
	ProgressInactive: "inactive",
}

func (v ProgressVariant) String() string {
	if v < 0 || v >= progressVariantCount {
		return progressVariantNames[ProgressComplete]
	}
	return progressVariantNames[v]
}

// LookupProgressVariant maps a variant name to its variant. Matching is exact.
func LookupProgressVariant(name string) (ProgressVariant, bool) {
	switch name {
	case "complete":
		return ProgressComplete, true
	case "partial":
		return ProgressPartial, true
	case "inactive":
		return ProgressInactive, true
	default:
		return ProgressComplete, false
	}
}

// ParseProgressVariant maps any string to a variant; empty or unknown names
// become ProgressComplete.
func ParseProgressVariant(name string) ProgressVariant {
	variant, _ := LookupProgressVariant(name)
	return variant
}

// StyleTables holds one bundle per variant. The arrays are sized by the
// variant count, so every variant has a slot.
type StyleTables struct {
	Status   [taskStatusCount]StyleBundle
	Alert    [alertTypeCount]StyleBundle
	Progress [progressVariantCount]StyleBundle
}

func (t StyleTables) isZero() bool {
	return t == StyleTables{}
}

func defaultStyleTables(p Palette) StyleTables {
	return StyleTables{
		Status: [taskStatusCount]StyleBundle{
			TaskStatusCompleted: {Foreground: p.White, Background: p.Accent, Border: p.Accent},
			TaskStatusPending:   {Foreground: p.Ink, Background: p.Cream, Border: p.Cream},
			TaskStatusOther:     {Foreground: p.White, Background: p.Gray, Border: p.Gray},
		},
		Alert: [alertTypeCount]StyleBundle{
			AlertRisk: {
				Foreground: p.Coral,
				Background: RGBAlpha(p.Coral.R, p.Coral.G, p.Coral.B, 0.1),
				Border:     RGBAlpha(p.Coral.R, p.Coral.G, p.Coral.B, 0.3),
			},
			AlertGrowth: {
				Foreground: p.Accent,
				Background: RGBAlpha(p.Accent.R, p.Accent.G, p.Accent.B, 0.1),
				Border:     RGBAlpha(p.Accent.R, p.Accent.G, p.Accent.B, 0.3),
			},
			AlertObservation: {
				Foreground: p.White,
				Background: RGBAlpha(p.White.R, p.White.G, p.White.B, 0.05),
				Border:     RGBAlpha(p.White.R, p.White.G, p.White.B, 0.2),
			},
		},
		Progress: [progressVariantCount]StyleBundle{
			ProgressComplete: {Foreground: p.Accent, Background: p.Mist, Border: p.Accent},
			ProgressPartial:  {Foreground: p.Amber, Background: p.Mist, Border: p.Amber},
			ProgressInactive: {Foreground: p.Gray, Background: p.Mist, Border: p.Gray},
		},
	}
}

// StatusStyle resolves the bundle for a task status. Out-of-range values
// resolve to the neutral gray of TaskStatusOther.
func (t Theme) StatusStyle(status TaskStatus) StyleBundle {
	if status < 0 || status >= taskStatusCount {
		status = TaskStatusOther
	}
	return t.Styles.Status[status]
}

// AlertStyle resolves the bundle for an alert type. Out-of-range values
// resolve to the observation bundle.
func (t Theme) AlertStyle(alert AlertType) StyleBundle {
	if alert < 0 || alert >= alertTypeCount {
		alert = AlertObservation
	}
	return t.Styles.Alert[alert]
}

// ProgressStyle resolves the bundle for a progress variant. Out-of-range
// values resolve to the complete bundle.
func (t Theme) ProgressStyle(variant ProgressVariant) StyleBundle {
	if variant < 0 || variant >= progressVariantCount {
		variant = ProgressComplete
	}
	return t.Styles.Progress[variant]
}

// StatusStyleFor resolves a bundle straight from a status name.
func (t Theme) StatusStyleFor(name string) StyleBundle {
	return t.StatusStyle(ParseTaskStatus(name))
}

// AlertStyleFor resolves a bundle straight from an alert type name.
func (t Theme) AlertStyleFor(name string) StyleBundle {
	return t.AlertStyle(ParseAlertType(name))
}

// ProgressStyleFor resolves a bundle straight from a variant name.
func (t Theme) ProgressStyleFor(name string) StyleBundle {
	return t.ProgressStyle(ParseProgressVariant(name))
}
