package components

// Task is one row of a status card.
type Task struct {
	Title    string
	Status   TaskStatus
	Progress string // free-form, e.g. "25/25 Done"
	Assignee string // initials
}

// Alert is the content of an alert card.
type Alert struct {
	Type    AlertType
	Title   string
	Message string
}

// Feature is the content of a feature card.
type Feature struct {
	Title       string
	Description string
	Icon        string
}

// Progress is the input of a progress bar.
type Progress struct {
	Label   string
	Value   float64
	Total   float64
	Variant ProgressVariant
}

// Percentage returns the completion ratio of p as a percentage.
func (p Progress) Percentage() float64 {
	return Percentage(p.Value, p.Total)
}

// HeroContent is the copy of the page header.
type HeroContent struct {
	Eyebrow  string
	Headline string
	Lede     string
	CTA      string
}

// DefaultCTA is the call-to-action label of the hero when none is given.
const DefaultCTA = "Get Started Now →"
