// Package dashboard turns dashboard documents into page content.
package dashboard

import (
	_ "embed"
	"fmt"

	"github.com/komplai/designsystem/internal/config"
	"github.com/komplai/designsystem/internal/logger"
	"github.com/komplai/designsystem/internal/ui/components"
)

//go:embed default.yaml
var defaultDocument []byte

// DefaultSource names the built-in document in logs and errors.
const DefaultSource = "builtin:default.yaml"

// DefaultDocument returns the built-in example dashboard.
func DefaultDocument() (*config.Document, error) {
	return config.Parse(defaultDocument, DefaultSource)
}

// Load reads the document at path, or the built-in example when path is empty.
func Load(path string, log *logger.Logger) (*config.Document, error) {
	var (
		doc *config.Document
		err error
	)
	if path == "" {
		doc, err = DefaultDocument()
		path = DefaultSource
	} else {
		doc, err = config.ParseConfig(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	log.WithFields(map[string]any{
		"source":   path,
		"tasks":    len(doc.Status.Tasks),
		"alerts":   len(doc.Alerts),
		"features": len(doc.Features),
		"progress": len(doc.Progress),
	}).Debug("dashboard document loaded")

	return doc, nil
}

// Build converts a document into page content. Category names that match
// no style are kept and rendered with the fallback style; each one is
// reported as a warning.
func Build(doc *config.Document, log *logger.Logger) components.DashboardContent {
	if doc == nil {
		return components.DashboardContent{}
	}

	content := components.DashboardContent{
		StatusTitle: doc.Status.Title,
		Tasks:       make([]components.Task, 0, len(doc.Status.Tasks)),
		Alerts:      make([]components.Alert, 0, len(doc.Alerts)),
		Features:    make([]components.Feature, 0, len(doc.Features)),
		Progress:    make([]components.Progress, 0, len(doc.Progress)),
	}
	if doc.Hero != nil {
		content.Hero = components.HeroContent{
			Eyebrow:  doc.Hero.Eyebrow,
			Headline: doc.Hero.Headline,
			Lede:     doc.Hero.Lede,
			CTA:      doc.Hero.CTA,
		}
	}

	for i, task := range doc.Status.Tasks {
		status, ok := components.LookupTaskStatus(task.Status)
		if !ok {
			warnFallback(log, fmt.Sprintf("status.tasks[%d].status", i), task.Status, status.String())
		}
		content.Tasks = append(content.Tasks, components.Task{
			Title:    task.Title,
			Status:   status,
			Progress: task.Progress,
			Assignee: task.Assignee,
		})
	}

	for i, alert := range doc.Alerts {
		kind, ok := components.LookupAlertType(alert.Type)
		if !ok {
			warnFallback(log, fmt.Sprintf("alerts[%d].type", i), alert.Type, kind.String())
		}
		content.Alerts = append(content.Alerts, components.Alert{
			Type:    kind,
			Title:   alert.Title,
			Message: alert.Message,
		})
	}

	for _, feature := range doc.Features {
		content.Features = append(content.Features, components.Feature{
			Title:       feature.Title,
			Description: feature.Description,
			Icon:        feature.Icon,
		})
	}

	for i, entry := range doc.Progress {
		variant, ok := components.LookupProgressVariant(entry.Variant)
		// an omitted variant is the documented default, not a fallback
		if !ok && entry.Variant != "" {
			warnFallback(log, fmt.Sprintf("progress[%d].variant", i), entry.Variant, variant.String())
		}
		content.Progress = append(content.Progress, components.Progress{
			Label:   entry.Label,
			Value:   entry.Value,
			Total:   entry.Total,
			Variant: variant,
		})
	}

	return content
}

func warnFallback(log *logger.Logger, field, got, used string) {
	log.WithFields(map[string]any{
		"field":    field,
		"value":    got,
		"fallback": used,
	}).Warn("unknown category, using fallback style")
}

// Stats summarises the task statuses of a document.
func Stats(doc *config.Document) components.StatusSummary {
	return components.Summarize(Build(doc, logger.Nop()).Tasks)
}
