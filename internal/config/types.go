package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a dashboard description loaded from YAML. Category fields
// (task status, alert type, progress variant) stay strings here; unknown
// values are legal and render with the fallback style.
type Document struct {
	Version  string          `yaml:"version" validate:"required,semver"`
	Hero     *Hero           `yaml:"hero,omitempty"`
	Status   Status          `yaml:"status"`
	Alerts   []Alert         `yaml:"alerts,omitempty" validate:"omitempty,dive"`
	Features []Feature       `yaml:"features,omitempty" validate:"omitempty,dive"`
	Progress []ProgressEntry `yaml:"progress,omitempty" validate:"omitempty,dive"`
}

// Hero holds the page header copy.
type Hero struct {
	Eyebrow  string `yaml:"eyebrow,omitempty" validate:"max=60"`
	Headline string `yaml:"headline" validate:"required,max=200"`
	Lede     string `yaml:"lede,omitempty"`
	CTA      string `yaml:"cta,omitempty" validate:"max=40"`
}

// Status is the close checklist.
type Status struct {
	Title string `yaml:"title" validate:"required"`
	Tasks []Task `yaml:"tasks,omitempty" validate:"omitempty,dive"`
}

// Task is one checklist row.
type Task struct {
	Title    string `yaml:"title" validate:"required"`
	Status   string `yaml:"status,omitempty"`
	Progress string `yaml:"progress,omitempty"`
	Assignee string `yaml:"assignee,omitempty" validate:"omitempty,initials"`
}

// Alert is one notice of the alert grid.
type Alert struct {
	Type    string `yaml:"type,omitempty"`
	Title   string `yaml:"title" validate:"required"`
	Message string `yaml:"message,omitempty"`
}

// Feature is one light feature card.
type Feature struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description,omitempty"`
	Icon        string `yaml:"icon,omitempty"`
}

// ProgressEntry is one progress bar. Besides the mapping form it accepts a
// "value/total" scalar shorthand.
type ProgressEntry struct {
	Label   string  `yaml:"label,omitempty"`
	Value   float64 `yaml:"value"`
	Total   float64 `yaml:"total"`
	Variant string  `yaml:"variant,omitempty"`
}

var progressEntryFields = map[string]struct{}{
	"label":   {},
	"value":   {},
	"total":   {},
	"variant": {},
}

// UnmarshalYAML decodes either the mapping form or a "value/total" scalar.
func (p *ProgressEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		parsed, err := parseRatio(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*p = parsed
		return nil
	}

	// Node.Decode does not carry the decoder's KnownFields setting.
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i]
			if _, ok := progressEntryFields[key.Value]; !ok {
				return fmt.Errorf("line %d: field %s not found in type config.ProgressEntry", key.Line, key.Value)
			}
		}
	}

	type plain ProgressEntry
	var decoded plain
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*p = ProgressEntry(decoded)
	return nil
}

func parseRatio(raw string) (ProgressEntry, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(raw), "/")
	if !ok {
		return ProgressEntry{}, fmt.Errorf("progress %q: want value/total", raw)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(left), 64)
	if err != nil {
		return ProgressEntry{}, fmt.Errorf("progress %q: value: %w", raw, err)
	}
	total, err := strconv.ParseFloat(strings.TrimSpace(right), 64)
	if err != nil {
		return ProgressEntry{}, fmt.Errorf("progress %q: total: %w", raw, err)
	}

	return ProgressEntry{Value: value, Total: total}, nil
}
