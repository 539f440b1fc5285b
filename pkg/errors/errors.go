// Package errors defines the typed failures surfaced while loading dashboard
// documents and validating command options.
package errors

import (
	"fmt"
)

// ParseError reports a document that could not be read or decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a document field that failed validation.
// Field uses the YAML path, e.g. "status.tasks[2].assignee".
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// OptionError reports an invalid command-line option.
type OptionError struct {
	Flag    string
	Message string
	Err     error
}

// NewOptionError constructs an OptionError for the given flag name.
func NewOptionError(flag, message string, err error) error {
	return &OptionError{Flag: flag, Message: message, Err: err}
}

func (e *OptionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid --%s: %s: %v", e.Flag, e.Message, e.Err)
	}
	return fmt.Sprintf("invalid --%s: %s", e.Flag, e.Message)
}

// Unwrap exposes the underlying error.
func (e *OptionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
