package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("did not find expected key")
	err := NewParseError("dashboard.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "dashboard.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: dashboard.yaml:12: did not find expected key", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("missing.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: missing.yaml: no such file", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("status.tasks[1].assignee", "must be 1-3 letters", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "status.tasks[1].assignee", validationErr.Field)
	require.Contains(t, err.Error(), "must be 1-3 letters")
}

func TestValidationErrorWithoutField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("", "document is nil", nil)
	require.Equal(t, "validation error: document is nil", err.Error())
}

func TestOptionErrorNamesFlag(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("is a directory")
	err := NewOptionError("config", "cannot read file", underlying)

	var optionErr *OptionError
	require.ErrorAs(t, err, &optionErr)
	require.Equal(t, "config", optionErr.Flag)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "invalid --config: cannot read file: is a directory", err.Error())
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var optionErr *OptionError

	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, optionErr.Error())
	require.NoError(t, parseErr.Unwrap())
}
