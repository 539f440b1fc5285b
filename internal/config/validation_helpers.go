package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	dserrors "github.com/komplai/designsystem/pkg/errors"
)

// convertValidationError normalizes validator errors into document validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return dserrors.NewValidationError(field, describeFailure(field, ve), err)
	}

	return dserrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName turns "Document.status.tasks[2].assignee" into
// "status.tasks[2].assignee".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func describeFailure(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "initials":
		return fmt.Sprintf("%s must be 1 to 3 letters, got %q", field, fe.Value())
	case "semver":
		return fmt.Sprintf("%s must look like 1.0 or 1.0.0, got %q", field, fe.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
	}
}
