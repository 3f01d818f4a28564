package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks a dataset's shape before it is rendered. Dangling links
// are not problems here; they are filtered at render time.
func Validate(ds *Dataset) error {
	if ds == nil {
		return &ValidationError{Problems: []string{"dataset is nil"}}
	}

	var problems []string
	if err := validate.Struct(ds); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return &ValidationError{Problems: []string{err.Error()}}
		}
		for _, fe := range fieldErrs {
			problems = append(problems, formatFieldError(fe))
		}
	}

	seen := make(map[string]struct{}, len(ds.Nodes))
	for i, n := range ds.Nodes {
		if n == nil || n.ID == "" {
			continue
		}
		if _, dup := seen[n.ID]; dup {
			problems = append(problems, fmt.Sprintf("nodes[%d]: duplicate id %q", i, n.ID))
			continue
		}
		seen[n.ID] = struct{}{}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// formatFieldError turns a validator failure into a readable message
func formatFieldError(e validator.FieldError) string {
	field := strings.TrimPrefix(e.Namespace(), "Dataset.")
	field = strings.ToLower(field)

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
