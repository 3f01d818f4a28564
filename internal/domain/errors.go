package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrContainerNotFound is reported when a widget's selector resolves to nothing
	ErrContainerNotFound = errors.New("container not found")

	// ErrMalformedDataset is wrapped by every ValidationError
	ErrMalformedDataset = errors.New("malformed dataset")

	// ErrNodeNotFound is returned by pointer operations on an unknown id
	ErrNodeNotFound = errors.New("node not found")
)

// LoadError describes a failed dataset fetch
type LoadError struct {
	Source string
	Status int // HTTP status, 0 when the request never completed
	Err    error
}

func (e *LoadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("failed to load %s: status %d", e.Source, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("failed to load %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("failed to load %s", e.Source)
}

// Unwrap returns the underlying error
func (e *LoadError) Unwrap() error {
	return e.Err
}

// ValidationError lists every problem found in a dataset
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMalformedDataset, strings.Join(e.Problems, "; "))
}

// Unwrap lets errors.Is match ErrMalformedDataset
func (e *ValidationError) Unwrap() error {
	return ErrMalformedDataset
}

// IsMalformed reports whether err is a dataset validation failure
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedDataset)
}
