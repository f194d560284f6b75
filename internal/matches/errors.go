package matches

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("match not found")
	ErrMalformedDate  = errors.New("malformed date")
	ErrEmptySelection = errors.New("no category selected")
)

// ValidationError names every field that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("match %q not found", e.ID) }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type MalformedDateError struct {
	Date string
	Time string
	Err  error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date/time %q %q: %v", e.Date, e.Time, e.Err)
}

func (e *MalformedDateError) Is(target error) bool { return target == ErrMalformedDate }

func (e *MalformedDateError) Unwrap() error { return e.Err }

// EmptySelectionError is returned when a report is requested without categories.
type EmptySelectionError struct{}

func (e *EmptySelectionError) Error() string { return ErrEmptySelection.Error() }

func (e *EmptySelectionError) Is(target error) bool { return target == ErrEmptySelection }
