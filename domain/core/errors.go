package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Workbook errors. Each one is terminal for the export or import that raised it.
	ErrTemplateNotFound     = errors.New("template not found")
	ErrWorksheetMissing     = errors.New("worksheet missing")
	ErrUnreadableWorkbook   = errors.New("unreadable workbook")
	ErrSerializationFailure = errors.New("workbook serialization failed")

	// Not found errors
	ErrNotFound      = errors.New("resource not found")
	ErrOrderNotFound = fmt.Errorf("%w: order", ErrNotFound)
	ErrUserNotFound  = fmt.Errorf("%w: user", ErrNotFound)

	// Validation errors
	ErrNoProducts   = errors.New("no products provided")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)

// Error constructors with context

func NewTemplateNotFoundError(templateID string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %q: %v", ErrTemplateNotFound, templateID, cause)
	}
	return fmt.Errorf("%w: %q", ErrTemplateNotFound, templateID)
}

func NewWorksheetMissingError(source string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %s has no readable first sheet: %v", ErrWorksheetMissing, source, cause)
	}
	return fmt.Errorf("%w: %s has no readable first sheet", ErrWorksheetMissing, source)
}

func NewUnreadableWorkbookError(stage string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrUnreadableWorkbook, stage, cause)
}

func NewSerializationError(templateID, stage string, cause error) error {
	return fmt.Errorf("%w: template %q: %s: %v", ErrSerializationFailure, templateID, stage, cause)
}

func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidInput, field, reason)
}

// Error checking helpers

// IsWorkbookError reports whether err belongs to the export/import taxonomy.
func IsWorkbookError(err error) bool {
	return errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrWorksheetMissing) ||
		errors.Is(err, ErrUnreadableWorkbook) ||
		errors.Is(err, ErrSerializationFailure)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrTemplateNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrNoProducts) ||
		errors.Is(err, ErrUnreadableWorkbook) ||
		errors.Is(err, ErrWorksheetMissing)
}
