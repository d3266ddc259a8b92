package core

import (
	"errors"
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestParseOrderID tests order ID parsing
func TestParseOrderID(t *testing.T) {
	valid := NewID().String()
	tests := []struct {
		input    string
		expected OrderID
		hasError bool
	}{
		{valid, OrderID(valid), false},
		{"  " + valid + " ", OrderID(valid), false},
		{"", "", true},
		{"   ", "", true},
		{"not-a-uuid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseOrderID(tt.input)
			if tt.hasError {
				if err == nil {
					t.Errorf("Expected error for input '%s', got nil", tt.input)
				}
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("Expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error for input '%s': %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestParseUserIDRejectsGarbage(t *testing.T) {
	if _, err := ParseUserID("admin"); err == nil {
		t.Error("Expected error for non-uuid user ID")
	}
	id := NewID().String()
	got, err := ParseUserID(id)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.String() != id {
		t.Errorf("Expected %s, got %s", id, got)
	}
}

func TestWorkbookErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		workbook   bool
		notFound   bool
		validation bool
	}{
		{"template", NewTemplateNotFoundError("missing", nil), true, true, false},
		{"worksheet", NewWorksheetMissingError("upload", nil), true, false, true},
		{"unreadable", NewUnreadableWorkbookError("open", errors.New("zip: not a valid zip file")), true, false, true},
		{"serialization", NewSerializationError("siparis_template", "encode", errors.New("disk full")), true, false, false},
		{"order", NewNotFoundError("order", "42"), false, true, false},
		{"no products", ErrNoProducts, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWorkbookError(tt.err); got != tt.workbook {
				t.Errorf("IsWorkbookError = %v, want %v", got, tt.workbook)
			}
			if got := IsNotFoundError(tt.err); got != tt.notFound {
				t.Errorf("IsNotFoundError = %v, want %v", got, tt.notFound)
			}
			if got := IsValidationError(tt.err); got != tt.validation {
				t.Errorf("IsValidationError = %v, want %v", got, tt.validation)
			}
		})
	}
}
