package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	OrderID ID
	UserID  ID
)

func (id OrderID) String() string { return ID(id).String() }
func (id UserID) String() string  { return ID(id).String() }

// ParseOrderID validates an order id taken from a request path.
func ParseOrderID(s string) (OrderID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", NewValidationError("id", "order ID cannot be empty")
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", NewValidationError("id", fmt.Sprintf("malformed order ID %q", s))
	}
	return OrderID(s), nil
}

// ParseUserID validates a user id handed over by the identity collaborator.
func ParseUserID(s string) (UserID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", NewValidationError("user", "user ID cannot be empty")
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", NewValidationError("user", fmt.Sprintf("malformed user ID %q", s))
	}
	return UserID(s), nil
}
