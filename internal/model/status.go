package model

import (
	"encoding/json"
	"errors"
	"strings"
)

// Status represents a user's account status.
type Status uint8

// Possible status values.
const (
	// StatusActive represents an active user.
	StatusActive Status = iota
	// StatusInactive represents a deactivated user.
	StatusInactive

	// StatusAll is used for querying purposes to list users irrespective of
	// their status. It is never stored as an actual user status and should
	// always be the largest value in this enumeration.
	StatusAll
)

// String representation of the possible status values.
const (
	Active   = "active"
	Inactive = "inactive"
	All      = "all"
	Unknown  = "unknown"
)

// ErrInvalidStatus indicates an unrecognized status string.
var ErrInvalidStatus = errors.New("invalid status")

// String converts a status to its string literal.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return Active
	case StatusInactive:
		return Inactive
	case StatusAll:
		return All
	default:
		return Unknown
	}
}

// ToStatus converts a string value to a valid status.
// The empty string maps to StatusAll so that a missing query
// parameter means "no status filter".
func ToStatus(status string) (Status, error) {
	switch status {
	case Active:
		return StatusActive, nil
	case Inactive:
		return StatusInactive, nil
	case "", All:
		return StatusAll, nil
	}
	return Status(0), ErrInvalidStatus
}

// MarshalJSON encodes the status as its string literal.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a status string literal. The receiver is left
// untouched on an invalid literal.
func (s *Status) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), "\"")
	val, err := ToStatus(str)
	if err != nil {
		return err
	}
	*s = val
	return nil
}
