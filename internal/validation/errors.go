package validation

import (
	"errors"
	"strconv"
)

// Kind identifies the violated constraint class
type Kind string

// Constraint classes surfaced to the caller as client input errors
const (
	KindMissingField Kind = "missing_field" // Required field absent or empty
	KindTooShort     Kind = "too_short"     // Field below its minimum length
	KindInvalidValue Kind = "invalid_value" // Field value outside its allowed range
	KindDuplicateKey Kind = "duplicate_key" // Field value already taken
)

// Error reports a single violated constraint, attributable to one field
type Error struct {
	Kind  Kind   // Constraint class
	Field string // Offending field
	Min   int    // Minimum length, for KindTooShort
}

// Error returns a stable, rule-specific message
func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingField:
		return e.Field + " is required"
	case KindTooShort:
		return e.Field + " must be at least " + strconv.Itoa(e.Min) + " characters long"
	case KindInvalidValue:
		return e.Field + " must be a non-negative integer"
	case KindDuplicateKey:
		return e.Field + " must be unique"
	}
	return "invalid " + e.Field
}

// MissingField reports a required field that is absent or empty
func MissingField(field string) *Error {
	return &Error{Kind: KindMissingField, Field: field}
}

// TooShort reports a field below its minimum length
func TooShort(field string, min int) *Error {
	return &Error{Kind: KindTooShort, Field: field, Min: min}
}

// InvalidValue reports a field value outside its allowed range
func InvalidValue(field string) *Error {
	return &Error{Kind: KindInvalidValue, Field: field}
}

// DuplicateKey reports a uniqueness violation on a field
func DuplicateKey(field string) *Error {
	return &Error{Kind: KindDuplicateKey, Field: field}
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}
