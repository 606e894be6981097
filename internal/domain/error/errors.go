// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Kind classifies a domain error for transport mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindValidation
	KindConflict
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Code identifies a specific domain error.
// Format: XXX-CCNNNN where XXX is the domain, CC the category and NNNN the error.
type Code string

// Infrastructure errors shared by all repositories.
var (
	// ErrDuplicateKey is returned when a write violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Error is a classified domain error carrying a stable code.
type Error struct {
	Kind    Kind
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new domain Error.
func New(kind Kind, code Code, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation is shorthand for a KindValidation error.
func Validation(code Code, message string, err error) *Error {
	return New(KindValidation, code, message, err)
}

// NotFound is shorthand for a KindNotFound error.
func NotFound(code Code, message string, err error) *Error {
	return New(KindNotFound, code, message, err)
}

// As extracts the domain Error from err's chain.
func As(err error) (*Error, bool) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}
