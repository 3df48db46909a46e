// Package domainerrors provides coded errors that cross layer boundaries.
// Services attach a Code so transports can map failures to responses without
// string matching, while the description stays human readable.
package domainerrors

import "errors"

// Code identifies the class of failure. Codes are stable API surface; the
// descriptions are not.
type Code string

const (
	CodeBadRequest  Code = "bad_request"
	CodeConflict    Code = "conflict"
	CodeNotFound    Code = "not_found"
	CodeUnavailable Code = "unavailable"
	CodeInternal    Code = "internal_error"
)

// Error is a coded domain error.
type Error struct {
	Code        Code
	Description string
	cause       error
}

// New builds a coded error with a human-readable description.
func New(code Code, description string) *Error {
	return &Error{Code: code, Description: description}
}

// Wrap builds a coded error that preserves the underlying cause for
// errors.Is/As chains while exposing the description to callers.
func Wrap(code Code, description string, cause error) *Error {
	return &Error{Code: code, Description: description, cause: cause}
}

func (e *Error) Error() string {
	if e.Description == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Description
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var de *Error
	return errors.As(err, &de) && de.Code == code
}

// CodeOf extracts the code from err, defaulting to CodeInternal for uncoded
// errors so transports never leak raw failure detail by accident.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// DescriptionOf returns the description for coded errors and the plain error
// text otherwise.
func DescriptionOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Description
	}
	return err.Error()
}
