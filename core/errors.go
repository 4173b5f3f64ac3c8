package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is an expected, recoverable failure caused by the caller's input
// (duplicate or missing names, invalid values). Err is the sentinel to match with errors.Is.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

func (err ValidationError) Unwrap() error { return err.Err }

// Cause lets errors.Cause reach the sentinel.
func (err ValidationError) Cause() error { return err.Err }

// Message renders the error with its field details, suitable for direct display.
func (err ValidationError) Message() string {
	msg := err.Error()
	for _, fld := range err.Fields {
		if fld.Error == "" || fld.Error == msg {
			continue
		}
		msg += "\n  " + fld.Field + ": " + fld.Error
	}
	return msg
}

// IsValidationError reports whether err (or any error it wraps) is a *ValidationError.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
