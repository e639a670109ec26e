// Package errors provides error handling for cvecgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints attached to validation failures
//
// Usage:
//
//	// Wrap with context
//	if err := writer.Write(ctx, docs); err != nil {
//	    return errors.Wrapf(err, "failed to write unit %s", docs.Unit)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "sanitized names must be valid C identifiers")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Common sentinel errors.
// Use these with errors.Is() and wrap them with Wrapf to add context.
var (
	// ErrInvalidSpec indicates a type spec or output unit that cannot produce valid C
	ErrInvalidSpec = New("invalid type spec")

	// ErrDuplicateName indicates two specs (or units) share the same generated name
	ErrDuplicateName = New("duplicate name")

	// ErrOutOfDate indicates generated files on disk differ from a fresh generation
	ErrOutOfDate = New("generated files are out of date")

	// ErrNotFound indicates a requested unit or file does not exist
	ErrNotFound = New("not found")

	// ErrIncompatibleVersion indicates the config requires a different generator version
	ErrIncompatibleVersion = New("incompatible generator version")
)

// IsInvalidSpecError checks if an error is or wraps ErrInvalidSpec
func IsInvalidSpecError(err error) bool {
	return err != nil && Is(err, ErrInvalidSpec)
}

// IsDuplicateNameError checks if an error is or wraps ErrDuplicateName
func IsDuplicateNameError(err error) bool {
	return err != nil && Is(err, ErrDuplicateName)
}

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// NewInvalidSpecError creates an invalid-spec error with a formatted message
func NewInvalidSpecError(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidSpec, format, args...)
}

// NewDuplicateNameError creates a duplicate-name error with a formatted message
func NewDuplicateNameError(format string, args ...interface{}) error {
	return Wrapf(ErrDuplicateName, format, args...)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrapf(ErrNotFound, format, args...)
}
