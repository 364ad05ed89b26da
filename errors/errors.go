// Package errors provides error handling for headsmith.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints attached to startup failures
//
// Usage:
//
//	if err := toml.Unmarshal(data, &doc); err != nil {
//	    return errors.Wrap(err, "failed to decode rule table")
//	}
//
//	// Point the user at the offending section
//	return errors.WithHint(err, "check the [material_tag_patterns] section")
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
	Is            = crdb.Is
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	FlattenHints  = crdb.FlattenHints
	GetAllDetails = crdb.GetAllDetails
)

// Sentinel errors. Wrap them to add context while keeping errors.Is working.
var (
	// ErrNotFound indicates an input file or section does not exist
	ErrNotFound = New("not found")

	// ErrInvalidRuleTable marks every fatal rule table problem
	ErrInvalidRuleTable = New("invalid rule table")

	// ErrInvalidConfig indicates the tool configuration failed validation
	ErrInvalidConfig = New("invalid configuration")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsInvalidRuleTable checks if an error is or wraps ErrInvalidRuleTable
func IsInvalidRuleTable(err error) bool {
	return err != nil && Is(err, ErrInvalidRuleTable)
}

// NewRuleTableError creates a rule table error for a section with a formatted message.
// The section is attached as a hint so the CLI can point at it.
func NewRuleTableError(section string, format string, args ...interface{}) error {
	err := Wrapf(ErrInvalidRuleTable, format, args...)
	if section != "" {
		err = WithHintf(err, "check the [%s] section of the rule table", section)
	}
	return err
}

// NewInvalidConfigError creates a configuration error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidConfig, format, args...)
}
