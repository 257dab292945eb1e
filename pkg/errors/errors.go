// Package errors defines the typed errors returned while loading a table seed.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ParseError reports a seed file that could not be read or decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError. Line is zero when unknown.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NoRow marks a ValidationError about a document-level key.
const NoRow = -1

// ValidationError reports a decoded seed that breaks a rule. Row is the index
// of the offending entry under rows, or NoRow for keys such as page_size.
// Path is empty when the seed did not come from a file.
type ValidationError struct {
	Path    string
	Row     int
	Field   string
	Message string
	Err     error
}

// NewValidationError reports a problem with a document-level key.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Row: NoRow, Field: field, Message: message, Err: err}
}

// NewRowError reports a problem with field of the row at index row.
func NewRowError(row int, field, message string, err error) error {
	return &ValidationError{Row: row, Field: field, Message: message, Err: err}
}

// Location names the offending key the way it appears in the YAML,
// e.g. "rows[1].id" or "page_size".
func (e *ValidationError) Location() string {
	if e == nil {
		return ""
	}
	if e.Row >= 0 {
		if e.Field == "" {
			return fmt.Sprintf("rows[%d]", e.Row)
		}
		return fmt.Sprintf("rows[%d].%s", e.Row, e.Field)
	}
	return e.Field
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	parts := make([]string, 0, 3)
	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	if loc := e.Location(); loc != "" {
		parts = append(parts, loc)
	}
	parts = append(parts, e.Message)
	return "validation error: " + strings.Join(parts, ": ")
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsParse reports whether err wraps a ParseError.
func IsParse(err error) bool {
	var target *ParseError
	return stderrors.As(err, &target)
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return stderrors.As(err, &target)
}
