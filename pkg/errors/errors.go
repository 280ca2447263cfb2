package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
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

// ValidationError captures configuration and argument validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// GeometryError reports snap points that cannot be mapped onto the viewport.
// No layout is produced when this error is returned.
type GeometryError struct {
	ViewportHeight float64
	Points         []float64
	Message        string
}

// NewGeometryError constructs a GeometryError. The points slice is copied.
func NewGeometryError(viewportHeight float64, points []float64, message string) error {
	return &GeometryError{
		ViewportHeight: viewportHeight,
		Points:         append([]float64(nil), points...),
		Message:        message,
	}
}

func (e *GeometryError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("geometry error: viewport %.0f, points %v: %s", e.ViewportHeight, e.Points, e.Message)
}
