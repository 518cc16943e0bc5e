package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ParseError represents a config decoding failure with optional line metadata.
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

// ValidationError captures configuration and option validation issues.
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

// NotFoundError reports a token path that did not resolve. Lookups themselves
// return a boolean; this type exists for callers that must surface the miss.
type NotFoundError struct {
	Path string
}

// NewNotFoundError constructs a NotFoundError for the given token path.
func NewNotFoundError(path string) error {
	return &NotFoundError{Path: path}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("token not found: %q", e.Path)
}

// IntegrityError lists token values that do not trace back to a Brand primitive.
// Violations maps the dotted token path to its offending value.
type IntegrityError struct {
	Violations map[string]string
}

// NewIntegrityError constructs an IntegrityError. It returns nil when there are
// no violations so callers can return it directly.
func NewIntegrityError(violations map[string]string) error {
	if len(violations) == 0 {
		return nil
	}
	copied := make(map[string]string, len(violations))
	for path, value := range violations {
		copied[path] = value
	}
	return &IntegrityError{Violations: copied}
}

// Paths returns the offending token paths in sorted order.
func (e *IntegrityError) Paths() []string {
	if e == nil {
		return nil
	}
	paths := make([]string, 0, len(e.Violations))
	for path := range e.Violations {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func (e *IntegrityError) Error() string {
	if e == nil {
		return ""
	}
	parts := make([]string, 0, len(e.Violations))
	for _, path := range e.Paths() {
		parts = append(parts, fmt.Sprintf("%s=%s", path, e.Violations[path]))
	}
	return fmt.Sprintf("token integrity error: %d value(s) not traced to brand: %s", len(parts), strings.Join(parts, ", "))
}
