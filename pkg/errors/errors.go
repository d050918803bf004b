package errors

import (
	"fmt"
)

// ParseError represents a content file parsing failure with optional line metadata.
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

// ValidationError captures content, settings or form validation issues.
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

// SubmissionError reports a contact submission that did not succeed, either
// because the request failed or because the server answered with a non-2xx
// status. StatusCode is zero for transport failures.
type SubmissionError struct {
	StatusCode int
	Err        error
}

// NewSubmissionError constructs a SubmissionError.
func NewSubmissionError(status int, err error) error {
	return &SubmissionError{StatusCode: status, Err: err}
}

func (e *SubmissionError) Error() string {
	if e == nil {
		return ""
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("submission failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("submission failed: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *SubmissionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError indicates that a page could not be rendered.
type RenderError struct {
	Route string
	Err   error
}

// NewRenderError constructs a RenderError for the given route.
func NewRenderError(route string, err error) error {
	return &RenderError{Route: route, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Route != "" {
		return fmt.Sprintf("render error [%s]: %v", e.Route, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
