package errors

import (
	stderrors "errors"
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

// ValidationError captures palette document validation issues.
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

// Code identifies a colour error category.
type Code string

const (
	CodeUnrecognizedFormat    Code = "UNRECOGNIZED_FORMAT"
	CodeInvalidColor          Code = "INVALID_COLOR"
	CodeUnsupportedShadeCount Code = "UNSUPPORTED_SHADE_COUNT"
	CodeUnknownStep           Code = "UNKNOWN_STEP"
	CodeUnknownSystem         Code = "UNKNOWN_SYSTEM"
)

// Sentinels for errors.Is comparisons. A ColorError matches a sentinel when
// their codes are equal.
var (
	ErrUnrecognizedFormat    = &ColorError{Code: CodeUnrecognizedFormat}
	ErrInvalidColor          = &ColorError{Code: CodeInvalidColor}
	ErrUnsupportedShadeCount = &ColorError{Code: CodeUnsupportedShadeCount}
	ErrUnknownStep           = &ColorError{Code: CodeUnknownStep}
	ErrUnknownSystem         = &ColorError{Code: CodeUnknownSystem}
)

// ColorError reports a failure to read, classify or expand a colour value.
type ColorError struct {
	Code    Code
	Value   string
	Message string
	Err     error
}

// NewColorError constructs a ColorError for the offending value.
func NewColorError(code Code, value, message string, err error) error {
	return &ColorError{Code: code, Value: value, Message: message, Err: err}
}

func (e *ColorError) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := e.Message
	if msg == "" {
		msg = defaultMessage(e.Code)
	}
	if e.Value != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Value)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap exposes the underlying error.
func (e *ColorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is a ColorError with the same code.
func (e *ColorError) Is(target error) bool {
	var colorErr *ColorError
	if e == nil || !stderrors.As(target, &colorErr) || colorErr == nil {
		return false
	}
	return e.Code == colorErr.Code
}

// HasCode reports whether err is, or wraps, a ColorError with the given code.
func HasCode(err error, code Code) bool {
	var colorErr *ColorError
	if !stderrors.As(err, &colorErr) {
		return false
	}
	return colorErr.Code == code
}

func defaultMessage(code Code) string {
	switch code {
	case CodeUnrecognizedFormat:
		return "unrecognized color format"
	case CodeInvalidColor:
		return "invalid color"
	case CodeUnsupportedShadeCount:
		return "unsupported shade count"
	case CodeUnknownStep:
		return "unknown shade step"
	case CodeUnknownSystem:
		return "unknown color system"
	default:
		return "color error"
	}
}
