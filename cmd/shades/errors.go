package main

import (
	"errors"
	"fmt"

	shadeserrors "github.com/alexisbeaulieu97/shades/pkg/errors"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// suggestionFor picks a hint from the error's code or type.
func suggestionFor(err error) string {
	var (
		parseErr      *shadeserrors.ParseError
		validationErr *shadeserrors.ValidationError
	)

	switch {
	case errors.As(err, &parseErr):
		return "Check the YAML syntax near the reported line."
	case errors.As(err, &validationErr):
		return "Fix the reported field; run 'shades systems' for valid systems, formats and outputs."
	case shadeserrors.HasCode(err, shadeserrors.CodeInvalidColor):
		return "Use a hex, rgb(), rgba(), hsl(), hsla() or CSS color name value."
	case shadeserrors.HasCode(err, shadeserrors.CodeUnrecognizedFormat):
		return "Named colors need an explicit --format."
	case shadeserrors.HasCode(err, shadeserrors.CodeUnsupportedShadeCount):
		return "Alpha palettes support at most 11 steps."
	case shadeserrors.HasCode(err, shadeserrors.CodeUnknownStep):
		return "Steps must be one of 50, 100, 200 ... 900, 950."
	case shadeserrors.HasCode(err, shadeserrors.CodeUnknownSystem):
		return "Run 'shades systems' to list the supported systems."
	default:
		return "Re-run with --verbose for details."
	}
}
