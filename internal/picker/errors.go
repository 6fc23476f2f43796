package picker

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by an InputAdapter whose text is blank.
var ErrEmptyInput = errors.New("empty input")

// ConfigurationError reports every problem found in Options. Err is a
// cloudeng.io/errors.M; errors.Is and errors.As see through it.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid picker configuration: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ParsingError is surfaced through EventError when the input text cannot
// be read as a date.
type ParsingError struct {
	Kind    string
	Message string
	Err     error
}

func newParsingError(err error) *ParsingError {
	return &ParsingError{Kind: "ParsingError", Message: err.Error(), Err: err}
}

func (e *ParsingError) Error() string { return e.Kind + ": " + e.Message }

func (e *ParsingError) Unwrap() error { return e.Err }

type rangeError struct {
	index  int
	reason string
}

func (e rangeError) Error() string {
	return fmt.Sprintf("selectable range %d: %s", e.index, e.reason)
}

type missingError struct {
	what string
}

func (e missingError) Error() string {
	return fmt.Sprintf("missing %s", e.what)
}
