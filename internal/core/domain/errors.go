package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedDialect indicates an unknown markup dialect.
	ErrUnsupportedDialect = errors.New("unsupported dialect")

	// ErrParse indicates markup that does not match its dialect grammar.
	ErrParse = errors.New("parse error")

	// ErrUnknownChordRoot indicates a chord whose root is not a known
	// note name, so it cannot be transposed.
	ErrUnknownChordRoot = errors.New("unknown chord root")
)

// ParseError describes the first grammar failure in a markup string.
// Parsing stops at the first failure; no partial result is returned.
type ParseError struct {
	// Dialect is the grammar that failed.
	Dialect Dialect

	// Rule names the grammar rule that failed (e.g. "chord", "label").
	Rule string

	// Message is a human-readable description of the failure.
	Message string

	// Offset is the byte offset of the failure in the input.
	Offset int

	// Remaining is the unparsed input suffix starting at Offset.
	Remaining string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %s at offset %d: %q", e.Dialect, e.Rule, e.Message, e.Offset, e.Remaining)
}

// Unwrap makes errors.Is(err, ErrParse) hold.
func (e *ParseError) Unwrap() error {
	return ErrParse
}
