package forest

import (
	"errors"
	"fmt"
)

// Sentinel errors for the level loader. Typed errors below unwrap to them,
// so callers can use either errors.Is or errors.As.
var (
	ErrFormat        = errors.New("invalid level format")
	ErrMissingEntity = errors.New("level missing entity")
	ErrIO            = errors.New("level unreadable")
)

// FormatError reports a level whose line count or line length is wrong.
type FormatError struct {
	Line int // 1-based line number, 0 when the line count is wrong
	Want int
	Got  int
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("forest: level must have exactly %d lines, got %d", e.Want, e.Got)
	}
	return fmt.Sprintf("forest: line %d must have length %d, got %d", e.Line, e.Want, e.Got)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// MissingEntityError reports a level without a required marker.
type MissingEntityError struct {
	Marker rune
	Entity string
}

func (e *MissingEntityError) Error() string {
	return fmt.Sprintf("forest: level missing %s '%c'", e.Entity, e.Marker)
}

func (e *MissingEntityError) Unwrap() error { return ErrMissingEntity }

// IOError reports a level source that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("forest: cannot read level: %v", e.Err)
	}
	return fmt.Sprintf("forest: cannot read level %s: %v", e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }
