package diag

import (
	"errors"
	"fmt"
)

// Span locates a byte position in a source file. The zero value is
// detached: it points at no source.
type Span struct {
	File string
	Pos  int
}

func (s Span) Detached() bool {
	return s.File == "" && s.Pos == 0
}

func (s Span) String() string {
	if s.Detached() {
		return "<detached>"
	}
	return fmt.Sprintf("%s@%d", s.File, s.Pos)
}

// Error is a failure attributed to a source location, typically the
// definition site of the callable that produced it.
type Error struct {
	Span Span
	Msg  string
	Err  error
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds a diagnosed error at span.
func Errorf(span Span, format string, a ...any) *Error {
	return &Error{Span: span, Msg: fmt.Sprintf(format, a...)}
}

// At attributes err to span unless it already carries a location.
func At(err error, span Span) error {
	if err == nil {
		return nil
	}
	var diagnosed *Error
	if errors.As(err, &diagnosed) {
		return err
	}
	return &Error{Span: span, Msg: err.Error(), Err: err}
}
