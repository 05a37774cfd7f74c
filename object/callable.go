package object

import (
	"log/slog"

	"tern/diag"
)

// Args is an ordered positional argument list tagged with the span the call
// should be attributed to.
type Args struct {
	Span   diag.Span
	Values []Object
}

func NewArgs(span diag.Span, values ...Object) Args {
	return Args{Span: span, Values: values}
}

// Callable is the capability the higher-order array operations invoke.
// Arity reports the declared parameter count; known is false for callables
// whose count cannot be determined statically. A failed Call returns a
// diagnosed error carrying the callable's own span.
type Callable interface {
	Object
	Arity() (count int, known bool)
	Span() diag.Span
	Call(args Args) (Object, error)
}

type NativeFn func(args ...Object) (Object, error)

// Native is a callable implemented in Go.
type Native struct {
	Name   string
	Params int // declared parameter count, -1 when unknown
	At     diag.Span
	Fn     NativeFn
}

func (f *Native) Type() ObjectType { return FUNCTION_OBJ }

func (f *Native) Inspect() string {
	return "fn " + f.Name + " { <native> }"
}

func (f *Native) Arity() (int, bool) {
	if f.Params < 0 {
		return 0, false
	}
	return f.Params, true
}

func (f *Native) Span() diag.Span { return f.At }

func (f *Native) Call(args Args) (Object, error) {
	slog.Debug("calling native function",
		slog.String("function", f.Name),
		slog.Int("argument-count", len(args.Values)))

	result, err := f.Fn(args.Values...)
	if err != nil {
		return nil, diag.At(err, f.At)
	}
	if result == nil {
		result = NIL
	}
	return result, nil
}
