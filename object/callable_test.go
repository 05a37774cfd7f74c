package object

import (
	"errors"
	"testing"

	"tern/diag"
)

func TestNativeArity(t *testing.T) {
	known := &Native{Name: "f", Params: 2}
	if count, ok := known.Arity(); !ok || count != 2 {
		t.Errorf("expected (2, true), got (%d, %t)", count, ok)
	}

	unknown := &Native{Name: "g", Params: -1}
	if _, ok := unknown.Arity(); ok {
		t.Errorf("expected unknown arity")
	}
}

func TestNativeCallDiagnosesFailures(t *testing.T) {
	span := diag.Span{File: "lib.tn", Pos: 12}
	fn := &Native{
		Name:   "explode",
		Params: 1,
		At:     span,
		Fn: func(args ...Object) (Object, error) {
			return nil, errors.New("explode failed")
		},
	}

	_, err := fn.Call(NewArgs(span, NIL))
	if err == nil {
		t.Fatalf("expected an error")
	}

	var diagnosed *diag.Error
	if !errors.As(err, &diagnosed) {
		t.Fatalf("expected a diagnosed error, got %T", err)
	}
	if diagnosed.Span != span {
		t.Errorf("expected span %v, got %v", span, diagnosed.Span)
	}
}

func TestNativeCallNilResultBecomesNIL(t *testing.T) {
	fn := &Native{
		Name:   "void",
		Params: 0,
		Fn: func(args ...Object) (Object, error) {
			return nil, nil
		},
	}

	result, err := fn.Call(NewArgs(diag.Span{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != NIL {
		t.Errorf("expected NIL, got %v", result)
	}
}
