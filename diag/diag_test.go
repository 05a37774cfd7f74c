package diag

import (
	"errors"
	"fmt"
	"testing"
)

func TestAtAttachesSpan(t *testing.T) {
	span := Span{File: "main.tn", Pos: 42}
	err := At(errors.New("boom"), span)

	var diagnosed *Error
	if !errors.As(err, &diagnosed) {
		t.Fatalf("expected a diagnosed error, got %T", err)
	}
	if diagnosed.Span != span {
		t.Errorf("expected span %v, got %v", span, diagnosed.Span)
	}
	if diagnosed.Error() != "boom" {
		t.Errorf("unexpected message: %q", diagnosed.Error())
	}
}

func TestAtKeepsExistingSpan(t *testing.T) {
	first := Span{File: "lib.tn", Pos: 7}
	err := Errorf(first, "bad call")

	reattached := At(err, Span{File: "main.tn", Pos: 99})

	var diagnosed *Error
	if !errors.As(reattached, &diagnosed) {
		t.Fatalf("expected a diagnosed error, got %T", reattached)
	}
	if diagnosed.Span != first {
		t.Errorf("span was overwritten: got %v", diagnosed.Span)
	}
}

func TestAtWrappedCause(t *testing.T) {
	cause := errors.New("disk on fire")
	wrapped := fmt.Errorf("while reading: %w", cause)

	err := At(wrapped, Span{File: "io.tn", Pos: 1})
	if !errors.Is(err, cause) {
		t.Errorf("cause lost through At")
	}
}

func TestAtNil(t *testing.T) {
	if err := At(nil, Span{File: "x", Pos: 1}); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestSpanString(t *testing.T) {
	if s := (Span{}).String(); s != "<detached>" {
		t.Errorf("unexpected detached rendering: %q", s)
	}
	if s := (Span{File: "a.tn", Pos: 3}).String(); s != "a.tn@3" {
		t.Errorf("unexpected rendering: %q", s)
	}
}
