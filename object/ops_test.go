package object

import (
	"strings"
	"testing"
)

func TestEquals(t *testing.T) {
	tests := []struct {
		a, b Object
		want bool
	}{
		{NIL, NIL, true},
		{NIL, FALSE, false},
		{TRUE, TRUE, true},
		{TRUE, FALSE, false},
		{&Integer{Value: 3}, &Integer{Value: 3}, true},
		{&Integer{Value: 3}, &Integer{Value: 4}, false},
		{&Integer{Value: 1}, &Float{Value: 1.0}, true},
		{&Float{Value: 2.5}, &Integer{Value: 2}, false},
		{&String{Value: "a"}, &String{Value: "a"}, true},
		{&String{Value: "a"}, &Integer{Value: 1}, false},
		{NewArray(&Integer{Value: 1}, &String{Value: "x"}), NewArray(&Integer{Value: 1}, &String{Value: "x"}), true},
		{NewArray(&Integer{Value: 1}), NewArray(&Integer{Value: 2}), false},
		{NewArray(&Integer{Value: 1}), NewArray(&Integer{Value: 1}, &Integer{Value: 2}), false},
	}

	for _, tt := range tests {
		if got := Equals(tt.a, tt.b); got != tt.want {
			t.Errorf("Equals(%s, %s) = %t, expected %t", tt.a.Inspect(), tt.b.Inspect(), got, tt.want)
		}
	}
}

func TestEqualsCallableIdentity(t *testing.T) {
	f := &Native{Name: "f", Params: 1, Fn: func(args ...Object) (Object, error) { return NIL, nil }}
	g := &Native{Name: "f", Params: 1, Fn: func(args ...Object) (Object, error) { return NIL, nil }}

	if !Equals(f, f) {
		t.Errorf("callable does not equal itself")
	}
	if Equals(f, g) {
		t.Errorf("distinct callables compare equal")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b  Object
		order int
		known bool
	}{
		{NIL, NIL, 0, true},
		{FALSE, TRUE, -1, true},
		{TRUE, TRUE, 0, true},
		{&Integer{Value: 1}, &Integer{Value: 2}, -1, true},
		{&Integer{Value: 2}, &Float{Value: 1.5}, 1, true},
		{&Float{Value: 1.5}, &Float{Value: 1.5}, 0, true},
		{&String{Value: "a"}, &String{Value: "b"}, -1, true},
		{&Integer{Value: 1}, &String{Value: "a"}, 0, false},
		{NIL, &Integer{Value: 1}, 0, false},
		{NewArray(), NewArray(), 0, false},
	}

	for _, tt := range tests {
		order, known := Compare(tt.a, tt.b)
		if known != tt.known || (known && order != tt.order) {
			t.Errorf("Compare(%s, %s) = (%d, %t), expected (%d, %t)",
				tt.a.Inspect(), tt.b.Inspect(), order, known, tt.order, tt.known)
		}
	}
}

func TestJoinNilIdentity(t *testing.T) {
	v := &Integer{Value: 7}

	if got, err := Join(NIL, v); err != nil || got != v {
		t.Errorf("Join(NIL, v) = (%v, %v)", got, err)
	}
	if got, err := Join(v, NIL); err != nil || got != v {
		t.Errorf("Join(v, NIL) = (%v, %v)", got, err)
	}
}

func TestJoinStrings(t *testing.T) {
	got, err := Join(&String{Value: "foo"}, &String{Value: "bar"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Inspect() != "foobar" {
		t.Errorf("expected foobar, got %q", got.Inspect())
	}
}

func TestJoinStringAbsorbsOtherKinds(t *testing.T) {
	got, err := Join(&Integer{Value: 1}, &String{Value: ", "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Inspect() != "1, " {
		t.Errorf("expected %q, got %q", "1, ", got.Inspect())
	}

	got, err = Join(&String{Value: "n="}, &Integer{Value: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Inspect() != "n=2" {
		t.Errorf("expected %q, got %q", "n=2", got.Inspect())
	}
}

func TestJoinArrays(t *testing.T) {
	got, err := Join(NewArray(&Integer{Value: 1}), NewArray(&Integer{Value: 2}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equals(got, NewArray(&Integer{Value: 1}, &Integer{Value: 2})) {
		t.Errorf("expected (1, 2), got %s", got.Inspect())
	}
}

func TestJoinMismatchedKinds(t *testing.T) {
	_, err := Join(&Integer{Value: 1}, &Integer{Value: 2})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), "INTEGER") {
		t.Errorf("error does not name the kinds: %v", err)
	}
}
