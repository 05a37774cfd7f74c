package object

import (
	"cmp"
	"fmt"
	"strings"
)

// Equals reports structural equality. Integers and floats compare
// numerically across kinds, arrays compare element-wise, callables compare
// by identity.
func Equals(a, b Object) bool {
	switch a := a.(type) {
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Boolean:
		if b, ok := b.(*Boolean); ok {
			return a.Value == b.Value
		}
	case *Integer:
		switch b := b.(type) {
		case *Integer:
			return a.Value == b.Value
		case *Float:
			return float64(a.Value) == b.Value
		}
	case *Float:
		switch b := b.(type) {
		case *Integer:
			return a.Value == float64(b.Value)
		case *Float:
			return a.Value == b.Value
		}
	case *String:
		if b, ok := b.(*String); ok {
			return a.Value == b.Value
		}
	case *Array:
		if b, ok := b.(*Array); ok {
			return arraysEqual(a, b)
		}
	case Callable:
		return Object(a) == b
	}
	return false
}

func arraysEqual(a, b *Array) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, item := range a.Items() {
		if !Equals(item, b.Items()[i]) {
			return false
		}
	}
	return true
}

// Compare orders a relative to b: negative, zero or positive. The order is
// partial; known is false when the pair has no defined order. Nils compare
// equal to each other, booleans order false before true, integers and
// floats order numerically across kinds and strings lexicographically.
func Compare(a, b Object) (order int, known bool) {
	switch a := a.(type) {
	case *Nil:
		if _, ok := b.(*Nil); ok {
			return 0, true
		}
	case *Boolean:
		if b, ok := b.(*Boolean); ok {
			return boolOrder(a.Value) - boolOrder(b.Value), true
		}
	case *Integer:
		switch b := b.(type) {
		case *Integer:
			return cmp.Compare(a.Value, b.Value), true
		case *Float:
			return cmp.Compare(float64(a.Value), b.Value), true
		}
	case *Float:
		switch b := b.(type) {
		case *Integer:
			return cmp.Compare(a.Value, float64(b.Value)), true
		case *Float:
			return cmp.Compare(a.Value, b.Value), true
		}
	case *String:
		if b, ok := b.(*String); ok {
			return strings.Compare(a.Value, b.Value), true
		}
	}
	return 0, false
}

func boolOrder(v bool) int {
	if v {
		return 1
	}
	return 0
}

// Join combines two values left to right. NIL is the identity on either
// side, so a join accumulation can start from NIL without producing a
// leading separator. Strings absorb any other value by appending its
// rendering; arrays concatenate. Other pairings fail naming both kinds.
func Join(left, right Object) (Object, error) {
	if _, ok := left.(*Nil); ok || left == nil {
		return right, nil
	}
	if _, ok := right.(*Nil); ok || right == nil {
		return left, nil
	}

	switch l := left.(type) {
	case *String:
		if r, ok := right.(*String); ok {
			return &String{Value: l.Value + r.Value}, nil
		}
		return &String{Value: l.Value + right.Inspect()}, nil
	case *Array:
		if r, ok := right.(*Array); ok {
			return l.Concat(r), nil
		}
	default:
		if r, ok := right.(*String); ok {
			return &String{Value: left.Inspect() + r.Value}, nil
		}
	}

	return nil, fmt.Errorf("cannot join %s with %s", left.Type(), right.Type())
}
