package object

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"tern/diag"
	"tern/vec"
)

// Array is the ordered collection value of the runtime. It has value
// semantics: Clone registers a new owner of the shared backing vector in
// O(1), and a mutation under sharing forks the buffer first, so writes to
// one logical value are never observable through another.
type Array struct {
	elements vec.Vec[Object]
}

// NewArray builds an array owning the given elements.
func NewArray(elements ...Object) *Array {
	return &Array{elements: vec.Of(elements...)}
}

// FromVec wraps an existing vector.
func FromVec(v vec.Vec[Object]) *Array {
	return &Array{elements: v}
}

func (a *Array) Type() ObjectType { return ARRAY_OBJ }

// Inspect renders the array tuple-style: "(1, 2)", with a trailing comma
// for a single element.
func (a *Array) Inspect() string {
	var out strings.Builder
	out.WriteByte('(')
	for i, item := range a.elements.Items() {
		out.WriteString(item.Inspect())
		if i+1 < a.elements.Len() {
			out.WriteString(", ")
		}
	}
	if a.elements.Len() == 1 {
		out.WriteByte(',')
	}
	out.WriteByte(')')
	return out.String()
}

// Clone registers a new owner of the backing vector.
func (a *Array) Clone() *Array {
	return &Array{elements: a.elements.Clone()}
}

func (a *Array) Len() int64 {
	return int64(a.elements.Len())
}

// Items returns a read-only view of the elements in order.
func (a *Array) Items() []Object {
	return a.elements.Items()
}

// locate resolves a possibly negative index to a storage offset. It is the
// only place negative wrapping happens: a negative index counts back from
// the end. Callers bound-check the offset against the element count.
func (a *Array) locate(index int64) (int, bool) {
	if index < 0 {
		index += a.Len()
		if index < 0 {
			return 0, false
		}
	}
	if index > math.MaxInt {
		return 0, false
	}
	return int(index), true
}

func outOfBounds(index, length int64) error {
	return fmt.Errorf("array index out of bounds (index: %d, len: %d)", index, length)
}

func arrayIsEmpty() error {
	return fmt.Errorf("array is empty")
}

// First returns the first element; it fails on an empty array.
func (a *Array) First() (Object, error) {
	if a.elements.Len() == 0 {
		return nil, arrayIsEmpty()
	}
	return a.elements.Get(0), nil
}

// FirstMut returns a writable slot for the first element, backed by the
// exclusive buffer.
func (a *Array) FirstMut() (*Object, error) {
	if a.elements.Len() == 0 {
		return nil, arrayIsEmpty()
	}
	return a.elements.GetMut(0), nil
}

// Last returns the last element; it fails on an empty array.
func (a *Array) Last() (Object, error) {
	if a.elements.Len() == 0 {
		return nil, arrayIsEmpty()
	}
	return a.elements.Get(a.elements.Len() - 1), nil
}

// LastMut returns a writable slot for the last element, backed by the
// exclusive buffer.
func (a *Array) LastMut() (*Object, error) {
	if a.elements.Len() == 0 {
		return nil, arrayIsEmpty()
	}
	return a.elements.GetMut(a.elements.Len() - 1), nil
}

// At returns the element at index, resolving negative indexes from the end.
func (a *Array) At(index int64) (Object, error) {
	if i, ok := a.locate(index); ok && i < a.elements.Len() {
		return a.elements.Get(i), nil
	}
	return nil, outOfBounds(index, a.Len())
}

// AtMut returns a writable slot for the element at index, backed by the
// exclusive buffer.
func (a *Array) AtMut(index int64) (*Object, error) {
	if i, ok := a.locate(index); ok && i < a.elements.Len() {
		return a.elements.GetMut(i), nil
	}
	return nil, outOfBounds(index, a.Len())
}

// Push appends value to the end of the array.
func (a *Array) Push(value Object) {
	a.elements.Push(value)
}

// Pop removes and returns the last element; it fails on an empty array.
func (a *Array) Pop() (Object, error) {
	if value, ok := a.elements.Pop(); ok {
		return value, nil
	}
	return nil, arrayIsEmpty()
}

// Insert places value at index, shifting subsequent elements back. The
// one-past-the-end position is admitted.
func (a *Array) Insert(index int64, value Object) error {
	i, ok := a.locate(index)
	if !ok || i > a.elements.Len() {
		return outOfBounds(index, a.Len())
	}
	a.elements.Insert(i, value)
	return nil
}

// Remove deletes and returns the element at index, shifting subsequent
// elements forward.
func (a *Array) Remove(index int64) (Object, error) {
	i, ok := a.locate(index)
	if !ok || i >= a.elements.Len() {
		return nil, outOfBounds(index, a.Len())
	}
	return a.elements.Remove(i), nil
}

// Slice copies the subrange [start, end) into a new array. A nil end means
// the array's length; an end that resolves before start yields an empty
// array, not an error.
func (a *Array) Slice(start int64, end *int64) (*Array, error) {
	s, ok := a.locate(start)
	if !ok || s > a.elements.Len() {
		return nil, outOfBounds(start, a.Len())
	}

	endIndex := a.Len()
	if end != nil {
		endIndex = *end
	}
	e, ok := a.locate(endIndex)
	if !ok || e > a.elements.Len() {
		return nil, outOfBounds(endIndex, a.Len())
	}
	if e < s {
		e = s
	}

	return FromVec(a.elements.SliceOf(s, e)), nil
}

// Contains reports whether any element equals value.
func (a *Array) Contains(value Object) bool {
	for _, item := range a.elements.Items() {
		if Equals(item, value) {
			return true
		}
	}
	return false
}

// exactArity rejects a callable whose declared parameter count is known
// and differs from want.
func exactArity(fn Callable, want int, message string) error {
	if count, known := fn.Arity(); known && count != want {
		return diag.Errorf(fn.Span(), "%s", message)
	}
	return nil
}

// asBool interprets a callable result as a boolean, attributing a mismatch
// to the callable's definition site.
func asBool(result Object, fn Callable) (bool, error) {
	if b, ok := result.(*Boolean); ok {
		return b.Value, nil
	}
	return false, diag.Errorf(fn.Span(), "expected BOOLEAN, got %s", result.Type())
}

// Find returns the first element for which fn returns true. The second
// result is false when no element matches.
func (a *Array) Find(fn Callable) (Object, bool, error) {
	if err := exactArity(fn, 1, "function must have exactly one parameter"); err != nil {
		return nil, false, err
	}
	for _, item := range a.elements.Items() {
		result, err := fn.Call(NewArgs(fn.Span(), item))
		if err != nil {
			return nil, false, err
		}
		match, err := asBool(result, fn)
		if err != nil {
			return nil, false, err
		}
		if match {
			return item, true, nil
		}
	}
	return nil, false, nil
}

// Position returns the index of the first element for which fn returns
// true. The second result is false when no element matches.
func (a *Array) Position(fn Callable) (int64, bool, error) {
	if err := exactArity(fn, 1, "function must have exactly one parameter"); err != nil {
		return 0, false, err
	}
	for i, item := range a.elements.Items() {
		result, err := fn.Call(NewArgs(fn.Span(), item))
		if err != nil {
			return 0, false, err
		}
		match, err := asBool(result, fn)
		if err != nil {
			return 0, false, err
		}
		if match {
			return int64(i), true, nil
		}
	}
	return 0, false, nil
}

// Filter returns a new array with only the elements for which fn returns
// true, in their original order. It visits every element.
func (a *Array) Filter(fn Callable) (*Array, error) {
	if err := exactArity(fn, 1, "function must have exactly one parameter"); err != nil {
		return nil, err
	}
	kept := []Object{}
	for _, item := range a.elements.Items() {
		result, err := fn.Call(NewArgs(fn.Span(), item))
		if err != nil {
			return nil, err
		}
		match, err := asBool(result, fn)
		if err != nil {
			return nil, err
		}
		if match {
			kept = append(kept, item)
		}
	}
	return NewArray(kept...), nil
}

// Map transforms each element with fn, in order. A two-parameter callable
// additionally receives the zero-based index as its first argument.
func (a *Array) Map(fn Callable) (*Array, error) {
	count, known := fn.Arity()
	if known && (count < 1 || count > 2) {
		return nil, diag.Errorf(fn.Span(), "function must have one or two parameters")
	}
	enumerate := known && count == 2

	mapped := make([]Object, 0, a.elements.Len())
	for i, item := range a.elements.Items() {
		args := []Object{item}
		if enumerate {
			args = []Object{&Integer{Value: int64(i)}, item}
		}
		result, err := fn.Call(NewArgs(fn.Span(), args...))
		if err != nil {
			return nil, err
		}
		mapped = append(mapped, result)
	}
	return NewArray(mapped...), nil
}

// Fold sequentially rewrites the accumulator as fn(acc, element) for each
// element, starting from init, and returns the final accumulator.
func (a *Array) Fold(init Object, fn Callable) (Object, error) {
	if err := exactArity(fn, 2, "function must have exactly two parameters"); err != nil {
		return nil, err
	}
	acc := init
	for _, item := range a.elements.Items() {
		result, err := fn.Call(NewArgs(fn.Span(), acc, item))
		if err != nil {
			return nil, err
		}
		acc = result
	}
	return acc, nil
}

// Any reports whether fn returns true for some element, stopping at the
// first match.
func (a *Array) Any(fn Callable) (bool, error) {
	if err := exactArity(fn, 1, "function must have exactly one parameter"); err != nil {
		return false, err
	}
	for _, item := range a.elements.Items() {
		result, err := fn.Call(NewArgs(fn.Span(), item))
		if err != nil {
			return false, err
		}
		match, err := asBool(result, fn)
		if err != nil {
			return false, err
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

// All reports whether fn returns true for every element, stopping at the
// first false result.
func (a *Array) All(fn Callable) (bool, error) {
	if err := exactArity(fn, 1, "function must have exactly one parameter"); err != nil {
		return false, err
	}
	for _, item := range a.elements.Items() {
		result, err := fn.Call(NewArgs(fn.Span(), item))
		if err != nil {
			return false, err
		}
		match, err := asBool(result, fn)
		if err != nil {
			return false, err
		}
		if !match {
			return false, nil
		}
	}
	return true, nil
}

// Flatten returns a new array with nested arrays inlined at any depth,
// left to right, depth first.
func (a *Array) Flatten() *Array {
	flat := make([]Object, 0, a.elements.Len())
	for _, item := range a.elements.Items() {
		if nested, ok := item.(*Array); ok {
			flat = append(flat, nested.Flatten().Items()...)
		} else {
			flat = append(flat, item)
		}
	}
	return NewArray(flat...)
}

// Rev returns a new array with the elements in reverse order.
func (a *Array) Rev() *Array {
	items := a.elements.Items()
	reversed := make([]Object, len(items))
	for i, item := range items {
		reversed[len(items)-1-i] = item
	}
	return NewArray(reversed...)
}

// Join combines all elements into one value, interposing sep between each
// consecutive pair. When last is non-nil and the array has more than one
// element, it replaces sep exactly once, between the final two elements.
// A nil sep means absent; the accumulation starts from NIL.
func (a *Array) Join(sep, last Object) (Object, error) {
	length := a.elements.Len()
	if sep == nil {
		sep = NIL
	}

	var result Object = NIL
	var err error
	for i, value := range a.elements.Items() {
		if i > 0 {
			if i+1 == length && last != nil {
				result, err = Join(result, last)
				last = nil
			} else {
				result, err = Join(result, sep)
			}
			if err != nil {
				return nil, err
			}
		}

		result, err = Join(result, value)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Sorted returns a new array ordered by the element partial order, keeping
// equal elements in their original relative order. An incomparable pair
// aborts with an error naming both type names; only the first such pair is
// reported.
func (a *Array) Sorted() (*Array, error) {
	var incomparable error

	sorted := make([]Object, a.elements.Len())
	copy(sorted, a.elements.Items())
	slices.SortStableFunc(sorted, func(x, y Object) int {
		order, known := Compare(x, y)
		if !known && incomparable == nil {
			incomparable = fmt.Errorf("cannot order %s and %s", x.Type(), y.Type())
		}
		return order
	})

	if incomparable != nil {
		return nil, incomparable
	}
	return NewArray(sorted...), nil
}

// Repeat returns a new array with the source elements cycled n times. A
// negative n, or a target length that overflows the platform size, fails
// naming the requested count.
func (a *Array) Repeat(n int64) (*Array, error) {
	length := a.elements.Len()
	if n < 0 || (n > 0 && uint64(length) > uint64(math.MaxInt)/uint64(n)) {
		return nil, fmt.Errorf("cannot repeat this array %d times", n)
	}
	if n == 0 || length == 0 {
		return NewArray(), nil
	}

	repeated := make([]Object, 0, length*int(n))
	for i := int64(0); i < n; i++ {
		repeated = append(repeated, a.elements.Items()...)
	}
	return NewArray(repeated...), nil
}

// Concat returns a new array with the elements of both arrays.
func (a *Array) Concat(b *Array) *Array {
	combined := make([]Object, 0, a.elements.Len()+b.elements.Len())
	combined = append(combined, a.elements.Items()...)
	combined = append(combined, b.elements.Items()...)
	return NewArray(combined...)
}

// Extend appends all elements of b to a.
func (a *Array) Extend(b *Array) {
	for _, item := range b.elements.Items() {
		a.elements.Push(item)
	}
}
