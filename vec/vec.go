package vec

import "sync/atomic"

// Vec is a reference counted vector with copy-on-write semantics. Clone
// registers a new owner in O(1); a mutating call copies the backing storage
// first when another owner still holds it, so no two owners ever observe
// each other's writes.
//
// A Vec must be shared through Clone, never by copying the struct. Mutation
// is single-threaded per owner; the reference count is the only state
// touched across owners and it is updated atomically.
type Vec[T any] struct {
	s *shared[T]
}

type shared[T any] struct {
	refs  atomic.Int64
	items []T
}

func newShared[T any](items []T) *shared[T] {
	s := &shared[T]{items: items}
	s.refs.Store(1)
	return s
}

// Of builds a Vec owning the given items.
func Of[T any](items ...T) Vec[T] {
	if len(items) == 0 {
		return Vec[T]{}
	}
	return Vec[T]{s: newShared(items)}
}

// FromSlice builds a Vec that takes ownership of items. The caller must not
// use the slice afterwards.
func FromSlice[T any](items []T) Vec[T] {
	if len(items) == 0 {
		return Vec[T]{}
	}
	return Vec[T]{s: newShared(items)}
}

// Clone registers a new owner of the backing storage.
func (v Vec[T]) Clone() Vec[T] {
	if v.s != nil {
		v.s.refs.Add(1)
	}
	return Vec[T]{s: v.s}
}

func (v Vec[T]) Len() int {
	if v.s == nil {
		return 0
	}
	return len(v.s.items)
}

func (v Vec[T]) Get(i int) T {
	return v.s.items[i]
}

// Items returns the backing slice in order. Callers must not write through
// it.
func (v Vec[T]) Items() []T {
	if v.s == nil {
		return nil
	}
	return v.s.items
}

// SliceOf copies the subrange [start, end) into a fresh Vec.
func (v Vec[T]) SliceOf(start, end int) Vec[T] {
	items := make([]T, end-start)
	copy(items, v.Items()[start:end])
	return FromSlice(items)
}

// exclusive returns storage held by this Vec alone, forking the buffer
// when other owners exist.
func (v *Vec[T]) exclusive() *shared[T] {
	if v.s == nil {
		v.s = newShared[T](nil)
		return v.s
	}
	if v.s.refs.Load() > 1 {
		items := make([]T, len(v.s.items))
		copy(items, v.s.items)
		v.s.refs.Add(-1)
		v.s = newShared(items)
	}
	return v.s
}

func (v *Vec[T]) Set(i int, item T) {
	v.exclusive().items[i] = item
}

// GetMut returns a writable slot for the item at i, valid until the next
// mutating call.
func (v *Vec[T]) GetMut(i int) *T {
	return &v.exclusive().items[i]
}

func (v *Vec[T]) Push(item T) {
	s := v.exclusive()
	s.items = append(s.items, item)
}

func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	s := v.exclusive()
	if len(s.items) == 0 {
		return zero, false
	}
	last := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return last, true
}

// Insert places item at offset i, shifting subsequent items back. The
// offset must be within [0, Len()].
func (v *Vec[T]) Insert(i int, item T) {
	s := v.exclusive()
	s.items = append(s.items, item)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = item
}

// Remove deletes and returns the item at offset i, shifting subsequent
// items forward. The offset must be within [0, Len()).
func (v *Vec[T]) Remove(i int) T {
	var zero T
	s := v.exclusive()
	item := s.items[i]
	copy(s.items[i:], s.items[i+1:])
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return item
}
