// Package sbvec contains a growable array with explicit capacity control.
package sbvec

import (
	"fmt"
	"iter"
)

// Vector is a growable array of T.
//
// Unlike a plain slice, copying and moving are explicit:
// [*Vector.Clone] duplicates the elements into a new backing store,
// and [*Vector.Move] hands the backing store to a new Vector
// and leaves the source empty.
//
// The zero value is an empty vector ready for use.
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	// Only data[:size] holds live elements.
	// len(data) is the capacity.
	data []T
	size int

	grows int
}

// New returns an empty Vector with room for capacity elements.
// It panics if capacity is negative.
func New[T any](capacity int) *Vector[T] {
	if capacity < 0 {
		panic(fmt.Errorf("capacity must not be negative (got %d)", capacity))
	}

	v := new(Vector[T])
	if capacity > 0 {
		v.data = make([]T, capacity)
	}
	return v
}

// Size returns the number of elements in v.
func (v *Vector[T]) Size() int { return v.size }

// Capacity returns the number of elements v can hold before reallocating.
func (v *Vector[T]) Capacity() int { return len(v.data) }

// Empty reports whether v holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Grows returns how many times v has reallocated its backing store.
func (v *Vector[T]) Grows() int { return v.grows }

// Reserve ensures v can hold at least n elements without reallocating.
// It never shrinks v.
func (v *Vector[T]) Reserve(n int) {
	if n > len(v.data) {
		v.realloc(n)
	}
}

// ShrinkToFit reallocates v so that its capacity equals its size.
func (v *Vector[T]) ShrinkToFit() {
	if len(v.data) != v.size {
		v.realloc(v.size)
	}
}

// PushBack appends x to v, growing the backing store if needed.
func (v *Vector[T]) PushBack(x T) {
	*v.EmplaceBack() = x
}

// EmplaceBack appends a zero T to v and returns a pointer to it,
// so the caller can construct the element in place.
//
// The pointer is only valid until the next call that may reallocate v.
func (v *Vector[T]) EmplaceBack() *T {
	v.ensure(v.size + 1)
	p := &v.data[v.size]
	v.size++
	return p
}

// At returns the element at index i,
// or an [OutOfRangeError] if i is not in [0, Size()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, OutOfRangeError{Index: i, Size: v.size}
	}
	return v.data[i], nil
}

// Set replaces the element at index i,
// or returns an [OutOfRangeError] if i is not in [0, Size()).
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.size {
		return OutOfRangeError{Index: i, Size: v.size}
	}
	v.data[i] = x
	return nil
}

// Front returns the first element, or [ErrEmpty].
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.data[0], nil
}

// Back returns the last element, or [ErrEmpty].
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.data[v.size-1], nil
}

// PopBack removes and returns the last element, or returns [ErrEmpty].
// Capacity is unchanged.
func (v *Vector[T]) PopBack() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	v.size--
	x := v.data[v.size]

	// Drop the reference so the old element can be collected.
	var zero T
	v.data[v.size] = zero
	return x, nil
}

// Clear removes all elements and keeps the capacity.
func (v *Vector[T]) Clear() {
	clear(v.data[:v.size])
	v.size = 0
}

// Resize sets the size of v to n.
// The first min(n, Size()) elements are kept;
// any new elements are zero values.
// It panics if n is negative.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic(fmt.Errorf("size must not be negative (got %d)", n))
	}

	if n < v.size {
		clear(v.data[n:v.size])
	} else {
		v.ensure(n)
	}
	v.size = n
}

// Clone returns an independent copy of v
// with the same elements and the same capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	c := new(Vector[T])
	if len(v.data) > 0 {
		c.data = make([]T, len(v.data))
		copy(c.data, v.data[:v.size])
	}
	c.size = v.size
	return c
}

// Move returns a Vector that takes over v's backing store.
// Nothing is copied.
// Afterwards v is empty with zero capacity, and remains usable.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{
		data:  v.data,
		size:  v.size,
		grows: v.grows,
	}
	*v = Vector[T]{}
	return m
}

// All returns an iterator over the index and value of every element in v.
// Modifying v during iteration has unspecified results.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// ensure grows v to hold at least n elements.
// Capacity at least doubles on each growth,
// so a sequence of pushes reallocates a logarithmic number of times.
func (v *Vector[T]) ensure(n int) {
	if n <= len(v.data) {
		return
	}
	v.realloc(max(n, 2*len(v.data)))
}

func (v *Vector[T]) realloc(capacity int) {
	var data []T
	if capacity > 0 {
		data = make([]T, capacity)
		copy(data, v.data[:v.size])
	}
	v.data = data
	v.grows++
}
