package harr

import (
	"iter"
	"slices"

	"go.llib.dev/frameless/pkg/slicekit"
)

// Container is the backing storage of a single array slot. Its length is
// fixed at construction and every element exists zero valued from the
// start.
type Container[T any] struct {
	vs []T
}

// Make builds an array container of the given length.
func Make[T any](length int) Container[T] {
	if length < 0 {
		length = 0
	}
	return Container[T]{vs: make([]T, length)}
}

// Len returns the fixed length of the array.
func (c *Container[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.vs)
}

// IsEmpty tells whether the array has zero length.
func (c *Container[T]) IsEmpty() bool { return c.Len() == 0 }

// Lookup returns the element at the given position.
func (c *Container[T]) Lookup(index int) (T, bool) {
	if c == nil || index < 0 || len(c.vs) <= index {
		var zero T
		return zero, false
	}
	return c.vs[index], true
}

// Set replaces the element at the given position and reports whether the
// position exists.
func (c *Container[T]) Set(index int, v T) bool {
	if index < 0 || len(c.vs) <= index {
		return false
	}
	c.vs[index] = v
	return true
}

// First returns the first element of the array.
func (c *Container[T]) First() (T, bool) {
	if c == nil {
		var zero T
		return zero, false
	}
	return slicekit.First(c.vs)
}

// Last returns the last element of the array.
func (c *Container[T]) Last() (T, bool) {
	if c == nil {
		var zero T
		return zero, false
	}
	return slicekit.Last(c.vs)
}

// Fill sets every element of the array to the given value.
func (c *Container[T]) Fill(v T) {
	for i := range c.vs {
		c.vs[i] = v
	}
}

// ToSlice returns a copy of the array's content.
func (c *Container[T]) ToSlice() []T {
	if c == nil {
		return nil
	}
	return slices.Clone(c.vs)
}

// Iter yields the elements in array order.
func (c *Container[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c == nil {
			return
		}
		for _, v := range c.vs {
			if !yield(v) {
				return
			}
		}
	}
}

// IterReverse yields the elements in reverse array order.
func (c *Container[T]) IterReverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c == nil {
			return
		}
		for _, v := range slicekit.IterReverse(c.vs) {
			if !yield(v) {
				return
			}
		}
	}
}

// Swap exchanges the content of two arrays of the same length. It reports
// false when the lengths differ.
func (c *Container[T]) Swap(oth *Container[T]) bool {
	if len(c.vs) != len(oth.vs) {
		return false
	}
	c.vs, oth.vs = oth.vs, c.vs
	return true
}
