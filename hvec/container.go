package hvec

import (
	"iter"
	"slices"

	"go.llib.dev/frameless/pkg/slicekit"
	"go.llib.dev/frameless/pkg/zerokit"
)

// Container is the backing sequence of a single vector slot.
// The zero value is ready to use.
type Container[T any] struct {
	vs []T
}

// Len returns the number of stored elements.
func (c *Container[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.vs)
}

// IsEmpty tells whether the sequence holds no elements.
func (c *Container[T]) IsEmpty() bool { return c.Len() == 0 }

// Cap returns the capacity of the backing storage.
func (c *Container[T]) Cap() int {
	if c == nil {
		return 0
	}
	return cap(c.vs)
}

// Lookup returns the element at the given position.
func (c *Container[T]) Lookup(index int) (T, bool) {
	if c == nil || index < 0 || len(c.vs) <= index {
		var zero T
		return zero, false
	}
	return c.vs[index], true
}

// Set replaces the element at the given position and reports whether the
// position existed.
func (c *Container[T]) Set(index int, v T) bool {
	if index < 0 || len(c.vs) <= index {
		return false
	}
	c.vs[index] = v
	return true
}

// First returns the first element of the sequence.
func (c *Container[T]) First() (T, bool) {
	if c == nil {
		var zero T
		return zero, false
	}
	return slicekit.First(c.vs)
}

// Last returns the last element of the sequence.
func (c *Container[T]) Last() (T, bool) {
	if c == nil {
		var zero T
		return zero, false
	}
	return slicekit.Last(c.vs)
}

// Append adds the values to the end of the sequence.
func (c *Container[T]) Append(vs ...T) {
	c.vs = append(c.vs, vs...)
}

// Pop removes and returns the last element. It reports false when the
// sequence is empty.
func (c *Container[T]) Pop() (T, bool) {
	if len(c.vs) == 0 {
		var zero T
		return zero, false
	}
	index := len(c.vs) - 1
	v := c.vs[index]
	var zero T
	c.vs[index] = zero
	c.vs = c.vs[:index]
	return v, true
}

// Insert places the values before the given position.
// The position may equal Len, which appends.
func (c *Container[T]) Insert(index int, vs ...T) bool {
	if index < 0 || len(c.vs) < index {
		return false
	}
	c.vs = slices.Insert(c.vs, index, vs...)
	return true
}

// Delete removes the element at the given position.
func (c *Container[T]) Delete(index int) bool {
	if index < 0 || len(c.vs) <= index {
		return false
	}
	c.vs = slices.Delete(c.vs, index, index+1)
	return true
}

// DeleteRange removes the elements of the [i, j) position range.
func (c *Container[T]) DeleteRange(i, j int) bool {
	if i < 0 || j < i || len(c.vs) < j {
		return false
	}
	c.vs = slices.Delete(c.vs, i, j)
	return true
}

// Clear removes every element while keeping the backing storage.
func (c *Container[T]) Clear() {
	clear(c.vs)
	c.vs = c.vs[:0]
}

// Grow reserves capacity for n more elements.
func (c *Container[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	c.vs = slices.Grow(c.vs, n)
}

// Clip removes unused capacity from the backing storage.
func (c *Container[T]) Clip() {
	c.vs = slices.Clip(c.vs)
}

// Resize changes the element count to the given length. Shrinking discards
// the tail, growing pads with the optional fill value or the zero value.
func (c *Container[T]) Resize(length int, fill ...T) {
	if length < 0 {
		length = 0
	}
	if length <= len(c.vs) {
		clear(c.vs[length:])
		c.vs = c.vs[:length]
		return
	}
	pad := zerokit.Coalesce(fill...)
	for len(c.vs) < length {
		c.vs = append(c.vs, pad)
	}
}

// Assign replaces the whole content of the sequence with the given values.
func (c *Container[T]) Assign(vs ...T) {
	clear(c.vs)
	c.vs = append(c.vs[:0], vs...)
}

// ToSlice returns a copy of the sequence's content.
func (c *Container[T]) ToSlice() []T {
	if c == nil {
		return nil
	}
	return slices.Clone(c.vs)
}

// Iter yields the elements in sequence order.
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

// IterReverse yields the elements in reverse sequence order.
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

// Swap exchanges the content of the two sequences.
func (c *Container[T]) Swap(oth *Container[T]) {
	c.vs, oth.vs = oth.vs, c.vs
}
