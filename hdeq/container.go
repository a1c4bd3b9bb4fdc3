package hdeq

import (
	"iter"

	"go.llib.dev/frameless/pkg/slicekit"
)

// Container is the backing store of a single deque slot, a double ended
// queue maintained over a ring buffer. The zero value is ready to use.
type Container[T any] struct {
	vs   []T
	head int // index of the first element
	tail int // index of the first free position after the last element
	// distinguishes an empty buffer from one using its whole capacity
	nonEmpty bool
}

// Len returns the number of stored elements.
func (c *Container[T]) Len() int {
	if c == nil || !c.nonEmpty {
		return 0
	}
	if c.head < c.tail {
		return c.tail - c.head
	}
	if c.head == c.tail {
		return cap(c.vs)
	}
	return cap(c.vs) + c.tail - c.head
}

// IsEmpty tells whether the deque holds no elements.
func (c *Container[T]) IsEmpty() bool { return c.Len() == 0 }

// Cap returns the capacity of the backing storage.
func (c *Container[T]) Cap() int {
	if c == nil {
		return 0
	}
	return cap(c.vs)
}

// Lookup returns the element at the given position, counted from the front.
func (c *Container[T]) Lookup(index int) (T, bool) {
	if c == nil || index < 0 || c.Len() <= index {
		var zero T
		return zero, false
	}
	return c.vs[(c.head+index)%cap(c.vs)], true
}

// Set replaces the element at the given position and reports whether the
// position existed.
func (c *Container[T]) Set(index int, v T) bool {
	if index < 0 || c.Len() <= index {
		return false
	}
	c.vs[(c.head+index)%cap(c.vs)] = v
	return true
}

// First returns the front element.
func (c *Container[T]) First() (T, bool) {
	if c == nil || !c.nonEmpty {
		var zero T
		return zero, false
	}
	return c.vs[c.head], true
}

// Last returns the back element.
func (c *Container[T]) Last() (T, bool) {
	if c == nil || !c.nonEmpty {
		var zero T
		return zero, false
	}
	return c.vs[(cap(c.vs)+c.tail-1)%cap(c.vs)], true
}

// Append adds the values to the back of the deque.
func (c *Container[T]) Append(vs ...T) {
	for _, v := range vs {
		c.append(v)
	}
}

func (c *Container[T]) append(v T) {
	c.maybeGrow()
	c.vs[c.tail] = v
	c.tail = (c.tail + 1) % cap(c.vs)
	c.nonEmpty = true
}

// Prepend adds the values to the front of the deque, keeping their order.
func (c *Container[T]) Prepend(vs ...T) {
	if len(vs) == 0 {
		return
	}
	for _, v := range slicekit.IterReverse(vs) {
		c.prepend(v)
	}
}

func (c *Container[T]) prepend(v T) {
	c.maybeGrow()
	c.head = (cap(c.vs) + c.head - 1) % cap(c.vs)
	c.vs[c.head] = v
	c.nonEmpty = true
}

// Pop removes and returns the back element. It reports false when the deque
// is empty.
func (c *Container[T]) Pop() (T, bool) {
	if c.Len() == 0 {
		var zero T
		return zero, false
	}
	last := (cap(c.vs) + c.tail - 1) % cap(c.vs)
	v := c.vs[last]
	var zero T
	c.vs[last] = zero
	c.tail = last
	if c.tail == c.head {
		c.nonEmpty = false
	}
	return v, true
}

// Shift removes and returns the front element. It reports false when the
// deque is empty.
func (c *Container[T]) Shift() (T, bool) {
	if c.Len() == 0 {
		var zero T
		return zero, false
	}
	v := c.vs[c.head]
	var zero T
	c.vs[c.head] = zero
	c.head = (c.head + 1) % cap(c.vs)
	if c.head == c.tail {
		c.nonEmpty = false
	}
	return v, true
}

// Clear removes every element while keeping the backing storage.
func (c *Container[T]) Clear() {
	clear(c.vs)
	c.head, c.tail = 0, 0
	c.nonEmpty = false
}

// Grow reserves capacity for n more elements.
func (c *Container[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	if need := c.Len() + n; cap(c.vs) < need {
		c.grow(need)
	}
}

// Assign replaces the whole content of the deque with the given values.
func (c *Container[T]) Assign(vs ...T) {
	c.Clear()
	c.Append(vs...)
}

// ToSlice returns the content of the deque in front to back order.
func (c *Container[T]) ToSlice() []T {
	var vs []T
	for v := range c.Iter() {
		vs = append(vs, v)
	}
	return vs
}

// Iter yields the elements in front to back order.
func (c *Container[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c == nil {
			return
		}
		for i, length := 0, c.Len(); i < length; i++ {
			if !yield(c.vs[(c.head+i)%cap(c.vs)]) {
				return
			}
		}
	}
}

// IterReverse yields the elements in back to front order.
func (c *Container[T]) IterReverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c == nil {
			return
		}
		for i := c.Len() - 1; 0 <= i; i-- {
			if !yield(c.vs[(c.head+i)%cap(c.vs)]) {
				return
			}
		}
	}
}

// Swap exchanges the content of the two deques.
func (c *Container[T]) Swap(oth *Container[T]) {
	*c, *oth = *oth, *c
}

func (c *Container[T]) maybeGrow() {
	if c.Len() != cap(c.vs) {
		return
	}
	n := 2 * cap(c.vs)
	if n == 0 {
		n = 1
	}
	c.grow(n)
}

// grow moves the content into a fresh buffer of capacity n, compacting the
// elements to the buffer's start. n must exceed the current length.
func (c *Container[T]) grow(n int) {
	buf := make([]T, n)
	length := c.Len()
	if c.head < c.tail {
		copy(buf, c.vs[c.head:c.tail])
	} else if 0 < length {
		idx := copy(buf, c.vs[c.head:])
		copy(buf[idx:], c.vs[:c.tail])
	}
	c.vs = buf
	c.head = 0
	c.tail = length
}
