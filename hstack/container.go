package hstack

// Container is the backing storage of a single stack slot, a slice used
// last-in-first-out. The zero value is ready to use.
type Container[T any] []T

// Len returns the number of stored elements.
func (c *Container[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(*c)
}

// IsEmpty tells whether the stack holds no elements.
func (c *Container[T]) IsEmpty() bool { return c.Len() == 0 }

// Push places the values on top of the stack, the last one topmost.
func (c *Container[T]) Push(vs ...T) {
	*c = append(*c, vs...)
}

// Pop removes and returns the top element. It reports false when the stack
// is empty.
func (c *Container[T]) Pop() (T, bool) {
	if len(*c) == 0 {
		var zero T
		return zero, false
	}
	index := len(*c) - 1
	v := (*c)[index]
	var zero T
	(*c)[index] = zero
	*c = (*c)[:index]
	return v, true
}

// Top returns the top element without removing it.
func (c *Container[T]) Top() (T, bool) {
	if c == nil || len(*c) == 0 {
		var zero T
		return zero, false
	}
	return (*c)[len(*c)-1], true
}

// Swap exchanges the content of the two stacks.
func (c *Container[T]) Swap(oth *Container[T]) {
	*c, *oth = *oth, *c
}
