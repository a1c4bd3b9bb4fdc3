package hstack

import (
	hetero "github.com/venkatarajasekhar/HCL-2"
)

// Size returns the element count of the selected slot.
func Size[U any](st *Stack, occurrence ...int) (int, error) {
	c, err := Get[U](st, occurrence...)
	if err != nil {
		return 0, err
	}
	return c.Len(), nil
}

// IsEmpty tells whether the selected slot holds no elements.
func IsEmpty[U any](st *Stack, occurrence ...int) (bool, error) {
	c, err := Get[U](st, occurrence...)
	if err != nil {
		return false, err
	}
	return c.IsEmpty(), nil
}

// Top returns the top element of the selected slot without removing it.
func Top[U any](st *Stack, occurrence ...int) (U, error) {
	c, err := Get[U](st, occurrence...)
	if err != nil {
		var zero U
		return zero, err
	}
	val, ok := c.Top()
	if !ok {
		var zero U
		return zero, hetero.ErrOutOfRange.F("the stack is empty")
	}
	return val, nil
}

// Push places a value on top of the selected slot.
func Push[U any](st *Stack, val U, occurrence ...int) error {
	c, err := Get[U](st, occurrence...)
	if err != nil {
		return err
	}
	c.Push(val)
	return nil
}

// Pop removes and returns the top element of the selected slot.
func Pop[U any](st *Stack, occurrence ...int) (U, error) {
	c, err := Get[U](st, occurrence...)
	if err != nil {
		var zero U
		return zero, err
	}
	val, ok := c.Pop()
	if !ok {
		var zero U
		return zero, hetero.ErrOutOfRange.F("the stack is empty")
	}
	return val, nil
}
