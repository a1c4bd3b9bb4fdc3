package hdeq

import (
	"iter"

	hetero "github.com/venkatarajasekhar/HCL-2"
	"go.llib.dev/frameless/pkg/reflectkit"
)

// Size returns the element count of the selected slot.
func Size[U any](d *Deq, occurrence ...int) (int, error) {
	c, err := Get[U](d, occurrence...)
	if err != nil {
		return 0, err
	}
	return c.Len(), nil
}

// IsEmpty tells whether the selected slot holds no elements.
func IsEmpty[U any](d *Deq, occurrence ...int) (bool, error) {
	c, err := Get[U](d, occurrence...)
	if err != nil {
		return false, err
	}
	return c.IsEmpty(), nil
}

// At returns the index-th element of the selected slot, counted from the
// front.
func At[U any](d *Deq, index int, occurrence ...int) (U, error) {
	c, err := Get[U](d, occurrence...)
	if err != nil {
		var zero U
		return zero, err
	}
	val, ok := c.Lookup(index)
	if !ok {
		var zero U
		return zero, hetero.ErrOutOfRange.F("no element at position %d", index)
	}
	return val, nil
}

// SetAt replaces the index-th element of the selected slot.
func SetAt[U any](d *Deq, index int, val U, occurrence ...int) error {
	c, err := Get[U](d, occurrence...)
	if err != nil {
		return err
	}
	if !c.Set(index, val) {
		return hetero.ErrOutOfRange.F("no element at position %d", index)
	}
	return nil
}

// Front returns the front element of the selected slot.
func Front[U any](d *Deq, occurrence ...int) (U, error) {
	c, err := Get[U](d, occurrence...)
	if err != nil {
		var zero U
		return zero, err
	}
	val, ok := c.First()
	if !ok {
		var zero U
		return zero, hetero.ErrOutOfRange.F("the deque is empty")
	}
	return val, nil
}

// Back returns the back element of the selected slot.
func Back[U any](d *Deq, occurrence ...int) (U, error) {
	c, err := Get[U](d, occurrence...)
	if err != nil {
		var zero U
		return zero, err
	}
	val, ok := c.Last()
	if !ok {
		var zero U
		return zero, hetero.ErrOutOfRange.F("the deque is empty")
	}
	return val, nil
}

// PushBack appends a value to the back of the selected slot.
func PushBack[U any](d *Deq, val U, occurrence ...int) error {
	c, err := Get[U](d, occurrence...)
	if err != nil {
		return err
	}
	c.Append(val)
	return nil
}

// PushFront adds a value to the front of the selected slot.
func PushFront[U any](d *Deq, val U, occurrence ...int) error {
	c, err := Get[U](d, occurrence...)
	if err != nil {
		return err
	}
	c.Prepend(val)
	return nil
}

// PopBack removes and returns the back element of the selected slot.
func PopBack[U any](d *Deq, occurrence ...int) (U, error) {
	c, err := Get[U](d, occurrence...)
	if err != nil {
		var zero U
		return zero, err
	}
	val, ok := c.Pop()
	if !ok {
		var zero U
		return zero, hetero.ErrOutOfRange.F("the deque is empty")
	}
	return val, nil
}

// PopFront removes and returns the front element of the selected slot.
func PopFront[U any](d *Deq, occurrence ...int) (U, error) {
	c, err := Get[U](d, occurrence...)
	if err != nil {
		var zero U
		return zero, err
	}
	val, ok := c.Shift()
	if !ok {
		var zero U
		return zero, hetero.ErrOutOfRange.F("the deque is empty")
	}
	return val, nil
}

// Clear removes every element of the selected slot.
func Clear[U any](d *Deq, occurrence ...int) error {
	c, err := Get[U](d, occurrence...)
	if err != nil {
		return err
	}
	c.Clear()
	return nil
}

// Assign replaces the whole content of the selected slot.
func Assign[U any](d *Deq, vals []U, occurrence ...int) error {
	c, err := Get[U](d, occurrence...)
	if err != nil {
		return err
	}
	c.Assign(vals...)
	return nil
}

// Values yields the elements of the selected slot in front to back order.
func Values[U any](d *Deq, occurrence ...int) (iter.Seq[U], error) {
	c, err := Get[U](d, occurrence...)
	if err != nil {
		return nil, err
	}
	return c.Iter(), nil
}

// Each yields every U typed backing queue of the deque in declaration order.
func Each[U any](d *Deq) iter.Seq[*Container[U]] {
	return func(yield func(*Container[U]) bool) {
		for cell := range d.reg.Cells(reflectkit.TypeOf[U]()) {
			if !yield(cell.(*Container[U])) {
				return
			}
		}
	}
}

// AllOf reports whether every element across all U typed slots satisfies the
// predicate. It is vacuously true when no such element exists.
func AllOf[U any](d *Deq, pred func(U) bool) bool {
	for c := range Each[U](d) {
		for val := range c.Iter() {
			if !pred(val) {
				return false
			}
		}
	}
	return true
}

// AnyOf reports whether at least one element across all U typed slots
// satisfies the predicate.
func AnyOf[U any](d *Deq, pred func(U) bool) bool {
	for c := range Each[U](d) {
		for val := range c.Iter() {
			if pred(val) {
				return true
			}
		}
	}
	return false
}

// NoneOf reports whether no element across all U typed slots satisfies the
// predicate.
func NoneOf[U any](d *Deq, pred func(U) bool) bool {
	return !AnyOf(d, pred)
}
