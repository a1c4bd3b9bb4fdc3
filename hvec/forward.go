package hvec

import (
	"iter"

	hetero "github.com/venkatarajasekhar/HCL-2"
	"go.llib.dev/frameless/pkg/reflectkit"
)

// Size returns the element count of the selected slot.
func Size[U any](v *Vec, occurrence ...int) (int, error) {
	c, err := Get[U](v, occurrence...)
	if err != nil {
		return 0, err
	}
	return c.Len(), nil
}

// IsEmpty tells whether the selected slot holds no elements.
func IsEmpty[U any](v *Vec, occurrence ...int) (bool, error) {
	c, err := Get[U](v, occurrence...)
	if err != nil {
		return false, err
	}
	return c.IsEmpty(), nil
}

// Cap returns the capacity of the selected slot's backing storage.
func Cap[U any](v *Vec, occurrence ...int) (int, error) {
	c, err := Get[U](v, occurrence...)
	if err != nil {
		return 0, err
	}
	return c.Cap(), nil
}

// At returns the index-th element of the selected slot.
func At[U any](v *Vec, index int, occurrence ...int) (U, error) {
	c, err := Get[U](v, occurrence...)
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
func SetAt[U any](v *Vec, index int, val U, occurrence ...int) error {
	c, err := Get[U](v, occurrence...)
	if err != nil {
		return err
	}
	if !c.Set(index, val) {
		return hetero.ErrOutOfRange.F("no element at position %d", index)
	}
	return nil
}

// Front returns the first element of the selected slot.
func Front[U any](v *Vec, occurrence ...int) (U, error) {
	c, err := Get[U](v, occurrence...)
	if err != nil {
		var zero U
		return zero, err
	}
	val, ok := c.First()
	if !ok {
		var zero U
		return zero, hetero.ErrOutOfRange.F("the sequence is empty")
	}
	return val, nil
}

// Back returns the last element of the selected slot.
func Back[U any](v *Vec, occurrence ...int) (U, error) {
	c, err := Get[U](v, occurrence...)
	if err != nil {
		var zero U
		return zero, err
	}
	val, ok := c.Last()
	if !ok {
		var zero U
		return zero, hetero.ErrOutOfRange.F("the sequence is empty")
	}
	return val, nil
}

// PushBack appends a value to the selected slot.
func PushBack[U any](v *Vec, val U, occurrence ...int) error {
	c, err := Get[U](v, occurrence...)
	if err != nil {
		return err
	}
	c.Append(val)
	return nil
}

// PopBack removes and returns the last element of the selected slot.
func PopBack[U any](v *Vec, occurrence ...int) (U, error) {
	c, err := Get[U](v, occurrence...)
	if err != nil {
		var zero U
		return zero, err
	}
	val, ok := c.Pop()
	if !ok {
		var zero U
		return zero, hetero.ErrOutOfRange.F("the sequence is empty")
	}
	return val, nil
}

// Insert places a value before the given position of the selected slot.
func Insert[U any](v *Vec, index int, val U, occurrence ...int) error {
	c, err := Get[U](v, occurrence...)
	if err != nil {
		return err
	}
	if !c.Insert(index, val) {
		return hetero.ErrOutOfRange.F("no position %d to insert at", index)
	}
	return nil
}

// Erase removes the element at the given position of the selected slot.
func Erase[U any](v *Vec, index int, occurrence ...int) error {
	c, err := Get[U](v, occurrence...)
	if err != nil {
		return err
	}
	if !c.Delete(index) {
		return hetero.ErrOutOfRange.F("no element at position %d", index)
	}
	return nil
}

// Clear removes every element of the selected slot.
func Clear[U any](v *Vec, occurrence ...int) error {
	c, err := Get[U](v, occurrence...)
	if err != nil {
		return err
	}
	c.Clear()
	return nil
}

// Resize changes the element count of the selected slot, padding with zero
// values on growth.
func Resize[U any](v *Vec, length int, occurrence ...int) error {
	c, err := Get[U](v, occurrence...)
	if err != nil {
		return err
	}
	c.Resize(length)
	return nil
}

// Reserve grows the capacity of the selected slot by n more elements.
func Reserve[U any](v *Vec, n int, occurrence ...int) error {
	c, err := Get[U](v, occurrence...)
	if err != nil {
		return err
	}
	c.Grow(n)
	return nil
}

// Assign replaces the whole content of the selected slot.
func Assign[U any](v *Vec, vals []U, occurrence ...int) error {
	c, err := Get[U](v, occurrence...)
	if err != nil {
		return err
	}
	c.Assign(vals...)
	return nil
}

// Values yields the elements of the selected slot in sequence order.
func Values[U any](v *Vec, occurrence ...int) (iter.Seq[U], error) {
	c, err := Get[U](v, occurrence...)
	if err != nil {
		return nil, err
	}
	return c.Iter(), nil
}

// Each yields every U typed backing sequence of the vector in declaration
// order.
func Each[U any](v *Vec) iter.Seq[*Container[U]] {
	return func(yield func(*Container[U]) bool) {
		for cell := range v.reg.Cells(reflectkit.TypeOf[U]()) {
			if !yield(cell.(*Container[U])) {
				return
			}
		}
	}
}

// AllOf reports whether every element across all U typed slots satisfies the
// predicate. It is vacuously true when no such element exists.
func AllOf[U any](v *Vec, pred func(U) bool) bool {
	for c := range Each[U](v) {
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
func AnyOf[U any](v *Vec, pred func(U) bool) bool {
	for c := range Each[U](v) {
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
func NoneOf[U any](v *Vec, pred func(U) bool) bool {
	return !AnyOf(v, pred)
}
