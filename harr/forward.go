package harr

import (
	"iter"

	hetero "github.com/venkatarajasekhar/HCL-2"
	"go.llib.dev/frameless/pkg/reflectkit"
)

// Size returns the fixed length of the selected slot.
func Size[U any](a *Arr, occurrence ...int) (int, error) {
	c, err := Get[U](a, occurrence...)
	if err != nil {
		return 0, err
	}
	return c.Len(), nil
}

// IsEmpty tells whether the selected slot has zero length.
func IsEmpty[U any](a *Arr, occurrence ...int) (bool, error) {
	c, err := Get[U](a, occurrence...)
	if err != nil {
		return false, err
	}
	return c.IsEmpty(), nil
}

// At returns the index-th element of the selected slot.
func At[U any](a *Arr, index int, occurrence ...int) (U, error) {
	c, err := Get[U](a, occurrence...)
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
func SetAt[U any](a *Arr, index int, val U, occurrence ...int) error {
	c, err := Get[U](a, occurrence...)
	if err != nil {
		return err
	}
	if !c.Set(index, val) {
		return hetero.ErrOutOfRange.F("no element at position %d", index)
	}
	return nil
}

// Front returns the first element of the selected slot.
func Front[U any](a *Arr, occurrence ...int) (U, error) {
	c, err := Get[U](a, occurrence...)
	if err != nil {
		var zero U
		return zero, err
	}
	val, ok := c.First()
	if !ok {
		var zero U
		return zero, hetero.ErrOutOfRange.F("the array has zero length")
	}
	return val, nil
}

// Back returns the last element of the selected slot.
func Back[U any](a *Arr, occurrence ...int) (U, error) {
	c, err := Get[U](a, occurrence...)
	if err != nil {
		var zero U
		return zero, err
	}
	val, ok := c.Last()
	if !ok {
		var zero U
		return zero, hetero.ErrOutOfRange.F("the array has zero length")
	}
	return val, nil
}

// Fill sets every element of the selected slot to the given value.
func Fill[U any](a *Arr, val U, occurrence ...int) error {
	c, err := Get[U](a, occurrence...)
	if err != nil {
		return err
	}
	c.Fill(val)
	return nil
}

// Values yields the elements of the selected slot in array order.
func Values[U any](a *Arr, occurrence ...int) (iter.Seq[U], error) {
	c, err := Get[U](a, occurrence...)
	if err != nil {
		return nil, err
	}
	return c.Iter(), nil
}

// Each yields every U typed backing array of the aggregate in declaration
// order.
func Each[U any](a *Arr) iter.Seq[*Container[U]] {
	return func(yield func(*Container[U]) bool) {
		for cell := range a.reg.Cells(reflectkit.TypeOf[U]()) {
			if !yield(cell.(*Container[U])) {
				return
			}
		}
	}
}

// AllOf reports whether every element across all U typed slots satisfies the
// predicate. It is vacuously true when no such element exists.
func AllOf[U any](a *Arr, pred func(U) bool) bool {
	for c := range Each[U](a) {
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
func AnyOf[U any](a *Arr, pred func(U) bool) bool {
	for c := range Each[U](a) {
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
func NoneOf[U any](a *Arr, pred func(U) bool) bool {
	return !AnyOf(a, pred)
}
