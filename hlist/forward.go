package hlist

import (
	"cmp"
	"iter"

	hetero "github.com/venkatarajasekhar/HCL-2"
	"go.llib.dev/frameless/pkg/reflectkit"
)

// Size returns the element count of the selected slot.
func Size[U any](l *List, occurrence ...int) (int, error) {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		return 0, err
	}
	return c.Len(), nil
}

// IsEmpty tells whether the selected slot holds no elements.
func IsEmpty[U any](l *List, occurrence ...int) (bool, error) {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		return false, err
	}
	return c.IsEmpty(), nil
}

// Front returns the first element of the selected slot.
func Front[U any](l *List, occurrence ...int) (U, error) {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		var zero U
		return zero, err
	}
	val, ok := c.First()
	if !ok {
		var zero U
		return zero, hetero.ErrOutOfRange.F("the list is empty")
	}
	return val, nil
}

// Back returns the last element of the selected slot.
func Back[U any](l *List, occurrence ...int) (U, error) {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		var zero U
		return zero, err
	}
	val, ok := c.Last()
	if !ok {
		var zero U
		return zero, hetero.ErrOutOfRange.F("the list is empty")
	}
	return val, nil
}

// PushBack appends a value to the selected slot.
func PushBack[U any](l *List, val U, occurrence ...int) error {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		return err
	}
	c.Append(val)
	return nil
}

// PushFront prepends a value to the selected slot.
func PushFront[U any](l *List, val U, occurrence ...int) error {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		return err
	}
	c.Prepend(val)
	return nil
}

// PopBack removes and returns the last element of the selected slot.
func PopBack[U any](l *List, occurrence ...int) (U, error) {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		var zero U
		return zero, err
	}
	val, ok := c.Pop()
	if !ok {
		var zero U
		return zero, hetero.ErrOutOfRange.F("the list is empty")
	}
	return val, nil
}

// PopFront removes and returns the first element of the selected slot.
func PopFront[U any](l *List, occurrence ...int) (U, error) {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		var zero U
		return zero, err
	}
	val, ok := c.Shift()
	if !ok {
		var zero U
		return zero, hetero.ErrOutOfRange.F("the list is empty")
	}
	return val, nil
}

// Insert places a value before the given position of the selected slot.
func Insert[U any](l *List, index int, val U, occurrence ...int) error {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		return err
	}
	if !c.Insert(index, val) {
		return hetero.ErrOutOfRange.F("no position %d to insert at", index)
	}
	return nil
}

// Erase removes the element at the given position of the selected slot.
func Erase[U any](l *List, index int, occurrence ...int) error {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		return err
	}
	if !c.Delete(index) {
		return hetero.ErrOutOfRange.F("no element at position %d", index)
	}
	return nil
}

// Clear removes every element of the selected slot.
func Clear[U any](l *List, occurrence ...int) error {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		return err
	}
	c.Clear()
	return nil
}

// Assign replaces the whole content of the selected slot.
func Assign[U any](l *List, vals []U, occurrence ...int) error {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		return err
	}
	c.Assign(vals...)
	return nil
}

// Values yields the elements of the selected slot in list order.
func Values[U any](l *List, occurrence ...int) (iter.Seq[U], error) {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		return nil, err
	}
	return c.Iter(), nil
}

// Remove deletes every element of the selected slot that equals the given
// value and returns the number of removed elements.
func Remove[U comparable](l *List, val U, occurrence ...int) (int, error) {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		return 0, err
	}
	return c.RemoveIf(func(v U) bool { return v == val }), nil
}

// RemoveIf deletes every element of the selected slot satisfying the
// predicate and returns the number of removed elements.
func RemoveIf[U any](l *List, pred func(U) bool, occurrence ...int) (int, error) {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		return 0, err
	}
	return c.RemoveIf(pred), nil
}

// Unique deletes every element of the selected slot that equals its
// predecessor and returns the number of removed elements.
func Unique[U comparable](l *List, occurrence ...int) (int, error) {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		return 0, err
	}
	return c.UniqueFunc(func(a, b U) bool { return a == b }), nil
}

// UniqueFunc deletes every element of the selected slot that the given
// equality matches with its predecessor and returns the number of removed
// elements.
func UniqueFunc[U any](l *List, eq func(a, b U) bool, occurrence ...int) (int, error) {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		return 0, err
	}
	return c.UniqueFunc(eq), nil
}

// Sort sorts the selected slot in ascending order.
func Sort[U cmp.Ordered](l *List, occurrence ...int) error {
	return SortFunc(l, cmp.Less[U], occurrence...)
}

// SortFunc sorts the selected slot by the given ordering.
func SortFunc[U any](l *List, less func(a, b U) bool, occurrence ...int) error {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		return err
	}
	c.SortFunc(less)
	return nil
}

// Merge transfers every element of the other backing list into the selected
// slot, keeping ascending order. Both must already be sorted. The other
// list is empty afterwards.
func Merge[U cmp.Ordered](l *List, oth *Container[U], occurrence ...int) error {
	return MergeFunc(l, oth, cmp.Less[U], occurrence...)
}

// MergeFunc transfers every element of the other backing list into the
// selected slot, interleaving by the given ordering. Both must already be
// sorted by it. The other list is empty afterwards.
func MergeFunc[U any](l *List, oth *Container[U], less func(a, b U) bool, occurrence ...int) error {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		return err
	}
	c.MergeFunc(oth, less)
	return nil
}

// Splice transfers every element of the other backing list before the given
// position of the selected slot. The other list is empty afterwards.
func Splice[U any](l *List, index int, oth *Container[U], occurrence ...int) error {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		return err
	}
	if !c.Splice(index, oth) {
		return hetero.ErrOutOfRange.F("no position %d to splice at", index)
	}
	return nil
}

// Reverse reverses the element order of the selected slot.
func Reverse[U any](l *List, occurrence ...int) error {
	c, err := Get[U](l, occurrence...)
	if err != nil {
		return err
	}
	c.Reverse()
	return nil
}

// Each yields every U typed backing list of the aggregate in declaration
// order.
func Each[U any](l *List) iter.Seq[*Container[U]] {
	return func(yield func(*Container[U]) bool) {
		for cell := range l.reg.Cells(reflectkit.TypeOf[U]()) {
			if !yield(cell.(*Container[U])) {
				return
			}
		}
	}
}

// AllOf reports whether every element across all U typed slots satisfies the
// predicate. It is vacuously true when no such element exists.
func AllOf[U any](l *List, pred func(U) bool) bool {
	for c := range Each[U](l) {
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
func AnyOf[U any](l *List, pred func(U) bool) bool {
	for c := range Each[U](l) {
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
func NoneOf[U any](l *List, pred func(U) bool) bool {
	return !AnyOf(l, pred)
}
