// Package hetero provides heterogeneous containers that are addressed by
// element type and declaration occurrence instead of a single element index.
//
// The aggregate flavors live in their own subpackages (hvec, hdeq, hlist,
// hflist, hstack, harr). This package holds what they share, the error
// taxonomy, along with Adaptor, a type filtered view over a sequence that is
// already type erased.
package hetero

import (
	"iter"
	"reflect"

	"go.llib.dev/frameless/pkg/reflectkit"
)

// Adaptor is a type filtered view over a type erased sequence.
// It does not own the backing slice; whoever created the slice may keep
// mutating it and the Adaptor observes those changes.
//
// Filtering matches the exact dynamic type of each element, so an interface
// type argument never matches anything, and untyped nil elements belong to
// no type at all.
type Adaptor struct {
	vs *[]any
}

// Wrap returns an Adaptor over the given backing sequence.
func Wrap(vs *[]any) *Adaptor {
	return &Adaptor{vs: vs}
}

// Len returns the total number of elements in the backing sequence,
// regardless of their type.
func (a *Adaptor) Len() int {
	if a == nil || a.vs == nil {
		return 0
	}
	return len(*a.vs)
}

// At returns the index-th element of the backing sequence as is.
func (a *Adaptor) At(index int) (any, error) {
	if index < 0 || a.Len() <= index {
		return nil, ErrOutOfRange.F("no element at position %d", index)
	}
	return (*a.vs)[index], nil
}

// Set replaces the index-th element of the backing sequence and reports
// whether the position existed.
func (a *Adaptor) Set(index int, v any) bool {
	if index < 0 || a.Len() <= index {
		return false
	}
	(*a.vs)[index] = v
	return true
}

// Values yields the elements whose dynamic type is T, in sequence order.
func Values[T any](a *Adaptor) iter.Seq[T] {
	return func(yield func(T) bool) {
		if a == nil || a.vs == nil {
			return
		}
		typ := reflectkit.TypeOf[T]()
		for _, v := range *a.vs {
			if reflect.TypeOf(v) != typ {
				continue
			}
			if !yield(v.(T)) {
				return
			}
		}
	}
}

// Backward yields the elements whose dynamic type is T, in reverse sequence
// order.
func Backward[T any](a *Adaptor) iter.Seq[T] {
	return func(yield func(T) bool) {
		if a == nil || a.vs == nil {
			return
		}
		typ := reflectkit.TypeOf[T]()
		for i := len(*a.vs) - 1; 0 <= i; i-- {
			v := (*a.vs)[i]
			if reflect.TypeOf(v) != typ {
				continue
			}
			if !yield(v.(T)) {
				return
			}
		}
	}
}

// Size counts the elements whose dynamic type is T.
func Size[T any](a *Adaptor) int {
	var n int
	for range Values[T](a) {
		n++
	}
	return n
}

// IsEmpty tells whether the sequence holds no element of type T.
func IsEmpty[T any](a *Adaptor) bool {
	for range Values[T](a) {
		return false
	}
	return true
}

// First returns the first element of type T in sequence order.
func First[T any](a *Adaptor) (T, error) {
	for v := range Values[T](a) {
		return v, nil
	}
	var zero T
	return zero, ErrOutOfRange.F("no %s element in the sequence", reflectkit.TypeOf[T]())
}

// Last returns the last element of type T in sequence order.
func Last[T any](a *Adaptor) (T, error) {
	for v := range Backward[T](a) {
		return v, nil
	}
	var zero T
	return zero, ErrOutOfRange.F("no %s element in the sequence", reflectkit.TypeOf[T]())
}

// At returns the index-th element of type T, where the index counts only the
// elements of that type in sequence order.
func At[T any](a *Adaptor, index int) (T, error) {
	var zero T
	if a == nil || a.vs == nil {
		return zero, ErrOutOfRange.F("no %s element with filtered position %d", reflectkit.TypeOf[T](), index)
	}
	typ := reflectkit.TypeOf[T]()
	pos, ok := position(*a.vs, typ, index)
	if !ok {
		return zero, ErrOutOfRange.F("no %s element with filtered position %d", typ, index)
	}
	return (*a.vs)[pos].(T), nil
}

// Position translates a filtered position into an absolute one: it returns
// the backing sequence index of the index-th element of type T.
func Position[T any](a *Adaptor, index int) (int, error) {
	typ := reflectkit.TypeOf[T]()
	if a == nil || a.vs == nil {
		return 0, ErrOutOfRange.F("no %s element with filtered position %d", typ, index)
	}
	pos, ok := position(*a.vs, typ, index)
	if !ok {
		return 0, ErrOutOfRange.F("no %s element with filtered position %d", typ, index)
	}
	return pos, nil
}

// Swap exchanges the i-th element of type A with the j-th element of type B,
// where both positions count only the elements of the respective type.
// When A and B differ, the two payloads trade places in the erased sequence,
// so the filtered order of both types changes. It reports whether both
// positions resolved; nothing is changed otherwise.
func Swap[A, B any](a *Adaptor, i, j int) bool {
	if a == nil || a.vs == nil {
		return false
	}
	pi, ok := position(*a.vs, reflectkit.TypeOf[A](), i)
	if !ok {
		return false
	}
	pj, ok := position(*a.vs, reflectkit.TypeOf[B](), j)
	if !ok {
		return false
	}
	(*a.vs)[pi], (*a.vs)[pj] = (*a.vs)[pj], (*a.vs)[pi]
	return true
}

func position(vs []any, typ reflect.Type, index int) (int, bool) {
	if index < 0 {
		return 0, false
	}
	var seen int
	for i, v := range vs {
		if reflect.TypeOf(v) != typ {
			continue
		}
		if seen == index {
			return i, true
		}
		seen++
	}
	return 0, false
}
