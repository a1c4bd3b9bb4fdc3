// Package harr provides the heterogeneous array: an aggregate declaring an
// ordered list of element types, each with its own fixed length backing
// array, where a slot is addressed by its element type and declaration
// occurrence.
package harr

import (
	"reflect"

	hetero "github.com/venkatarajasekhar/HCL-2"
	"github.com/venkatarajasekhar/HCL-2/internal/typereg"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
)

// Type is a single entry of an Arr's declared type list.
type Type struct {
	rtype  reflect.Type
	length int
	alloc  func() any
	copy   func(dst, src any)
}

// Of declares an array slot holding length elements of type T.
func Of[T any](length int) Type {
	if length < 0 {
		length = 0
	}
	return Type{
		rtype:  reflectkit.TypeOf[T](),
		length: length,
		alloc: func() any {
			c := Make[T](length)
			return &c
		},
		copy: func(dst, src any) {
			d, s := dst.(*Container[T]), src.(*Container[T])
			copy(d.vs, s.vs)
		},
	}
}

// Arr is a heterogeneous array.
//
// The same type may be declared any number of times in its type list; every
// repetition owns a separate backing array, and type indexed operations
// single one out with the trailing occurrence argument, which defaults to
// the first repetition. Every element of every slot exists zero valued
// from construction; no slot can grow or shrink.
type Arr struct {
	types []Type
	reg   typereg.Registry
}

// New builds a heterogeneous array from the declared type list.
func New(types ...Type) *Arr {
	a := &Arr{types: types}
	slots := make([]typereg.Slot, len(types))
	for i, tok := range types {
		slots[i] = typereg.Slot{Type: tok.rtype, Cell: tok.alloc()}
	}
	a.reg = typereg.New(slots...)
	return a
}

// Len returns the number of declared slots.
func (a *Arr) Len() int { return a.reg.Len() }

// TypeAt returns the declared element type of the slot at the given
// declaration position.
func (a *Arr) TypeAt(index int) (reflect.Type, error) { return a.reg.TypeAt(index) }

// Types returns the declared type list in declaration order.
func (a *Arr) Types() []reflect.Type { return a.reg.Types() }

// Swap exchanges the backing arrays of two aggregates that declare the
// identical type list with the identical slot lengths.
func (a *Arr) Swap(oth *Arr) error {
	if !a.reg.SameTypes(&oth.reg) {
		return hetero.ErrNotDeclared.F("the other aggregate declares a different type list")
	}
	if !sameLengths(a.types, oth.types) {
		return hetero.ErrNotDeclared.F("the other aggregate declares different array lengths")
	}
	return a.reg.SwapCells(&oth.reg)
}

// CopyFrom replaces the content of every slot with a copy of the
// corresponding slot of the source aggregate. Both must declare the
// identical type list with the identical slot lengths.
func (a *Arr) CopyFrom(oth *Arr) error {
	if !a.reg.SameTypes(&oth.reg) {
		return hetero.ErrNotDeclared.F("the source aggregate declares a different type list")
	}
	if !sameLengths(a.types, oth.types) {
		return hetero.ErrNotDeclared.F("the source aggregate declares different array lengths")
	}
	copyCells(&a.reg, &oth.reg, a.types)
	return nil
}

// Clone returns an array with the same type list and a copy of every slot's
// content.
func (a *Arr) Clone() *Arr {
	c := New(a.types...)
	copyCells(&c.reg, &a.reg, a.types)
	return c
}

// sameLengths expects two type lists that already compared equal by type.
func sameLengths(a, b []Type) bool {
	for i := range a {
		if a[i].length != b[i].length {
			return false
		}
	}
	return true
}

func copyCells(dst, src *typereg.Registry, types []Type) {
	for i, tok := range types {
		d, _ := dst.CellAt(i)
		s, _ := src.CellAt(i)
		tok.copy(d, s)
	}
}

// Get resolves the backing array of the occurrence-th U typed slot.
// The returned container is live: mutations through it are visible in the
// aggregate.
func Get[U any](a *Arr, occurrence ...int) (*Container[U], error) {
	cell, err := a.reg.Find(reflectkit.TypeOf[U](), zerokit.Coalesce(occurrence...))
	if err != nil {
		return nil, err
	}
	return cell.(*Container[U]), nil
}

// Contains tells whether the array declares at least one U typed slot.
func Contains[U any](a *Arr) bool {
	return a.reg.Contains(reflectkit.TypeOf[U]())
}

// Multiplicity counts how many of the array's slots are declared with U.
func Multiplicity[U any](a *Arr) int {
	return a.reg.Multiplicity(reflectkit.TypeOf[U]())
}
