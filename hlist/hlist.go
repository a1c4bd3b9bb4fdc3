// Package hlist provides the heterogeneous list: an aggregate declaring an
// ordered list of element types, each with its own doubly linked backing
// list, where a slot is addressed by its element type and declaration
// occurrence.
package hlist

import (
	"reflect"

	hetero "github.com/venkatarajasekhar/HCL-2"
	"github.com/venkatarajasekhar/HCL-2/internal/typereg"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
)

// Type is a single entry of a List's declared type list.
type Type struct {
	rtype reflect.Type
	alloc func() any
	copy  func(dst, src any)
}

// Of declares a list slot for elements of type T.
func Of[T any]() Type {
	return Type{
		rtype: reflectkit.TypeOf[T](),
		alloc: func() any { return &Container[T]{} },
		copy: func(dst, src any) {
			d, s := dst.(*Container[T]), src.(*Container[T])
			d.Assign(s.ToSlice()...)
		},
	}
}

// List is a heterogeneous list.
//
// The same type may be declared any number of times in its type list; every
// repetition owns a separate backing list, and type indexed operations
// single one out with the trailing occurrence argument, which defaults to
// the first repetition.
type List struct {
	types []Type
	reg   typereg.Registry
}

// New builds a heterogeneous list from the declared type list.
func New(types ...Type) *List {
	l := &List{types: types}
	slots := make([]typereg.Slot, len(types))
	for i, tok := range types {
		slots[i] = typereg.Slot{Type: tok.rtype, Cell: tok.alloc()}
	}
	l.reg = typereg.New(slots...)
	return l
}

// Len returns the number of declared slots.
func (l *List) Len() int { return l.reg.Len() }

// TypeAt returns the declared element type of the slot at the given
// declaration position.
func (l *List) TypeAt(index int) (reflect.Type, error) { return l.reg.TypeAt(index) }

// Types returns the declared type list in declaration order.
func (l *List) Types() []reflect.Type { return l.reg.Types() }

// Swap exchanges the backing lists of two aggregates that declare the
// identical type list.
func (l *List) Swap(oth *List) error { return l.reg.SwapCells(&oth.reg) }

// CopyFrom replaces the content of every slot with a copy of the
// corresponding slot of the source list. Both lists must declare the
// identical type list.
func (l *List) CopyFrom(oth *List) error {
	if !l.reg.SameTypes(&oth.reg) {
		return hetero.ErrNotDeclared.F("the source aggregate declares a different type list")
	}
	copyCells(&l.reg, &oth.reg, l.types)
	return nil
}

// Clone returns a list with the same type list and a copy of every slot's
// content.
func (l *List) Clone() *List {
	c := New(l.types...)
	copyCells(&c.reg, &l.reg, l.types)
	return c
}

func copyCells(dst, src *typereg.Registry, types []Type) {
	for i, tok := range types {
		d, _ := dst.CellAt(i)
		s, _ := src.CellAt(i)
		tok.copy(d, s)
	}
}

// Get resolves the backing list of the occurrence-th U typed slot.
// The returned container is live: mutations through it are visible in the
// aggregate.
func Get[U any](l *List, occurrence ...int) (*Container[U], error) {
	cell, err := l.reg.Find(reflectkit.TypeOf[U](), zerokit.Coalesce(occurrence...))
	if err != nil {
		return nil, err
	}
	return cell.(*Container[U]), nil
}

// Contains tells whether the list declares at least one U typed slot.
func Contains[U any](l *List) bool {
	return l.reg.Contains(reflectkit.TypeOf[U]())
}

// Multiplicity counts how many of the list's slots are declared with U.
func Multiplicity[U any](l *List) int {
	return l.reg.Multiplicity(reflectkit.TypeOf[U]())
}
