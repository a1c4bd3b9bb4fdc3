// Package hdeq provides the heterogeneous deque: an aggregate declaring an
// ordered list of element types, each with its own double ended queue, where
// a slot is addressed by its element type and declaration occurrence.
package hdeq

import (
	"reflect"

	hetero "github.com/venkatarajasekhar/HCL-2"
	"github.com/venkatarajasekhar/HCL-2/internal/typereg"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
)

// Type is a single entry of a Deq's declared type list.
type Type struct {
	rtype reflect.Type
	alloc func() any
	copy  func(dst, src any)
}

// Of declares a deque slot for elements of type T.
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

// Deq is a heterogeneous deque.
//
// The same type may be declared any number of times in its type list; every
// repetition owns a separate queue, and type indexed operations single one
// out with the trailing occurrence argument, which defaults to the first
// repetition.
type Deq struct {
	types []Type
	reg   typereg.Registry
}

// New builds a heterogeneous deque from the declared type list.
func New(types ...Type) *Deq {
	d := &Deq{types: types}
	slots := make([]typereg.Slot, len(types))
	for i, tok := range types {
		slots[i] = typereg.Slot{Type: tok.rtype, Cell: tok.alloc()}
	}
	d.reg = typereg.New(slots...)
	return d
}

// Len returns the number of declared slots.
func (d *Deq) Len() int { return d.reg.Len() }

// TypeAt returns the declared element type of the slot at the given
// declaration position.
func (d *Deq) TypeAt(index int) (reflect.Type, error) { return d.reg.TypeAt(index) }

// Types returns the declared type list in declaration order.
func (d *Deq) Types() []reflect.Type { return d.reg.Types() }

// Swap exchanges the backing queues of two deques that declare the identical
// type list.
func (d *Deq) Swap(oth *Deq) error { return d.reg.SwapCells(&oth.reg) }

// CopyFrom replaces the content of every slot with a copy of the
// corresponding slot of the source deque. Both deques must declare the
// identical type list.
func (d *Deq) CopyFrom(oth *Deq) error {
	if !d.reg.SameTypes(&oth.reg) {
		return hetero.ErrNotDeclared.F("the source aggregate declares a different type list")
	}
	copyCells(&d.reg, &oth.reg, d.types)
	return nil
}

// Clone returns a deque with the same type list and a copy of every slot's
// content.
func (d *Deq) Clone() *Deq {
	c := New(d.types...)
	copyCells(&c.reg, &d.reg, d.types)
	return c
}

func copyCells(dst, src *typereg.Registry, types []Type) {
	for i, tok := range types {
		d, _ := dst.CellAt(i)
		s, _ := src.CellAt(i)
		tok.copy(d, s)
	}
}

// Get resolves the backing queue of the occurrence-th U typed slot.
// The returned container is live: mutations through it are visible in the
// deque.
func Get[U any](d *Deq, occurrence ...int) (*Container[U], error) {
	cell, err := d.reg.Find(reflectkit.TypeOf[U](), zerokit.Coalesce(occurrence...))
	if err != nil {
		return nil, err
	}
	return cell.(*Container[U]), nil
}

// Contains tells whether the deque declares at least one U typed slot.
func Contains[U any](d *Deq) bool {
	return d.reg.Contains(reflectkit.TypeOf[U]())
}

// Multiplicity counts how many of the deque's slots are declared with U.
func Multiplicity[U any](d *Deq) int {
	return d.reg.Multiplicity(reflectkit.TypeOf[U]())
}
